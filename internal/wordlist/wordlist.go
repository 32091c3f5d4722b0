// Package wordlist provides the embedded word lists and the filtering that
// turns a raw list into a generation pool. Lists are ordered by commonality,
// most common first, so a top-N cutoff keeps the easiest words to remember.
package wordlist

import (
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wordpass/wordpass/internal/bounds"
)

//go:embed data/*.list
var dataFS embed.FS

// static maps embedded list names (file stems) to their parsed words.
var static = func() map[string][]string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("wordlist: read embedded data: %v", err))
	}

	lists := make(map[string][]string, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".list")
		blob, err := dataFS.ReadFile("data/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("wordlist: read embedded list %q: %v", name, err))
		}
		lists[name] = Parse(string(blob))
	}
	return lists
}()

// Names returns the embedded list names in sorted order.
func Names() []string {
	names := make([]string, 0, len(static))
	for name := range static {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Static returns an embedded list by name. Callers must not mutate the
// returned slice.
func Static(name string) ([]string, bool) {
	words, ok := static[name]
	return words, ok
}

// Parse splits a wordlist blob into words: one word per line, surrounding
// whitespace trimmed, blank lines and # comments dropped.
func Parse(blob string) []string {
	var words []string
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// FromReader reads a whitespace-trimmed word-per-line list from r, typically
// stdin. The list format matches Parse.
func FromReader(r io.Reader) ([]string, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return Parse(string(blob)), nil
}

// Filter keeps words whose byte length satisfies word, preserving order, and
// truncates the result to the first topN words. topN <= 0 means no cutoff.
func Filter(words []string, word bounds.Bounds, topN int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !word.Check(len(w)) {
			continue
		}
		out = append(out, w)
		if topN > 0 && len(out) == topN {
			break
		}
	}
	return out
}
