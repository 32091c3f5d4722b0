// Package password implements the passphrase rule engine: selecting distinct
// words from a pool, appending optional numeral and symbol suffixes, and
// estimating the Shannon entropy of the result.
package password

import (
	"strings"
	"unicode/utf8"
)

// noRune marks an absent numeral or symbol.
const noRune = rune(-1)

// Password is one generated candidate: words in selection order plus the
// optional numeral and symbol suffixes. Immutable once created.
type Password struct {
	words   []string
	numeral rune
	symbol  rune
}

// Words returns a copy of the selected words in selection order.
func (p Password) Words() []string {
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out
}

// String renders the password: words concatenated in selection order,
// then the numeral digit, then the symbol.
func (p Password) String() string {
	var sb strings.Builder
	for _, w := range p.words {
		sb.WriteString(w)
	}
	if p.numeral != noRune {
		sb.WriteRune(p.numeral)
	}
	if p.symbol != noRune {
		sb.WriteRune(p.symbol)
	}
	return sb.String()
}

// Len is the rendered byte length. Multi-byte symbols count by their UTF-8
// encoding, not by grapheme.
func (p Password) Len() int {
	n := 0
	for _, w := range p.words {
		n += len(w)
	}
	if p.numeral != noRune {
		n++
	}
	if p.symbol != noRune {
		n += utf8.RuneLen(p.symbol)
	}
	return n
}
