package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordpass/wordpass/internal/bounds"
	"github.com/wordpass/wordpass/internal/config"
)

// defaultSymbolSet is used when a symbol is requested without --symbol-set.
const defaultSymbolSet = "!\"#$%&'()*+,-./\\:;<=>?@[]^_`{|}~"

// options holds the fully resolved generation parameters: built-in defaults,
// overridden by the config file, overridden by flags the user actually set.
type options struct {
	wordCount       int
	length          bounds.Bounds
	word            bounds.Bounds
	appendNumeral   bool
	symbolSet       string // empty means no symbol is appended
	wordlistName    string
	topWords        int
	sampleSize      int
	entropyEstimate bool
	showCount       bool
	verbose         bool
	newline         string
}

func resolveOptions(cmd *cobra.Command, cfg *config.Config) (*options, error) {
	flags := cmd.Flags()

	// intArg returns the flag value when the user set it, the config value
	// when present, else nil.
	intArg := func(flag string, cfgVal *int) *int {
		if flags.Changed(flag) {
			v, _ := flags.GetInt(flag)
			return &v
		}
		return cfgVal
	}

	opts := &options{}

	opts.wordCount = 4
	if cfg.WordCount != nil {
		opts.wordCount = *cfg.WordCount
	}
	if flags.Changed("word-count") {
		opts.wordCount, _ = flags.GetInt("word-count")
	}
	if opts.wordCount < 1 {
		return nil, fmt.Errorf("word count must be at least 1, got %d", opts.wordCount)
	}

	length, err := bounds.Resolve(
		intArg("min-length", cfg.MinLength),
		intArg("max-length", cfg.MaxLength),
		24, bounds.UnboundedMax)
	if err != nil {
		return nil, fmt.Errorf("password length bounds: %w", err)
	}
	opts.length = length

	word, err := bounds.Resolve(
		intArg("min-word", cfg.MinWord),
		intArg("max-word", cfg.MaxWord),
		4, func(min int) int {
			if min > 8 {
				return min
			}
			return 8
		})
	if err != nil {
		return nil, fmt.Errorf("word length bounds: %w", err)
	}
	opts.word = word

	// Numerals are on unless switched off; an explicit --append-numeral
	// beats --no-append-numeral.
	opts.appendNumeral = true
	if cfg.AppendNumeral != nil {
		opts.appendNumeral = *cfg.AppendNumeral
	}
	if flags.Changed("no-append-numeral") {
		opts.appendNumeral = false
	}
	if flags.Changed("append-numeral") {
		opts.appendNumeral = true
	}

	// Symbols are off unless requested; --symbol-set implies a symbol, and an
	// explicit request beats --no-append-symbol.
	if cfg.AppendSymbol != nil && *cfg.AppendSymbol {
		opts.symbolSet = defaultSymbolSet
	}
	if cfg.SymbolSet != nil {
		opts.symbolSet = *cfg.SymbolSet
	}
	if flags.Changed("no-append-symbol") {
		opts.symbolSet = ""
	}
	if flags.Changed("append-symbol") && opts.symbolSet == "" {
		opts.symbolSet = defaultSymbolSet
	}
	if flags.Changed("symbol-set") {
		opts.symbolSet, _ = flags.GetString("symbol-set")
		if opts.symbolSet == "" {
			return nil, fmt.Errorf("symbol set must not be empty")
		}
	}

	opts.wordlistName = "common"
	if cfg.Wordlist != nil {
		opts.wordlistName = *cfg.Wordlist
	}
	if flags.Changed("wordlist") {
		opts.wordlistName, _ = flags.GetString("wordlist")
	}

	if top := intArg("top-words", cfg.TopWords); top != nil {
		if *top < 1 {
			return nil, fmt.Errorf("top words must be at least 1, got %d", *top)
		}
		opts.topWords = *top
	}

	opts.sampleSize = 100000
	if cfg.SampleSize != nil {
		opts.sampleSize = *cfg.SampleSize
	}
	if flags.Changed("sample-size") {
		opts.sampleSize, _ = flags.GetInt("sample-size")
	}
	if opts.sampleSize < 1 {
		return nil, fmt.Errorf("sample size must be at least 1, got %d", opts.sampleSize)
	}

	opts.verbose, _ = flags.GetBool("verbose")
	opts.entropyEstimate, _ = flags.GetBool("entropy-estimate")
	opts.showCount, _ = flags.GetBool("show-count")
	if opts.verbose {
		opts.entropyEstimate = true
		opts.showCount = true
	}

	opts.newline, _ = flags.GetString("newline")
	switch opts.newline {
	case "never", "always", "auto":
	default:
		return nil, fmt.Errorf("newline must be never, always, or auto, got %q", opts.newline)
	}

	return opts, nil
}
