// Package cli implements the wordpass CLI commands.
package cli

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wordpass/wordpass/internal/config"
	"github.com/wordpass/wordpass/internal/password"
	"github.com/wordpass/wordpass/internal/store"
	"github.com/wordpass/wordpass/internal/wordlist"
)

var (
	dbPath     string
	configPath string
)

// RootCmd is the top-level command; running it generates a password.
var RootCmd = &cobra.Command{
	Use:   "wordpass",
	Short: "Generate memorable passwords from dictionary words",
	Long: "Generate cryptographically secure, memorable passwords by " +
		"concatenating random dictionary words, with optional numeral and " +
		"symbol suffixes and an entropy estimate.",
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	addGenerateFlags(RootCmd.Flags())

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/wordpass/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Wordlist database path (default $WORDPASS_DB or ~/.wordpass/wordlists.db)")
}

func addGenerateFlags(flags *pflag.FlagSet) {
	flags.IntP("word-count", "c", 4, "Number of words in the password")
	flags.IntP("min-length", "m", 0, "Minimum password length in bytes (default 24, or the maximum if lower)")
	flags.IntP("max-length", "l", 0, "Maximum password length in bytes (default unlimited)")
	flags.BoolP("append-numeral", "n", false, "Append a random numeral 0-9 (the default)")
	flags.BoolP("no-append-numeral", "N", false, "Do not append a numeral")
	flags.Bool("append-symbol", false, "Append a random symbol from the symbol set")
	flags.Bool("no-append-symbol", false, "Do not append a symbol (the default)")
	flags.StringP("symbol-set", "S", "", "Symbols to choose from; implies --append-symbol (default "+defaultSymbolSet+")")
	flags.Int("min-word", 0, "Minimum length of each word in bytes (default 4, or the maximum if lower)")
	flags.Int("max-word", 0, "Maximum length of each word in bytes (default 8, or the minimum if higher)")
	flags.StringP("wordlist", "w", "", `Word list to draw from; "-" or "stdin" reads whitespace-separated words from stdin (default "common")`)
	flags.IntP("top-words", "t", 0, "Use only the first N most common words after length filtering")
	flags.IntP("sample-size", "s", 100000, "Attempt budget for finding a valid password and estimating entropy")
	flags.BoolP("entropy-estimate", "e", false, "Print an entropy estimate to stderr")
	flags.BoolP("show-count", "C", false, "Print the password length to stderr")
	flags.BoolP("verbose", "v", false, "Print the full entropy breakdown to stderr; implies -e and -C")
	flags.String("newline", "auto", "Trailing newline: never, always, or auto (newline iff stdout is a tty)")
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	opts, err := resolveOptions(cmd, cfg)
	if err != nil {
		exitErr("invalid options", err)
	}

	words, err := loadWords(cmd, opts.wordlistName)
	if err != nil {
		exitErr("load wordlist", err)
	}

	pool := wordlist.Filter(words, opts.word, opts.topWords)
	if len(pool) == 0 {
		exitErr("build word pool", fmt.Errorf("wordlist %q has no words with a length of %s bytes",
			opts.wordlistName, opts.word.Describe()))
	}
	if opts.wordCount > len(pool) {
		exitErr("build word pool", fmt.Errorf("%d words requested but wordlist %q only has %d after filtering",
			opts.wordCount, opts.wordlistName, len(pool)))
	}

	rules, err := password.NewRules(pool, opts.wordCount, opts.appendNumeral, opts.symbolSet)
	if err != nil {
		exitErr("configure generator", err)
	}

	res, err := password.Sample(rand.Reader, rules, opts.sampleSize, opts.length)
	if err != nil {
		exitErr("generate password", err)
	}

	rendered := res.Password.String()
	fmt.Print(rendered)
	if trailingNewline(opts.newline) {
		fmt.Println()
	}

	if opts.showCount {
		fmt.Fprintf(os.Stderr, "length: %d bytes (%d code points)\n",
			res.Password.Len(), utf8.RuneCountInString(rendered))
	}
	switch {
	case opts.verbose:
		writeEntropyReport(os.Stderr, rules, res)
	case opts.entropyEstimate:
		fmt.Fprintf(os.Stderr, "entropy estimate: %.2f bits\n", res.Entropy())
	}
}

// trailingNewline decides whether the password gets a trailing newline.
// "auto" prints one only when stdout is a terminal, so piping the password
// into another tool doesn't pick up a stray byte.
func trailingNewline(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// loadWords resolves a wordlist name: stdin first, then embedded lists, then
// the imported-list database.
func loadWords(cmd *cobra.Command, name string) ([]string, error) {
	if name == "-" || name == "stdin" {
		return wordlist.FromReader(cmd.InOrStdin())
	}
	if words, ok := wordlist.Static(name); ok {
		return words, nil
	}

	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	words, err := s.Words(cmd.Context(), name)
	if err != nil {
		return nil, fmt.Errorf("unknown wordlist %q (see `wordpass wordlist list`)", name)
	}
	return words, nil
}

func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		exitErr("load config", err)
	}
	return cfg
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("WORDPASS_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wordpass", "wordlists.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
