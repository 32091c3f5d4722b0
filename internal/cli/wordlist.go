package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordpass/wordpass/internal/store"
	"github.com/wordpass/wordpass/internal/wordlist"
)

func init() {
	wordlistCmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage word lists",
	}

	wordlistCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available word lists",
			Run:   runWordlistList,
		},
		&cobra.Command{
			Use:   "show NAME",
			Short: "Print every word in a list",
			Args:  cobra.ExactArgs(1),
			Run:   runWordlistShow,
		},
		&cobra.Command{
			Use:   "import NAME [FILE]",
			Short: "Import a word list from a file or stdin",
			Long: "Import a word list from a file or stdin: one word per line, " +
				"blank lines and # comments ignored, most common words first.",
			Args: cobra.RangeArgs(1, 2),
			Run:  runWordlistImport,
		},
		&cobra.Command{
			Use:   "rm NAME",
			Short: "Remove an imported word list",
			Args:  cobra.ExactArgs(1),
			Run:   runWordlistRm,
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show wordlist database statistics",
			Run:   runWordlistStats,
		},
	)

	RootCmd.AddCommand(wordlistCmd)
}

func runWordlistList(cmd *cobra.Command, args []string) {
	for _, name := range wordlist.Names() {
		words, _ := wordlist.Static(name)
		fmt.Printf("%s\t%d words\tbuilt-in\n", name, len(words))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	lists, err := s.List(cmd.Context())
	if err != nil {
		exitErr("list wordlists", err)
	}
	for _, l := range lists {
		fmt.Printf("%s\t%d words\timported\n", l.Name, l.WordCount)
	}
}

func runWordlistShow(cmd *cobra.Command, args []string) {
	words, err := loadWords(cmd, args[0])
	if err != nil {
		exitErr("show wordlist", err)
	}
	for _, w := range words {
		fmt.Println(w)
	}
}

func runWordlistImport(cmd *cobra.Command, args []string) {
	name := args[0]
	if _, ok := wordlist.Static(name); ok {
		exitErr("import wordlist", fmt.Errorf("%q is a built-in list and cannot be replaced", name))
	}

	source := "stdin"
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			exitErr("open wordlist file", err)
		}
		defer f.Close()
		in = f
		source = args[1]
	}

	words, err := wordlist.FromReader(in)
	if err != nil {
		exitErr("read wordlist", err)
	}
	if len(words) == 0 {
		exitErr("import wordlist", fmt.Errorf("no words in input"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	list, err := s.Save(cmd.Context(), store.SaveParams{
		Name:   name,
		Source: source,
		Words:  words,
	})
	if err != nil {
		exitErr("import wordlist", err)
	}

	fmt.Printf("imported %q: %d words\n", list.Name, list.WordCount)
}

func runWordlistRm(cmd *cobra.Command, args []string) {
	name := args[0]
	if _, ok := wordlist.Static(name); ok {
		exitErr("remove wordlist", fmt.Errorf("%q is a built-in list and cannot be removed", name))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Rm(cmd.Context(), name); err != nil {
		exitErr("remove wordlist", err)
	}
	fmt.Printf("removed %q\n", name)
}

func runWordlistStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}
