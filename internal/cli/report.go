package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/wordpass/wordpass/internal/password"
)

// writeEntropyReport renders the verbose entropy breakdown as a table.
func writeEntropyReport(w io.Writer, rules *password.Rules, res *password.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Source", "Bits"})
	t.AppendRows([]table.Row{
		{fmt.Sprintf("words (%d of %d)", rules.NumWords(), rules.PoolSize()), formatBits(rules.WordsEntropy())},
		{"numeral", formatBits(rules.NumeralEntropy())},
		{"symbol", formatBits(rules.SymbolEntropy())},
		{fmt.Sprintf("length adjustment (%d/%d in bounds)", res.SuccessCount, res.SampleSize), formatBits(res.Adjustment())},
	})
	t.AppendFooter(table.Row{"estimated total", formatBits(res.Entropy())})

	t.Render()
}

func formatBits(bits float64) string {
	return fmt.Sprintf("%.4f", bits)
}
