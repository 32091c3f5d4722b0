package password

import (
	"math"
	"testing"
)

func TestWordsEntropy(t *testing.T) {
	// 16-word pool, 4 words: log2(16) + log2(15) + log2(14) + log2(13),
	// the log2 of the 43680 ordered 4-word selections.
	r := mustRules(t, testPool, 4, false, "")
	want := math.Log2(16 * 15 * 14 * 13)
	if got := r.WordsEntropy(); math.Abs(got-want) > 1e-9 {
		t.Errorf("WordsEntropy() = %.4f, want %.4f", got, want)
	}
}

func TestWordsEntropyFullPool(t *testing.T) {
	// Selecting the whole pool counts all 16! orderings.
	r := mustRules(t, testPool, 16, false, "")
	want := 0.0
	for i := 16; i >= 1; i-- {
		want += math.Log2(float64(i))
	}
	if got := r.WordsEntropy(); math.Abs(got-want) > 1e-9 {
		t.Errorf("WordsEntropy() = %v, want %v", got, want)
	}
}

func TestNumeralEntropy(t *testing.T) {
	with := mustRules(t, testPool, 2, true, "")
	if got := with.NumeralEntropy(); got != math.Log2(10) {
		t.Errorf("NumeralEntropy() = %v, want log2(10)", got)
	}

	without := mustRules(t, testPool, 2, false, "")
	if got := without.NumeralEntropy(); got != 0 {
		t.Errorf("NumeralEntropy() = %v, want 0", got)
	}
}

func TestSymbolEntropy(t *testing.T) {
	// 32 distinct symbols: exactly 5 bits.
	symbols := "!\"#$%&'()*+,-./\\:;<=>?@[]^_`{|}~"
	r := mustRules(t, testPool, 2, false, symbols)
	if got := r.SymbolEntropy(); got != 5.0 {
		t.Errorf("SymbolEntropy() = %v, want 5.0", got)
	}

	none := mustRules(t, testPool, 2, false, "")
	if got := none.SymbolEntropy(); got != 0 {
		t.Errorf("SymbolEntropy() = %v, want 0", got)
	}
}

func TestSymbolEntropyCountsDistinctCharacters(t *testing.T) {
	r := mustRules(t, testPool, 2, false, "!!@@")
	if got := r.SymbolEntropy(); got != 1.0 {
		t.Errorf("SymbolEntropy() = %v, want 1.0 for 2 distinct symbols", got)
	}
}
