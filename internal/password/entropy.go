package password

import "math"

// WordsEntropy returns the entropy of the word draw in bits: log2 of the
// falling factorial poolSize * (poolSize-1) * ... * (poolSize-numWords+1),
// the number of ordered distinct-word selections. NewRules guarantees
// numWords <= poolSize, so every term is positive.
func (r *Rules) WordsEntropy() float64 {
	e := 0.0
	for i := 0; i < r.numWords; i++ {
		e += math.Log2(float64(len(r.pool) - i))
	}
	return e
}

// NumeralEntropy returns log2(10) when a numeral is appended, else 0.
func (r *Rules) NumeralEntropy() float64 {
	if !r.appendNumeral {
		return 0
	}
	return math.Log2(10)
}

// SymbolEntropy returns log2 of the number of distinct symbols when a symbol
// is appended, else 0.
func (r *Rules) SymbolEntropy() float64 {
	if len(r.symbols) == 0 {
		return 0
	}
	return math.Log2(float64(len(r.symbols)))
}
