package password

import (
	"fmt"
	"io"
	"math"

	"github.com/wordpass/wordpass/internal/bounds"
)

// ExhaustedError reports a sampling run in which no candidate satisfied the
// length bounds within the attempt budget.
type ExhaustedError struct {
	SampleSize int
	Length     bounds.Bounds
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no password with a length of %s bytes found in %d attempts",
		e.Length.Describe(), e.SampleSize)
}

// Result is a successful sampling run: the first in-bounds candidate plus
// the empirical pass counts used for the entropy adjustment.
type Result struct {
	Password     Password
	SuccessCount int
	SampleSize   int

	rules *Rules
}

// Sample draws up to sampleSize candidates from rules and returns the first
// whose rendered byte length satisfies length. The remainder of the budget is
// still consumed to count how many candidates overall pass the bounds; that
// count feeds Adjustment and never changes which password is returned. Zero
// passing candidates is an *ExhaustedError.
func Sample(rng io.Reader, rules *Rules, sampleSize int, length bounds.Bounds) (*Result, error) {
	if sampleSize < 1 {
		return nil, fmt.Errorf("password: sample size must be at least 1, got %d", sampleSize)
	}

	next := rules.Stream(rng)
	var first Password
	successes := 0

	for i := 0; i < sampleSize; i++ {
		p, err := next()
		if err != nil {
			return nil, err
		}
		if !length.Check(p.Len()) {
			continue
		}
		if successes == 0 {
			first = p
		}
		successes++
	}

	if successes == 0 {
		return nil, &ExhaustedError{SampleSize: sampleSize, Length: length}
	}

	return &Result{
		Password:     first,
		SuccessCount: successes,
		SampleSize:   sampleSize,
		rules:        rules,
	}, nil
}

// Adjustment is log2 of the empirical pass rate, log2(successCount) -
// log2(sampleSize). It is never positive: rejecting out-of-bounds candidates
// can only shrink the output space.
func (res *Result) Adjustment() float64 {
	return math.Log2(float64(res.SuccessCount)) - math.Log2(float64(res.SampleSize))
}

// Entropy is the bias-corrected estimate in bits: the combinatorial entropy
// of the word, numeral, and symbol draws plus the pass-rate adjustment.
func (res *Result) Entropy() float64 {
	return res.rules.WordsEntropy() +
		res.rules.NumeralEntropy() +
		res.rules.SymbolEntropy() +
		res.Adjustment()
}
