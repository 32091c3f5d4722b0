package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrEmptyPool is returned when rules are built over an empty word pool.
var ErrEmptyPool = errors.New("password: word pool is empty")

// ErrEmptyWord is returned when the word pool contains an empty string.
var ErrEmptyWord = errors.New("password: word pool contains an empty word")

// NotEnoughWordsError reports a requested word count that exceeds the pool
// size, which would make selection without replacement impossible.
type NotEnoughWordsError struct {
	NumWords int
	PoolSize int
}

func (e *NotEnoughWordsError) Error() string {
	return fmt.Sprintf("password: %d words requested but the pool only has %d", e.NumWords, e.PoolSize)
}

// Rules is the immutable configuration for one generation run. It borrows
// the word pool without mutating it.
type Rules struct {
	pool          []string
	numWords      int
	appendNumeral bool
	symbols       []rune
}

// NewRules validates the generation parameters and builds the rule set.
// Duplicate characters in symbolSet are dropped so the symbol draw stays
// uniform over distinct symbols. Callers must not mutate pool while the
// rules are in use.
func NewRules(pool []string, numWords int, appendNumeral bool, symbolSet string) (*Rules, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	for _, w := range pool {
		if w == "" {
			return nil, ErrEmptyWord
		}
	}
	if numWords < 1 {
		return nil, fmt.Errorf("password: word count must be at least 1, got %d", numWords)
	}
	if numWords > len(pool) {
		return nil, &NotEnoughWordsError{NumWords: numWords, PoolSize: len(pool)}
	}

	return &Rules{
		pool:          pool,
		numWords:      numWords,
		appendNumeral: appendNumeral,
		symbols:       distinctRunes(symbolSet),
	}, nil
}

// PoolSize returns the number of candidate words.
func (r *Rules) PoolSize() int { return len(r.pool) }

// NumWords returns the number of words selected per password.
func (r *Rules) NumWords() int { return r.numWords }

// Generate draws one candidate password. The word draw is uniform without
// replacement, the numeral and symbol draws are independent and uniform.
// Randomness comes from rng, which must be a cryptographically secure source
// such as crypto/rand.Reader; rng must not be shared across goroutines.
func (r *Rules) Generate(rng io.Reader) (Password, error) {
	words, err := r.drawWords(rng)
	if err != nil {
		return Password{}, err
	}

	p := Password{words: words, numeral: noRune, symbol: noRune}

	if r.appendNumeral {
		d, err := uniform(rng, 10)
		if err != nil {
			return Password{}, err
		}
		p.numeral = rune('0' + d)
	}

	if len(r.symbols) > 0 {
		i, err := uniform(rng, len(r.symbols))
		if err != nil {
			return Password{}, err
		}
		p.symbol = r.symbols[i]
	}

	return p, nil
}

// Stream returns a pull-based generator over rng: each call produces one
// fresh candidate. It never terminates on its own; callers bound it with an
// attempt budget.
func (r *Rules) Stream(rng io.Reader) func() (Password, error) {
	return func() (Password, error) {
		return r.Generate(rng)
	}
}

// drawWords runs a partial Fisher-Yates shuffle over pool indices, which
// makes every ordered selection of numWords distinct words equally likely.
func (r *Rules) drawWords(rng io.Reader) ([]string, error) {
	idx := make([]int, len(r.pool))
	for i := range idx {
		idx[i] = i
	}

	words := make([]string, r.numWords)
	for i := 0; i < r.numWords; i++ {
		j, err := uniform(rng, len(idx)-i)
		if err != nil {
			return nil, err
		}
		j += i
		idx[i], idx[j] = idx[j], idx[i]
		words[i] = r.pool[idx[i]]
	}
	return words, nil
}

// uniform returns an unbiased integer in [0, n) read from rng.
func uniform(rng io.Reader, n int) (int, error) {
	v, err := rand.Int(rng, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(v.Int64()), nil
}

func distinctRunes(s string) []rune {
	seen := make(map[rune]bool, len(s))
	var out []rune
	for _, c := range s {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
