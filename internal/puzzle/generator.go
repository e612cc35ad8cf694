// internal/puzzle/generator.go
//
// Generation facade: validates input shape, orders words by compatibility,
// runs the placement engine, and returns the board with per-word
// placements and an overall success flag. Pure computation; the caller
// owns seed selection and any retry policy (regenerating with the same
// seed reproduces the same result, so retries only make sense with a
// different seed or word subset).

package puzzle

import (
	"errors"
	"fmt"

	"github.com/mclardy/hexaword/internal/rng"
)

// Word length bounds accepted by the generator.
const (
	MinWordLen = 2
	MaxWordLen = 12
)

var (
	// ErrEmptyWordList reports a generate call with no words.
	ErrEmptyWordList = errors.New("puzzle: empty word list")
	// ErrWordLength reports a word outside the 2-12 letter bounds.
	ErrWordLength = errors.New("puzzle: word length out of bounds")
	// ErrWordCharset reports a word with characters outside uppercase A-Z.
	ErrWordCharset = errors.New("puzzle: word must be uppercase A-Z")
	// ErrBadRadius reports a non-positive grid radius.
	ErrBadRadius = errors.New("puzzle: grid radius must be positive")
)

// Generate deterministically lays words onto a hex board of the given
// radius. The seed fully determines the output. Unplaceable words are not
// an error: they are simply absent from PlacedWords and force
// Result.Success to false.
func Generate(words []string, seed string, radius int) (*Result, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	for _, w := range words {
		if err := checkShape(w); err != nil {
			return nil, err
		}
	}

	p := newPlacer(radius, rng.New(seed))
	success, err := p.placeWords(orderWords(words))
	if err != nil {
		return nil, err
	}
	return &Result{Board: p.board, PlacedWords: p.placed, Success: success}, nil
}

// checkShape validates a single word against the length and charset
// preconditions.
func checkShape(w string) error {
	if len(w) < MinWordLen || len(w) > MaxWordLen {
		return fmt.Errorf("%w: %q", ErrWordLength, w)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return fmt.Errorf("%w: %q", ErrWordCharset, w)
		}
	}
	return nil
}
