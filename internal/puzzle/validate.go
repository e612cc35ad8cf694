// internal/puzzle/validate.go
//
// Pre-flight word-list checks for level editors and submission UIs.
// Stricter than what Generate itself requires: the placement engine will
// happily run a 2-word or letter-disjoint list and report partial
// success, but such lists make poor levels, so callers accepting
// user-submitted content should reject them up front.

package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewWords reports a level with fewer than 3 words.
	ErrTooFewWords = errors.New("puzzle: level needs at least 3 words")
	// ErrDuplicateWord reports a repeated word in a level.
	ErrDuplicateWord = errors.New("puzzle: duplicate word")
	// ErrNoSharedLetter reports a list where no letter appears in two
	// distinct words, which can never interlock.
	ErrNoSharedLetter = errors.New("puzzle: no letter shared between any two words")
)

// CheckWordList validates a word list for use as a level: per-word shape,
// at least 3 words, no duplicates, and at least one letter present in two
// distinct words. Generate does not call this.
func CheckWordList(words []string) error {
	if len(words) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewWords, len(words))
	}

	seen := make(map[string]struct{}, len(words))
	var wordsWithLetter [26]int
	for _, w := range words {
		if err := checkShape(w); err != nil {
			return err
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		seen[w] = struct{}{}

		var has [26]bool
		for i := 0; i < len(w); i++ {
			has[w[i]-'A'] = true
		}
		for c, ok := range has {
			if ok {
				wordsWithLetter[c]++
			}
		}
	}

	for _, n := range wordsWithLetter {
		if n >= 2 {
			return nil
		}
	}
	return ErrNoSharedLetter
}
