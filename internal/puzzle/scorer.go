// internal/puzzle/scorer.go
//
// Word compatibility scoring and placement ordering.
//
// matchScore for a word counts, over every character position in it and
// every position in every other word, the pairs of equal letters. Seeding
// the board with the longest, most letter-connected words first maximizes
// the odds that later, less-connected words still find a valid
// intersection instead of failing against a sparse board.

package puzzle

import "sort"

// wordEntry pairs a word with its placement-order metadata.
type wordEntry struct {
	word  string
	input int // original input position, the final tie-break
	score int
}

// matchScores returns the pairwise positional letter-overlap score for
// each word. Equivalent to the naive quadruple loop over (word, position,
// other word, position), computed from per-letter frequency tables.
func matchScores(words []string) []int {
	var total [26]int
	counts := make([][26]int, len(words))
	for k, w := range words {
		for i := 0; i < len(w); i++ {
			c := w[i] - 'A'
			counts[k][c]++
			total[c]++
		}
	}

	scores := make([]int, len(words))
	for k, w := range words {
		s := 0
		for i := 0; i < len(w); i++ {
			c := w[i] - 'A'
			s += total[c] - counts[k][c]
		}
		scores[k] = s
	}
	return scores
}

// orderWords returns the words in placement order: descending matchScore,
// ties broken by descending length, remaining ties by input order (the
// stable sort preserves it).
func orderWords(words []string) []wordEntry {
	scores := matchScores(words)
	entries := make([]wordEntry, len(words))
	for k, w := range words {
		entries[k] = wordEntry{word: w, input: k, score: scores[k]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return len(entries[i].word) > len(entries[j].word)
	})
	return entries
}
