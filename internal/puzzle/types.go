// internal/puzzle/types.go
//
// Core type definitions for the puzzle generator.
// Defines:
//   - Cell: a single occupied board cell and the words that claim it.
//   - Placement: the committed anchor/direction record for a placed word.
//   - Result: the full output of one generation run.

package puzzle

import "github.com/mclardy/hexaword/internal/hexgrid"

// Cell is an occupied cell on the board. A cell is created the first time
// any word writes to it and is never deleted for the remainder of the run.
// More than one entry in WordIDs marks an intersection; all claiming words
// agree on Letter.
type Cell struct {
	Q       int    `json:"q"`
	R       int    `json:"r"`
	Letter  string `json:"letter"`  // single uppercase A-Z character
	WordIDs []int  `json:"wordIds"` // in the order words claimed the cell
}

// Placement records where a word was committed. Word IDs are positions in
// the placement-sorted word list, so a cell's WordIDs cross-reference the
// IDs found here. Cells of the word are Anchor + j*Directions[Direction]
// for j in [0, len(Word)).
type Placement struct {
	ID        int           `json:"wordId"`
	Word      string        `json:"word"`
	Anchor    hexgrid.Coord `json:"anchor"`
	Direction int           `json:"direction"` // index into hexgrid.Directions
}

// Result is the output of one generation run.
type Result struct {
	Board       *Board      `json:"board"`
	PlacedWords []Placement `json:"placedWords"` // commit order
	Success     bool        `json:"success"`     // every input word was placed
}
