// internal/puzzle/board.go
//
// The board: a monotonically growing coordinate→cell mapping.
// Characteristics:
//   - Cells are only ever created or claimed, never deleted.
//   - A cell's letter is immutable once set; a conflicting claim is a
//     consistency violation the placement engine must have screened out.
//   - Iteration order (Coords) is cell-creation order, which keeps
//     candidate enumeration fully deterministic.

package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mclardy/hexaword/internal/hexgrid"
)

// ErrLetterConflict reports an attempt to write a different letter into an
// occupied cell. Candidate validation rejects such placements before
// commit, so seeing this error means the generator is broken.
var ErrLetterConflict = errors.New("puzzle: conflicting letter for occupied cell")

// Board maps occupied coordinates to cells. It grows monotonically during
// one generation run and is not safe for concurrent mutation.
type Board struct {
	radius int
	cells  map[hexgrid.Coord]*Cell
	order  []hexgrid.Coord // creation order
}

// NewBoard returns an empty board of the given radius.
func NewBoard(radius int) *Board {
	return &Board{radius: radius, cells: make(map[hexgrid.Coord]*Cell)}
}

// Radius returns the board's grid radius.
func (b *Board) Radius() int { return b.radius }

// Len returns the number of occupied cells.
func (b *Board) Len() int { return len(b.cells) }

// At returns the cell at c, if occupied.
func (b *Board) At(c hexgrid.Coord) (*Cell, bool) {
	cell, ok := b.cells[c]
	return cell, ok
}

// Coords returns occupied coordinates in creation order.
// The returned slice is shared; callers must not modify it.
func (b *Board) Coords() []hexgrid.Coord { return b.order }

// claim writes letter into the cell at c on behalf of wordID, creating the
// cell if needed. Claiming an occupied cell with a different letter
// returns ErrLetterConflict.
func (b *Board) claim(c hexgrid.Coord, letter byte, wordID int) error {
	if cell, ok := b.cells[c]; ok {
		if cell.Letter[0] != letter {
			return fmt.Errorf("%w: %s holds %q, word %d wants %q",
				ErrLetterConflict, c.Key(), cell.Letter, wordID, string(letter))
		}
		cell.WordIDs = append(cell.WordIDs, wordID)
		return nil
	}
	b.cells[c] = &Cell{Q: c.Q, R: c.R, Letter: string(letter), WordIDs: []int{wordID}}
	b.order = append(b.order, c)
	return nil
}

// MarshalJSON encodes the board as a {"q,r": cell} object. encoding/json
// sorts object keys, so equal boards serialize identically.
func (b *Board) MarshalJSON() ([]byte, error) {
	m := make(map[string]*Cell, len(b.cells))
	for c, cell := range b.cells {
		m[c.Key()] = cell
	}
	return json.Marshal(m)
}
