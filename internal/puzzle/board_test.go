package puzzle

import (
	"errors"
	"testing"

	"github.com/mclardy/hexaword/internal/hexgrid"
)

// TestClaimCreatesAndStacks ensures claims create cells in order and
// append word IDs on agreement.
func TestClaimCreatesAndStacks(t *testing.T) {
	b := NewBoard(5)
	origin := hexgrid.Coord{Q: 0, R: 0}
	east := hexgrid.Coord{Q: 1, R: 0}

	if err := b.claim(origin, 'A', 0); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if err := b.claim(east, 'B', 0); err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if err := b.claim(origin, 'A', 1); err != nil {
		t.Fatalf("agreeing claim: %v", err)
	}

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	cell, ok := b.At(origin)
	if !ok {
		t.Fatal("origin cell missing")
	}
	if cell.Letter != "A" || len(cell.WordIDs) != 2 || cell.WordIDs[0] != 0 || cell.WordIDs[1] != 1 {
		t.Fatalf("origin cell = %+v", cell)
	}
	coords := b.Coords()
	if len(coords) != 2 || coords[0] != origin || coords[1] != east {
		t.Fatalf("creation order = %v", coords)
	}
}

// TestClaimRejectsConflict ensures a conflicting letter is never written.
func TestClaimRejectsConflict(t *testing.T) {
	b := NewBoard(5)
	origin := hexgrid.Coord{Q: 0, R: 0}
	if err := b.claim(origin, 'A', 0); err != nil {
		t.Fatalf("setup claim: %v", err)
	}
	err := b.claim(origin, 'Z', 1)
	if !errors.Is(err, ErrLetterConflict) {
		t.Fatalf("claim error = %v, want ErrLetterConflict", err)
	}
	cell, _ := b.At(origin)
	if cell.Letter != "A" || len(cell.WordIDs) != 1 {
		t.Fatalf("cell mutated by rejected claim: %+v", cell)
	}
}
