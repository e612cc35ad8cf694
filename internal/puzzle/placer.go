// internal/puzzle/placer.go
//
// Hex placement engine.
// Responsibilities:
//   - Seed the first word centered on the origin along an RNG-chosen axis.
//   - Attach each later word at a letter-matching intersection with the
//     existing structure, never overwriting a committed letter.
//   - Enumerate candidates in a fixed order (letter index, board creation
//     order, direction index) and pick one with a single RNG draw, so a
//     seed fully determines the board.
//   - Record words that found no candidate as unplaced and move on; there
//     is no backtracking over committed words.

package puzzle

import (
	"github.com/mclardy/hexaword/internal/hexgrid"
	"github.com/mclardy/hexaword/internal/rng"
)

// placer holds the state of one placement run.
type placer struct {
	radius int
	rng    *rng.RNG
	board  *Board
	placed []Placement
}

// candidate is a committable {anchor, direction} pair for a word.
type candidate struct {
	anchor hexgrid.Coord
	dir    int
}

func newPlacer(radius int, r *rng.RNG) *placer {
	return &placer{radius: radius, rng: r, board: NewBoard(radius)}
}

// placeWords processes entries in order and reports whether every word was
// placed. The first word to reach a still-empty board is seeded around the
// origin; every later word must intersect existing cells. An error is only
// returned for a letter conflict on commit, which candidate validation
// makes unreachable.
func (p *placer) placeWords(entries []wordEntry) (bool, error) {
	all := true
	for id, e := range entries {
		var ok bool
		var err error
		if p.board.Len() == 0 {
			ok, err = p.seedWord(id, e.word)
		} else {
			ok, err = p.attachWord(id, e.word)
		}
		if err != nil {
			return false, err
		}
		if !ok {
			all = false
		}
	}
	return all, nil
}

// seedWord places word on an empty board. One RNG draw picks the axis;
// the anchor is -(len-1)/2 steps back along it, centering the word on the
// origin (for even lengths the extra cell falls on the forward side).
// A word too long for the radius is left unplaced.
func (p *placer) seedWord(id int, word string) (bool, error) {
	d := p.rng.IntN(len(hexgrid.Directions))
	dir := hexgrid.Directions[d]
	anchor := dir.Scale(-((len(word) - 1) / 2))
	for j := 0; j < len(word); j++ {
		if !anchor.Add(dir.Scale(j)).InRadius(p.radius) {
			return false, nil
		}
	}
	return true, p.commit(id, word, anchor, d)
}

// attachWord collects all valid intersecting candidates for word and
// commits one chosen by a single RNG draw. No candidates means the word
// stays unplaced.
func (p *placer) attachWord(id int, word string) (bool, error) {
	cands := p.candidates(word)
	if len(cands) == 0 {
		return false, nil
	}
	pick := cands[p.rng.IntN(len(cands))]
	return true, p.commit(id, word, pick.anchor, pick.dir)
}

// candidates enumerates valid placements for word: for each letter index
// i, each occupied cell holding that letter (in creation order), and each
// direction d, the anchor cell - i*d is valid if the whole path stays in
// bounds, agrees with every occupied cell it crosses, and touches at
// least one occupied cell. A placement reachable through several of its
// letters is listed once per match, which weights the draw toward
// multi-intersection fits.
func (p *placer) candidates(word string) []candidate {
	var out []candidate
	for i := 0; i < len(word); i++ {
		for _, c := range p.board.Coords() {
			cell, _ := p.board.At(c)
			if cell.Letter[0] != word[i] {
				continue
			}
			for d, dir := range hexgrid.Directions {
				anchor := c.Add(dir.Scale(-i))
				if p.fits(word, anchor, dir) {
					out = append(out, candidate{anchor: anchor, dir: d})
				}
			}
		}
	}
	return out
}

// fits reports whether word laid from anchor along dir stays in bounds,
// matches every occupied cell on its path, and crosses at least one.
func (p *placer) fits(word string, anchor, dir hexgrid.Coord) bool {
	occupied := 0
	for j := 0; j < len(word); j++ {
		pos := anchor.Add(dir.Scale(j))
		if !pos.InRadius(p.radius) {
			return false
		}
		if cell, ok := p.board.At(pos); ok {
			if cell.Letter[0] != word[j] {
				return false
			}
			occupied++
		}
	}
	return occupied > 0
}

// commit writes every cell of the word and records its placement.
func (p *placer) commit(id int, word string, anchor hexgrid.Coord, d int) error {
	dir := hexgrid.Directions[d]
	for j := 0; j < len(word); j++ {
		if err := p.board.claim(anchor.Add(dir.Scale(j)), word[j], id); err != nil {
			return err
		}
	}
	p.placed = append(p.placed, Placement{ID: id, Word: word, Anchor: anchor, Direction: d})
	return nil
}
