// internal/hexgrid/hexgrid.go
//
// Axial coordinates for a pointy-top hex grid.
// Defines:
//   - Coord: axial (q, r) position; the third cube coordinate s = -q-r is
//     derived and only used for radius checks.
//   - Directions: the 3 canonical reading axes words are laid along.
//   - Radius bound: a coord is on a board of radius R iff
//     max(|q|, |r|, |q+r|) <= R.

package hexgrid

import "fmt"

// Coord is an axial hex coordinate.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate (-q - r).
func (c Coord) S() int { return -c.Q - c.R }

// Add returns c + d.
func (c Coord) Add(d Coord) Coord { return Coord{Q: c.Q + d.Q, R: c.R + d.R} }

// Scale returns c scaled by k.
func (c Coord) Scale(k int) Coord { return Coord{Q: c.Q * k, R: c.R * k} }

// Key returns the canonical "q,r" map key for c.
func (c Coord) Key() string { return fmt.Sprintf("%d,%d", c.Q, c.R) }

// InRadius reports whether c lies on a board of the given radius,
// i.e. max(|q|, |r|, |q+r|) <= radius.
func (c Coord) InRadius(radius int) bool {
	return abs(c.Q) <= radius && abs(c.R) <= radius && abs(c.Q+c.R) <= radius
}

// Directions are the 3 canonical axes a word may be laid along:
// east, southeast, and southwest. Only these 3 of the 6 neighbor
// directions are used so every placed word reads in a consistent
// forward direction; the other 3 are their mirrors and would produce
// the same lines reversed.
var Directions = [3]Coord{
	{Q: 1, R: 0},  // east
	{Q: 0, R: 1},  // southeast
	{Q: -1, R: 1}, // southwest
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
