// Package table lays out the 10×10 toroidal card table that Badugi hands are
// read from, and reads four-card lines from it.
//
// A table is generated once per seed and is read-only afterwards, so a *Grid
// can be shared between any number of readers.
package table

import (
	"fmt"
	"iter"
	"strings"

	"github.com/lox/badugi/badugi"
)

// Size is the width and height of the table
const Size = 10

// LineLength is the number of cards in a line
const LineLength = 4

// Direction is one of the eight compass directions a line can be read in.
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// NumDirections is the number of read directions
const NumDirections = 8

var directionNames = [NumDirections]string{
	"up", "up-right", "right", "down-right", "down", "down-left", "left", "up-left",
}

var directionDeltas = [NumDirections][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// String returns the direction name
func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the eight directions
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Delta returns the x and y step of one move in direction d. y grows
// downwards. It panics if d is not a valid direction.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		panic(fmt.Sprintf("table: invalid direction %d", d))
	}
	delta := directionDeltas[d]
	return delta[0], delta[1]
}

// ParseDirection parses a direction name such as "right", "down-left" or "UpLeft".
func ParseDirection(name string) (Direction, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for i, n := range directionNames {
		if strings.ReplaceAll(n, "-", "") == norm {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// Line is four cards read from the table in order.
type Line [LineLength]badugi.Card

// Hand returns an unanalyzed hand holding the line's cards.
func (l Line) Hand() *badugi.Hand {
	h, err := badugi.NewHand(l[:])
	if err != nil {
		// A line always has four cards.
		panic(err)
	}
	return h
}

func (l Line) String() string {
	parts := make([]string, LineLength)
	for i, card := range l {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

// Read identifies one of the 800 lines on the table.
type Read struct {
	X, Y int
	Dir  Direction
}

func (r Read) String() string {
	return fmt.Sprintf("(%d,%d) %s", r.X, r.Y, r.Dir)
}

// Grid is a generated card table, addressed (x, y) with both axes wrapping.
type Grid struct {
	cells    [Size][Size]badugi.Card
	seed     int64
	attempts int
	fallback bool
}

// Seed returns the seed of the source the grid was generated from
func (g *Grid) Seed() int64 {
	return g.seed
}

// UsedFallback reports whether generation gave up and substituted the
// fallback table.
func (g *Grid) UsedFallback() bool {
	return g.fallback
}

// Attempts returns how many placement attempts the second card group took.
func (g *Grid) Attempts() int {
	return g.attempts
}

// At returns the card at (x, y), wrapping both coordinates.
func (g *Grid) At(x, y int) badugi.Card {
	return g.cells[wrap(x)][wrap(y)]
}

// Cells returns a copy of the table indexed [x][y]
func (g *Grid) Cells() [Size][Size]badugi.Card {
	return g.cells
}

// Line reads four cards starting at (x, y) and stepping in direction dir.
func (g *Grid) Line(x, y int, dir Direction) Line {
	dx, dy := dir.Delta()
	var line Line
	for k := range LineLength {
		line[k] = g.At(x+k*dx, y+k*dy)
	}
	return line
}

// Lines iterates over every line on the table, rows first, then columns,
// then directions.
func (g *Grid) Lines() iter.Seq2[Read, Line] {
	return func(yield func(Read, Line) bool) {
		for y := range Size {
			for x := range Size {
				for d := range Direction(NumDirections) {
					if !yield(Read{X: x, Y: y, Dir: d}, g.Line(x, y, d)) {
						return
					}
				}
			}
		}
	}
}

// String renders the table as rows of card codes.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range Size {
		for x := range Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.cells[x][y].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wrap(v int) int {
	v %= Size
	if v < 0 {
		v += Size
	}
	return v
}
