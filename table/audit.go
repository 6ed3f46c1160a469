package table

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/badugi/badugi"
)

// TotalLines is the number of distinct (x, y, direction) reads on a table
const TotalLines = Size * Size * NumDirections

// Report summarises how well a table keeps its lines apart.
type Report struct {
	// Lines is the number of lines examined.
	Lines int
	// DuplicatePrefixes lists every read whose first two cards were already
	// seen opening an earlier read.
	DuplicatePrefixes []Duplicate
	// RepeatedCards lists reads that contain the same card more than once.
	RepeatedCards []Read
	// Classes counts lines by ranking class, indexed by badugi.Class.
	Classes [badugi.Badugi + 1]int
}

// Duplicate is a read whose opening pair matches an earlier read.
type Duplicate struct {
	Read  Read
	First Read
	Pair  [2]badugi.Card
}

// Conflicts reports whether any two lines open with the same pair of cards.
func (r *Report) Conflicts() bool {
	return len(r.DuplicatePrefixes) > 0
}

// UniquePrefixes returns how many distinct opening pairs the table has.
func (r *Report) UniquePrefixes() int {
	return r.Lines - len(r.DuplicatePrefixes)
}

// Audit reads every line of g and reports ambiguous openings, lines holding
// the same card twice, and how the lines rank.
func Audit(g *Grid) *Report {
	report := &Report{}
	seen := make(map[[2]badugi.Card]Read, TotalLines)

	for read, line := range g.Lines() {
		report.Lines++

		pair := [2]badugi.Card{line[0], line[1]}
		if first, ok := seen[pair]; ok {
			report.DuplicatePrefixes = append(report.DuplicatePrefixes, Duplicate{
				Read:  read,
				First: first,
				Pair:  pair,
			})
		} else {
			seen[pair] = read
		}

		if hasRepeat(line) {
			report.RepeatedCards = append(report.RepeatedCards, read)
		}

		report.Classes[badugi.Evaluate(line).Class()]++
	}
	return report
}

func hasRepeat(line Line) bool {
	for i := 1; i < len(line); i++ {
		if slices.Contains(line[:i], line[i]) {
			return true
		}
	}
	return false
}

// ErrInventory is returned by CheckInventory for tables with the wrong cards.
var ErrInventory = errors.New("card table inventory mismatch")

// CheckInventory verifies that g uses all 52 cards, Ace through Queen in two
// cells each and the Kings in one cell each.
func CheckInventory(g *Grid) error {
	counts := make(map[badugi.Card]int, 52)
	for x := range Size {
		for y := range Size {
			card := g.cells[x][y]
			if card.IsZero() || !card.Rank.Valid() {
				return fmt.Errorf("%w: empty cell at (%d,%d)", ErrInventory, x, y)
			}
			counts[card]++
		}
	}
	if len(counts) != 52 {
		return fmt.Errorf("%w: %d distinct cards, want 52", ErrInventory, len(counts))
	}
	for card, n := range counts {
		want := 2
		if card.Rank == badugi.King {
			want = 1
		}
		if n != want {
			return fmt.Errorf("%w: %s appears %d times, want %d", ErrInventory, card, n, want)
		}
	}
	return nil
}
