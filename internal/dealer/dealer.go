// Package dealer deals pairs of hands from a card table and decides which
// one wins.
package dealer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/badugi/badugi"
	"github.com/lox/badugi/table"
)

// DefaultMaxRedraws bounds how often the right hand is redrawn while it
// shares a card with the left one.
const DefaultMaxRedraws = 1000

// ErrNoDistinctHand is returned when no line sharing no card with the left
// hand was drawn within the redraw limit.
var ErrNoDistinctHand = errors.New("could not deal two distinct hands")

// Side is the hand a player bets on
type Side int

const (
	Left Side = iota - 1
	_
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseSide parses "l", "left", "r" or "right" in any case
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("invalid side %q", s)
}

// Showdown is a pair of analyzed hands and their comparison.
type Showdown struct {
	Left      *badugi.Hand
	Right     *badugi.Hand
	LeftRead  table.Read
	RightRead table.Read

	result int
}

// Result is positive when the left hand wins, negative when the right hand
// wins and zero for a tie.
func (s *Showdown) Result() int {
	return s.result
}

// Winner returns the winning side, or 0 for a tie.
func (s *Showdown) Winner() Side {
	switch {
	case s.result > 0:
		return Left
	case s.result < 0:
		return Right
	default:
		return 0
	}
}

// Accepts reports whether betting on choice is correct. Either side is
// correct when the hands tie.
func (s *Showdown) Accepts(choice Side) bool {
	w := s.Winner()
	return w == 0 || w == choice
}

// Dealer draws random lines from a table.
type Dealer struct {
	grid       *table.Grid
	rng        table.Source
	logger     *log.Logger
	maxRedraws int
}

// New creates a dealer for grid. rng is the dealing randomness, independent of
// the source that laid out the table.
func New(grid *table.Grid, rng table.Source, logger *log.Logger) *Dealer {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Dealer{
		grid:       grid,
		rng:        rng,
		logger:     logger,
		maxRedraws: DefaultMaxRedraws,
	}
}

// RandomLine picks a uniformly random start cell and direction.
func (d *Dealer) RandomLine() (table.Read, table.Line) {
	read := table.Read{
		X:   d.rng.Intn(table.Size),
		Y:   d.rng.Intn(table.Size),
		Dir: table.Direction(d.rng.Intn(table.NumDirections)),
	}
	return read, d.grid.Line(read.X, read.Y, read.Dir)
}

// Deal draws a left hand, then redraws the right hand until it shares no card
// with the left, and compares the two.
func (d *Dealer) Deal() (*Showdown, error) {
	leftRead, leftLine := d.RandomLine()
	left := leftLine.Hand()

	var (
		rightRead table.Read
		right     *badugi.Hand
	)
	for range d.maxRedraws {
		read, line := d.RandomLine()
		if h := line.Hand(); h.DistinctFrom(left) {
			rightRead, right = read, h
			break
		}
	}
	if right == nil {
		return nil, fmt.Errorf("%w after %d draws", ErrNoDistinctHand, d.maxRedraws)
	}

	left.Analyze()
	right.Analyze()
	result, err := left.Compare(right)
	if err != nil {
		return nil, err
	}

	s := &Showdown{
		Left:      left,
		Right:     right,
		LeftRead:  leftRead,
		RightRead: rightRead,
		result:    result,
	}
	d.logShowdown(s)
	return s, nil
}

func (d *Dealer) logShowdown(s *Showdown) {
	for _, side := range []struct {
		name string
		hand *badugi.Hand
		read table.Read
	}{
		{"left", s.Left, s.LeftRead},
		{"right", s.Right, s.RightRead},
	} {
		contents, _ := side.hand.Contents()
		desc, _ := side.hand.Description()
		d.logger.Info("Dealt hand", "side", side.name, "cards", contents,
			"ranking", badugi.Article(desc)+" "+desc, "line", side.read)
	}

	switch s.Winner() {
	case Left:
		d.logger.Info("The left hand is the better hand")
	case Right:
		d.logger.Info("The right hand is the better hand")
	default:
		d.logger.Info("The two hands have equal strength, either may be chosen")
	}
}
