package table

import (
	"errors"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/badugi/badugi"
	"github.com/lox/badugi/internal/randutil"
)

// DefaultMaxAttempts is how many times the Nine-Queen group is placed before
// falling back to the fixed table.
const DefaultMaxAttempts = 10

var errPlacementExhausted = errors.New("no acceptable cell left for second placement")

// Source is the deterministic randomness the generator consumes. The same
// seed must always produce the same sequence of draws.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements in place.
	Shuffle(n int, swap func(i, j int))
	// Seed returns the seed the source was created with.
	Seed() int64
}

// Option configures Generate
type Option func(*options)

type options struct {
	maxAttempts int
	logger      *log.Logger
}

// WithMaxAttempts overrides the number of attempts for the Nine-Queen group.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used to trace retries and fallback
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New generates the table for seed using the rule seed generator.
func New(seed int32, opts ...Option) *Grid {
	return Generate(randutil.NewMono(seed), opts...)
}

// Generate lays out a table from src. It always returns a valid table: when
// placement cannot be completed the fallback table is returned instead.
//
// Ace through Eight are placed first, twice each, then Nine through Queen,
// twice each, with up to DefaultMaxAttempts tries. The four Kings fill the
// remaining cells once each.
func Generate(src Source, opts ...Option) *Grid {
	o := options{
		maxAttempts: DefaultMaxAttempts,
		logger:      log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With("seed", src.Seed())

	base := newAttempt()
	if err := base.place(src, lowCards()); err != nil {
		logger.Warn("Low card placement failed, using fallback table", "error", err)
		return fallbackFor(src.Seed(), 0)
	}

	var placed *attempt
	tries := 0
	for tries < o.maxAttempts {
		tries++
		mid := midCards()
		src.Shuffle(len(mid), func(i, j int) { mid[i], mid[j] = mid[j], mid[i] })

		a := base.clone()
		if err := a.place(src, mid); err != nil {
			logger.Debug("Mid card placement failed", "attempt", tries, "error", err)
			continue
		}
		placed = a
		break
	}
	if placed == nil {
		logger.Warn("Mid card placement exhausted, using fallback table", "attempts", tries)
		return fallbackFor(src.Seed(), tries)
	}

	// Kings appear once each so they can't collide with anything.
	kings := kingCards()
	src.Shuffle(len(kings), func(i, j int) { kings[i], kings[j] = kings[j], kings[i] })
	for i, king := range kings {
		loc := placed.open[i]
		placed.cells[loc%Size][loc/Size] = king
	}

	logger.Debug("Generated card table", "attempts", tries)
	return &Grid{
		cells:    placed.cells,
		seed:     src.Seed(),
		attempts: tries,
	}
}

// attempt is one in-progress layout. Cells are numbered x + y*Size and open
// lists the empty ones in ascending order. Retries clone a fresh attempt from
// the last good one rather than undoing changes in place.
type attempt struct {
	cells [Size][Size]badugi.Card
	open  []int
}

func newAttempt() *attempt {
	a := &attempt{open: make([]int, Size*Size)}
	for i := range a.open {
		a.open[i] = i
	}
	return a
}

func (a *attempt) clone() *attempt {
	return &attempt{
		cells: a.cells,
		open:  slices.Clone(a.open),
	}
}

// place puts every card of the group on the table twice.
func (a *attempt) place(src Source, cards []badugi.Card) error {
	for _, card := range cards {
		// The first copy can go anywhere.
		i := src.Intn(len(a.open))
		first := a.open[i]
		a.open = slices.Delete(a.open, i, i+1)
		x, y := first%Size, first/Size
		a.cells[x][y] = card

		shadow := []badugi.Card{card}
		for _, n := range neighbours(x, y) {
			if c := a.cells[n[0]][n[1]]; !c.IsZero() {
				shadow = append(shadow, c)
			}
		}

		candidates := slices.Clone(a.open)
		for {
			if len(candidates) == 0 {
				return errPlacementExhausted
			}
			j := src.Intn(len(candidates))
			second := candidates[j]
			candidates = slices.Delete(candidates, j, j+1)

			sx, sy := second%Size, second/Size
			if a.rejects(x, y, sx, sy, shadow) {
				continue
			}

			a.cells[sx][sy] = card
			a.open = slices.DeleteFunc(a.open, func(loc int) bool { return loc == second })
			break
		}
	}
	return nil
}

// rejects reports whether the second copy of a card at (x, y) may not be
// placed at (sx, sy).
func (a *attempt) rejects(x, y, sx, sy int, shadow []badugi.Card) bool {
	dx, dy := absInt(sx-x), absInt(sy-y)

	if torusDistance(dx) <= 2 && torusDistance(dy) <= 2 {
		return true
	}

	// Offsets that let one straight line pass through both copies.
	if sharesLine(dx) && sharesLine(dy) {
		return true
	}

	// Next to something the first copy is next to: two lines would open
	// with the same pair of cards.
	for _, n := range neighbours(sx, sy) {
		if c := a.cells[n[0]][n[1]]; !c.IsZero() && slices.Contains(shadow, c) {
			return true
		}
	}
	return false
}

func neighbours(x, y int) [NumDirections][2]int {
	var out [NumDirections][2]int
	for d := range Direction(NumDirections) {
		dx, dy := d.Delta()
		out[d] = [2]int{wrap(x + dx), wrap(y + dy)}
	}
	return out
}

func torusDistance(d int) int {
	return min(d, Size-d)
}

func sharesLine(d int) bool {
	return d == 0 || d == 3 || d == 7
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var groupSuits = [...]badugi.Suit{badugi.Clubs, badugi.Spades, badugi.Hearts, badugi.Diamonds}

// lowCards returns Eight down to Ace, suit by suit.
func lowCards() []badugi.Card {
	cards := make([]badugi.Card, 0, 32)
	for _, suit := range groupSuits {
		for rank := badugi.Eight; rank >= badugi.Ace; rank-- {
			cards = append(cards, badugi.NewCard(rank, suit))
		}
	}
	return cards
}

// midCards returns Queen down to Nine, rank by rank.
func midCards() []badugi.Card {
	cards := make([]badugi.Card, 0, 16)
	for rank := badugi.Queen; rank >= badugi.Nine; rank-- {
		for _, suit := range groupSuits {
			cards = append(cards, badugi.NewCard(rank, suit))
		}
	}
	return cards
}

func kingCards() []badugi.Card {
	cards := make([]badugi.Card, 0, 4)
	for _, suit := range groupSuits {
		cards = append(cards, badugi.NewCard(badugi.King, suit))
	}
	return cards
}
