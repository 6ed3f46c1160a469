package table

import "github.com/lox/badugi/badugi"

// FallbackSeed labels the fallback table. It is a historical name only: the
// table predates the current layout algorithm, and New(FallbackSeed) lays out
// an unrelated table.
const FallbackSeed = -228

// fallbackCodes is indexed [x][y]: each row of the literal is one column of
// the table.
var fallbackCodes = [Size][Size]string{
	{"8♦", "3♦", "5♦", "4♠", "9♠", "7♠", "5♣", "7♦", "2♥", "2♠"},
	{"5♠", "9♣", "8♣", "6♥", "6♦", "2♣", "J♣", "J♠", "Q♣", "5♣"},
	{"6♣", "7♣", "2♦", "J♥", "A♠", "2♥", "6♥", "3♣", "A♦", "K♥"},
	{"9♠", "Q♦", "A♣", "7♥", "6♠", "3♠", "9♦", "5♠", "5♦", "8♥"},
	{"6♠", "9♥", "9♦", "6♦", "3♦", "A♥", "J♥", "2♣", "4♦", "4♥"},
	{"7♣", "J♠", "T♠", "8♠", "2♦", "4♣", "Q♠", "K♠", "K♣", "4♣"},
	{"2♠", "5♥", "3♥", "T♦", "9♥", "J♦", "6♣", "8♠", "9♣", "A♠"},
	{"T♥", "J♣", "4♠", "Q♣", "5♥", "Q♥", "3♠", "K♦", "3♣", "Q♠"},
	{"8♥", "A♣", "A♥", "4♦", "T♣", "A♦", "8♣", "8♦", "7♥", "3♥"},
	{"T♣", "T♦", "7♦", "T♥", "J♦", "T♠", "4♥", "Q♦", "Q♥", "7♠"},
}

var fallbackCells = func() [Size][Size]badugi.Card {
	var cells [Size][Size]badugi.Card
	for x, column := range fallbackCodes {
		for y, code := range column {
			cells[x][y] = badugi.MustParseCard(code)
		}
	}
	return cells
}()

// Fallback returns the known-good table used when generation gives up.
func Fallback() *Grid {
	return fallbackFor(FallbackSeed, 0)
}

func fallbackFor(seed int64, attempts int) *Grid {
	return &Grid{
		cells:    fallbackCells,
		seed:     seed,
		attempts: attempts,
		fallback: true,
	}
}
