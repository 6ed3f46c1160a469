package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/badugi/badugi"
)

func line(t *testing.T, codes string) Line {
	t.Helper()
	cards, err := badugi.ParseCards(codes)
	require.NoError(t, err)
	require.Len(t, cards, LineLength)
	return Line(cards)
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Direction
	}{
		{"up", Up},
		{"Right", Right},
		{"down-left", DownLeft},
		{"down_left", DownLeft},
		{"UpLeft", UpLeft},
		{"up right", UpRight},
		{"DOWN-RIGHT", DownRight},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDirection("sideways")
	require.Error(t, err)
}

func TestDirectionDeltas(t *testing.T) {
	t.Parallel()

	for d := range Direction(NumDirections) {
		dx, dy := d.Delta()
		assert.False(t, dx == 0 && dy == 0, "%s must move", d)

		// Each direction has its opposite four steps around the compass.
		ox, oy := ((d + 4) % NumDirections).Delta()
		assert.Equal(t, -dx, ox, d.String())
		assert.Equal(t, -dy, oy, d.String())

		back, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
	assert.Equal(t, "unknown", Direction(NumDirections).String())
}

func TestInvalidDirection(t *testing.T) {
	t.Parallel()

	bad := Direction(NumDirections)
	assert.False(t, bad.Valid())
	assert.True(t, UpLeft.Valid())
	assert.Panics(t, func() { bad.Delta() })
	assert.Panics(t, func() { New(1).Line(0, 0, bad) })
}

func TestSeedOneLayout(t *testing.T) {
	t.Parallel()

	g := New(1)
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	require.Len(t, rows, Size)
	assert.Equal(t, "6♦ Q♥ T♣ 6♥ 5♥ A♦ K♦ 2♥ A♣ Q♦", rows[0])
	assert.Equal(t, "9♣ A♥ Q♦ 4♠ J♠ 4♥ 8♥ Q♥ J♠ 3♦", rows[1])
	assert.Equal(t, "7♣ 7♥ T♠ A♠ 7♠ 7♣ 2♠ 6♠ 3♣ 9♠", rows[9])

	assert.Equal(t, int64(1), g.Seed())
	assert.Equal(t, 1, g.Attempts())
	assert.False(t, g.UsedFallback())
}

func TestLineReading(t *testing.T) {
	t.Parallel()

	g := New(1)

	tests := []struct {
		x, y int
		dir  Direction
		want string
	}{
		{0, 0, Right, "6D QH TC 6H"},
		{9, 9, Right, "9S 7C 7H TS"},
		{3, 4, DownLeft, "2D TH JC 4D"},
		{0, 0, Up, "6D 7C AH 4D"},
		{10, -10, Up, "6D 7C AH 4D"},
	}
	for _, tt := range tests {
		assert.Equal(t, line(t, tt.want), g.Line(tt.x, tt.y, tt.dir), "(%d,%d) %s", tt.x, tt.y, tt.dir)
	}

	assert.Equal(t, g.At(0, 0), g.At(-10, 20))
	assert.Equal(t, g.At(9, 9), g.At(-1, -1))
}

func TestLinesCoversEveryRead(t *testing.T) {
	t.Parallel()

	g := New(1)
	seen := make(map[Read]bool)
	for read, l := range g.Lines() {
		assert.Equal(t, g.Line(read.X, read.Y, read.Dir), l)
		seen[read] = true
	}
	assert.Len(t, seen, TotalLines)

	// Stopping early must not panic.
	n := 0
	for range g.Lines() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestLineHand(t *testing.T) {
	t.Parallel()

	h := line(t, "6D QH TC 6H").Hand()
	assert.False(t, h.Analyzed())
	h.Analyze()
	r, err := h.Ranking()
	require.NoError(t, err)
	assert.Equal(t, []badugi.Rank{badugi.Queen, badugi.Ten, badugi.Six}, r.Ranks())
}

func TestReadString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(3,4) down-left", Read{X: 3, Y: 4, Dir: DownLeft}.String())
}
