package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/badugi/badugi"
)

func TestAuditSeedOne(t *testing.T) {
	t.Parallel()

	report := Audit(New(1))
	assert.Equal(t, TotalLines, report.Lines)
	assert.False(t, report.Conflicts())
	assert.Empty(t, report.RepeatedCards)
	assert.Equal(t, [badugi.Badugi + 1]int{0, 2, 268, 462, 68}, report.Classes)
}

func TestAuditClassesAcrossSeeds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [badugi.Badugi + 1]int{0, 12, 304, 444, 40}, Audit(New(2)).Classes)
	assert.Equal(t, [badugi.Badugi + 1]int{0, 8, 286, 456, 50}, Audit(New(42)).Classes)
	assert.Equal(t, [badugi.Badugi + 1]int{0, 2, 262, 476, 60}, Audit(New(0)).Classes)
}

func TestFallbackTable(t *testing.T) {
	t.Parallel()

	g := Fallback()
	require.NoError(t, CheckInventory(g))
	assert.True(t, g.UsedFallback())
	assert.Equal(t, int64(FallbackSeed), g.Seed())

	report := Audit(g)
	assert.False(t, report.Conflicts())
	assert.Empty(t, report.RepeatedCards)
	assert.Equal(t, [badugi.Badugi + 1]int{0, 4, 288, 452, 56}, report.Classes)

	assert.Equal(t, line(t, "7S 2S 5C KH"), g.Line(9, 9, Right))
	assert.Equal(t, line(t, "8D 2S 2H 7D"), g.Line(0, 0, Up))
}

func TestFallbackSeedIsOnlyALabel(t *testing.T) {
	t.Parallel()

	g := New(FallbackSeed)
	assert.False(t, g.UsedFallback())
	assert.NotEqual(t, Fallback().Cells(), g.Cells())
}

func TestAuditFindsConflicts(t *testing.T) {
	t.Parallel()

	g := Fallback()
	// Copy a pair of neighbours so two lines open with the same cards.
	g.cells[0][0] = g.cells[5][5]
	g.cells[1][0] = g.cells[6][5]

	report := Audit(g)
	assert.True(t, report.Conflicts())
	assert.Less(t, report.UniquePrefixes(), TotalLines)
	for _, d := range report.DuplicatePrefixes {
		first := g.Line(d.First.X, d.First.Y, d.First.Dir)
		again := g.Line(d.Read.X, d.Read.Y, d.Read.Dir)
		assert.Equal(t, d.Pair, [2]badugi.Card{first[0], first[1]})
		assert.Equal(t, d.Pair, [2]badugi.Card{again[0], again[1]})
	}

	require.ErrorIs(t, CheckInventory(g), ErrInventory)
}

func TestCheckInventoryEmptyCell(t *testing.T) {
	t.Parallel()

	g := Fallback()
	g.cells[3][4] = badugi.Card{}
	err := CheckInventory(g)
	require.ErrorIs(t, err, ErrInventory)
	assert.Contains(t, err.Error(), "(3,4)")
}

func TestHasRepeat(t *testing.T) {
	t.Parallel()

	assert.True(t, hasRepeat(line(t, "AS 2H AS 4C")))
	assert.False(t, hasRepeat(line(t, "AS 2H AH 4C")))
}
