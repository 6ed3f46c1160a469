package badugi

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, codes string) Ranking {
	t.Helper()
	cards, err := ParseCards(codes)
	require.NoError(t, err)
	require.Len(t, cards, HandSize)
	return Evaluate([HandSize]Card(cards))
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		hand  string
		ranks []Rank
		class Class
		desc  string
	}{
		{
			name:  "perfect badugi",
			hand:  "4C 3D 2H AS",
			ranks: []Rank{Four, Three, Two, Ace},
			class: Badugi,
			desc:  "Four-low Badugi (Four, Three, Deuce, Ace)",
		},
		{
			name:  "pair resolved at the end",
			hand:  "2S 2H 5D 9C",
			ranks: []Rank{Nine, Five, Two},
			class: ThreeCard,
			desc:  "Nine-low three card hand (Nine, Five, Deuce)",
		},
		{
			name:  "trips collapse to one rank",
			hand:  "AC AD AH KS",
			ranks: []Rank{King, Ace},
			class: TwoCard,
			desc:  "King-low two card hand (King, Ace)",
		},
		{
			name:  "four of a kind",
			hand:  "7C 7D 7H 7S",
			ranks: []Rank{Seven},
			class: Single,
			desc:  "single Seven",
		},
		{
			name:  "flush keeps lowest card",
			hand:  "9H 5H KH 2H",
			ranks: []Rank{Two},
			class: Single,
			desc:  "single Deuce",
		},
		{
			name:  "suited card discarded behind lower card",
			hand:  "AS 3S 5D 7C",
			ranks: []Rank{Seven, Five, Ace},
			class: ThreeCard,
		},
		{
			name:  "lone card resolves pending pair",
			hand:  "2S 2H 3S 8D",
			ranks: []Rank{Eight, Three, Two},
			class: ThreeCard,
		},
		{
			name:  "pair with one suit already taken",
			hand:  "AS 4S 4H 9D",
			ranks: []Rank{Nine, Four, Ace},
			class: ThreeCard,
		},
		{
			name:  "pair with both suits taken",
			hand:  "AS 2H 5S 5H",
			ranks: []Rank{Two, Ace},
			class: TwoCard,
		},
		{
			name:  "two pairs",
			hand:  "2S 2H 3C 3D",
			ranks: []Rank{Three, Two},
			class: TwoCard,
		},
		{
			name:  "two pairs sharing both suits",
			hand:  "2S 2H 3S 3H",
			ranks: []Rank{Three, Two},
			class: TwoCard,
		},
		{
			name:  "two pairs sharing one suit",
			hand:  "2S 2H 3S 3D",
			ranks: []Rank{Three, Two},
			class: TwoCard,
		},
		{
			name:  "trips do not block remaining card",
			hand:  "AS AH AD 2S",
			ranks: []Rank{Two, Ace},
			class: TwoCard,
		},
		{
			name:  "pending pair then blocked lone card",
			hand:  "AD 2S 2H 3D",
			ranks: []Rank{Two, Ace},
			class: TwoCard,
		},
		{
			name:  "pair resolved by lone card then later card blocked",
			hand:  "2S 2H 3S 4H",
			ranks: []Rank{Three, Two},
			class: TwoCard,
		},
		{
			name:  "card dealt twice fills one suit",
			hand:  "2S 2S 3S 4H",
			ranks: []Rank{Four, Two},
			class: TwoCard,
		},
		{
			name:  "card dealt twice behind a used suit",
			hand:  "AS 5H 5H 6H",
			ranks: []Rank{Five, Ace},
			class: TwoCard,
		},
		{
			name:  "card dealt three times",
			hand:  "AS AS AS 2S",
			ranks: []Rank{Ace},
			class: Single,
		},
		{
			name:  "pair with one card repeated",
			hand:  "3D 3H 3H 5D",
			ranks: []Rank{Five, Three},
			class: TwoCard,
		},
		{
			name:  "order of cards does not matter",
			hand:  "QH 6D TC 6H",
			ranks: []Rank{Queen, Ten, Six},
			class: ThreeCard,
			desc:  "Queen-low three card hand (Queen, Ten, Six)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := evaluate(t, tt.hand)
			assert.Equal(t, tt.ranks, r.Ranks())
			assert.Equal(t, tt.class, r.Class())
			assert.Equal(t, len(tt.ranks), r.Len())
			assert.Equal(t, tt.ranks[0], r.Worst())
			if tt.desc != "" {
				assert.Equal(t, tt.desc, r.String())
			}
		})
	}
}

// Every four-card draw from a small deck, repeated cards included, gives a
// strictly descending ranking that matches a brute-force search.
func TestEvaluateMatchesBruteForce(t *testing.T) {
	t.Parallel()

	var deck []Card
	for suit := range Suit(NumSuits) {
		for rank := Ace; rank <= Six; rank++ {
			deck = append(deck, NewCard(rank, suit))
		}
	}

	for a := 0; a < len(deck); a++ {
		for b := a; b < len(deck); b++ {
			for c := b; c < len(deck); c++ {
				for d := c; d < len(deck); d++ {
					hand := [HandSize]Card{deck[a], deck[b], deck[c], deck[d]}
					got := Evaluate(hand)
					ranks := got.Ranks()

					require.GreaterOrEqual(t, got.Len(), 1)
					require.LessOrEqual(t, got.Len(), 4)
					require.True(t, slices.IsSortedFunc(ranks, func(x, y Rank) int { return int(y) - int(x) }), "%v", hand)
					require.Len(t, slices.Compact(slices.Clone(ranks)), len(ranks), "%v", hand)

					want := bestSubset(hand)
					require.Equal(t, want, ranks, "hand %v", hand)
				}
			}
		}
	}
}

// bestSubset searches every subset for the best legal Badugi.
func bestSubset(hand [HandSize]Card) []Rank {
	var best Ranking
	for mask := 1; mask < 1<<HandSize; mask++ {
		var cards []Card
		for i := range HandSize {
			if mask&(1<<i) != 0 {
				cards = append(cards, hand[i])
			}
		}
		if !legal(cards) {
			continue
		}
		var r Ranking
		for _, c := range cards {
			r.ranks[r.n] = c.Rank
			r.n++
		}
		slices.Sort(r.ranks[:r.n])
		slices.Reverse(r.ranks[:r.n])
		if r.Compare(best) > 0 {
			best = r
		}
	}
	return best.Ranks()
}

func legal(cards []Card) bool {
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].Rank == cards[j].Rank || cards[i].Suit == cards[j].Suit {
				return false
			}
		}
	}
	return true
}

func TestRankingCompare(t *testing.T) {
	t.Parallel()

	four := evaluate(t, "KC QD JH TS")
	three := evaluate(t, "AS 2H 3D 4D")
	assert.Positive(t, four.Compare(three), "any Badugi beats any three card hand")
	assert.Negative(t, three.Compare(four))

	deuce := evaluate(t, "2S 5S 8S TS")
	five := evaluate(t, "5H 9H JH KH")
	assert.Equal(t, []Rank{Two}, deuce.Ranks())
	assert.Equal(t, []Rank{Five}, five.Ranks())
	assert.Positive(t, deuce.Compare(five))

	nineTwo := evaluate(t, "9S 2H 9H 2S")
	nineThree := evaluate(t, "9S 3H 9H 3S")
	assert.Equal(t, []Rank{Nine, Two}, nineTwo.Ranks())
	assert.Equal(t, []Rank{Nine, Three}, nineThree.Ranks())
	assert.Positive(t, nineTwo.Compare(nineThree), "first difference at index 1 decides")

	same := evaluate(t, "9C 2D 9D 2C")
	assert.Zero(t, nineTwo.Compare(same))

	assert.Positive(t, deuce.Compare(Ranking{}))
}

func TestClassString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Badugi", Badugi.String())
	assert.Equal(t, "three card hand", ThreeCard.String())
	assert.Equal(t, "two card hand", TwoCard.String())
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "no hand", Ranking{}.String())
}
