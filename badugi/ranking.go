package badugi

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Class is the category of a Badugi ranking, determined by how many cards
// survive rank and suit conflicts.
type Class uint8

const (
	Single Class = iota + 1
	TwoCard
	ThreeCard
	Badugi
)

// String returns a human-readable class name
func (c Class) String() string {
	switch c {
	case Badugi:
		return "Badugi"
	case ThreeCard:
		return "three card hand"
	case TwoCard:
		return "two card hand"
	case Single:
		return "single"
	default:
		return "unknown"
	}
}

// Ranking is the evaluated value of a four-card hand: the kept ranks sorted
// from worst (numerically highest) to best. The zero value is an empty ranking
// that loses to any evaluated hand.
type Ranking struct {
	ranks [4]Rank
	n     uint8
}

// Len returns how many cards were kept
func (r Ranking) Len() int {
	return int(r.n)
}

// Ranks returns the kept ranks, worst first
func (r Ranking) Ranks() []Rank {
	return slices.Clone(r.ranks[:r.n])
}

// Class returns the class of the ranking
func (r Ranking) Class() Class {
	return Class(r.n)
}

// Worst returns the highest kept rank, which names the hand ("Nine-low").
func (r Ranking) Worst() Rank {
	if r.n == 0 {
		return 0
	}
	return r.ranks[0]
}

// Compare returns a positive number when r beats other, negative when other
// beats r and zero for a tie. More kept cards always wins; between rankings of
// equal length the first differing rank decides and the lower one wins.
func (r Ranking) Compare(other Ranking) int {
	if r.n != other.n {
		return int(r.n) - int(other.n)
	}
	for i := range int(r.n) {
		if r.ranks[i] != other.ranks[i] {
			return int(other.ranks[i]) - int(r.ranks[i])
		}
	}
	return 0
}

// String describes the ranking, e.g. "Nine-low three card hand (Nine, Five, Deuce)".
func (r Ranking) String() string {
	if r.n == 0 {
		return "no hand"
	}
	if r.n == 1 {
		return "single " + r.ranks[0].Name()
	}
	names := make([]string, r.n)
	for i, rank := range r.ranks[:r.n] {
		names[i] = rank.Name()
	}
	return fmt.Sprintf("%s-low %s (%s)", r.Worst().Name(), r.Class(), strings.Join(names, ", "))
}

// suitSet is a bitmask of suits
type suitSet uint8

func (s suitSet) has(suit Suit) bool { return s&(1<<suit) != 0 }
func (s suitSet) with(suit Suit) suitSet {
	return s | 1<<suit
}
func (s suitSet) len() int { return bits.OnesCount8(uint8(s)) }

// first returns the lowest suit in s, which must not be empty.
func (s suitSet) first() Suit {
	return Suit(bits.TrailingZeros8(uint8(s)))
}

// pendingPair is a rank held in two suits that were both still free when it
// was reached. At most one can be outstanding in a four-card hand.
type pendingPair struct {
	rank  Rank
	suits suitSet
}

// rankGroup holds the distinct suits a rank appears in. A card dealt twice
// counts once.
type rankGroup struct {
	rank  Rank
	suits suitSet
}

// Evaluate computes the Badugi ranking of four cards: the largest subset with
// pairwise distinct ranks and suits, preferring lower ranks among subsets of
// the same size.
func Evaluate(cards [4]Card) Ranking {
	var groups []rankGroup
	for _, card := range cards {
		i := slices.IndexFunc(groups, func(g rankGroup) bool { return g.rank == card.Rank })
		if i < 0 {
			groups = append(groups, rankGroup{rank: card.Rank})
			i = len(groups) - 1
		}
		groups[i].suits = groups[i].suits.with(card.Suit)
	}
	slices.SortFunc(groups, func(a, b rankGroup) int {
		return int(a.rank) - int(b.rank)
	})

	var (
		kept    Ranking
		used    suitSet
		pending *pendingPair
	)
	keep := func(rank Rank) {
		kept.ranks[kept.n] = rank
		kept.n++
	}

	for _, g := range groups {
		switch g.suits.len() {
		case 1:
			suit := g.suits.first()
			switch {
			case pending != nil && pending.suits.has(suit):
				// The pair takes the suit this card doesn't use.
				keep(pending.rank)
				keep(g.rank)
				used |= pending.suits
				pending = nil
			case !used.has(suit):
				keep(g.rank)
				used = used.with(suit)
			}
		case 2:
			if pending != nil {
				// Two pairs always resolve to one card of each.
				keep(pending.rank)
				keep(g.rank)
				pending = nil
				continue
			}
			free := g.suits &^ used
			switch free.len() {
			case 0:
			case 1:
				keep(g.rank)
				used |= free
			default:
				pending = &pendingPair{rank: g.rank, suits: g.suits}
			}
		default:
			// Three or four suits: the rank is always playable and nothing
			// else can be blocked by it.
			keep(g.rank)
		}
	}

	// Nothing claimed either suit of an outstanding pair.
	if pending != nil {
		keep(pending.rank)
	}

	slices.Sort(kept.ranks[:kept.n])
	slices.Reverse(kept.ranks[:kept.n])
	return kept
}
