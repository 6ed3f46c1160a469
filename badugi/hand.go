package badugi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWrongHandSize is returned when a hand is built from other than four cards.
	ErrWrongHandSize = errors.New("hand must contain exactly 4 cards")
	// ErrNotAnalyzed is returned when a hand's result is read before Analyze.
	ErrNotAnalyzed = errors.New("hand not analyzed")
)

// HandSize is the number of cards in a Badugi hand
const HandSize = 4

// Hand is a four-card Badugi hand. Its ranking is computed once by Analyze and
// cached for later comparisons.
type Hand struct {
	cards [HandSize]Card

	analyzed    bool
	ranking     Ranking
	contents    string
	description string
}

// NewHand creates a hand from exactly four cards
func NewHand(cards []Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w, got %d", ErrWrongHandSize, len(cards))
	}
	h := &Hand{}
	copy(h.cards[:], cards)
	return h, nil
}

// ParseHand creates a hand from card codes
func ParseHand(codes ...string) (*Hand, error) {
	cards, err := ParseCards(codes...)
	if err != nil {
		return nil, err
	}
	return NewHand(cards)
}

// Cards returns the hand's cards in dealt order
func (h *Hand) Cards() [HandSize]Card {
	return h.cards
}

// Analyze evaluates the hand. Calling it again is a no-op.
func (h *Hand) Analyze() {
	if h.analyzed {
		return
	}

	h.ranking = Evaluate(h.cards)

	parts := make([]string, HandSize)
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	h.contents = strings.Join(parts, " ")
	h.description = h.ranking.String()
	h.analyzed = true
}

// Analyzed reports whether Analyze has run
func (h *Hand) Analyzed() bool {
	return h.analyzed
}

// Ranking returns the evaluated ranking
func (h *Hand) Ranking() (Ranking, error) {
	if !h.analyzed {
		return Ranking{}, ErrNotAnalyzed
	}
	return h.ranking, nil
}

// Contents returns the cards as a space separated string (e.g. "2♠ 2♥ 5♦ 9♣").
func (h *Hand) Contents() (string, error) {
	if !h.analyzed {
		return "", ErrNotAnalyzed
	}
	return h.contents, nil
}

// Description returns the ranking description (e.g. "Nine-low three card hand (Nine, Five, Deuce)").
func (h *Hand) Description() (string, error) {
	if !h.analyzed {
		return "", ErrNotAnalyzed
	}
	return h.description, nil
}

// Compare returns a positive number if h beats other, negative if other wins
// and zero for a tie. Both hands must have been analyzed.
func (h *Hand) Compare(other *Hand) (int, error) {
	if !h.analyzed || other == nil || !other.analyzed {
		return 0, ErrNotAnalyzed
	}
	return h.ranking.Compare(other.ranking), nil
}

// DistinctFrom reports whether h and other share no physical card. A nil hand
// is distinct from everything.
func (h *Hand) DistinctFrom(other *Hand) bool {
	if h == nil || other == nil {
		return true
	}
	for _, a := range other.cards {
		for _, b := range h.cards {
			if a == b {
				return false
			}
		}
	}
	return true
}

func (h *Hand) String() string {
	parts := make([]string, HandSize)
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

// Article returns "an" when s starts with a vowel and "a" otherwise.
func Article(s string) string {
	if s != "" && strings.ContainsRune("aeiouAEIOU", rune(s[0])) {
		return "an"
	}
	return "a"
}
