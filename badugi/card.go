package badugi

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCard is returned for malformed two-character card codes.
var ErrInvalidCard = errors.New("invalid card code")

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in the deck
const NumSuits = 4

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single upper-case letter used in card codes
func (s Suit) Letter() byte {
	switch s {
	case Spades:
		return 'S'
	case Hearts:
		return 'H'
	case Diamonds:
		return 'D'
	case Clubs:
		return 'C'
	default:
		return '?'
	}
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank. Aces are low (1) and Kings high (13); in Badugi a lower
// rank is a better card.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const rankChars = "A23456789TJQK"

var rankNames = [...]string{
	"(null)", "Ace", "Deuce", "Three", "Four", "Five", "Six",
	"Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the single-character rank used in card codes
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankChars[r-1 : r]
}

// Name returns the spoken name of the rank ("Ace", "Deuce", ... "King").
func (r Rank) Name() string {
	if !r.Valid() {
		return rankNames[0]
	}
	return rankNames[r]
}

// Card is an immutable playing card. The zero value is not a card and is used
// to mark empty cells.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsZero reports whether c is the empty card
func (c Card) IsZero() bool {
	return c.Rank == 0
}

// String returns the card as rank and suit glyph (e.g. "A♠")
func (c Card) String() string {
	if c.IsZero() {
		return "--"
	}
	return c.Rank.String() + c.Suit.String()
}

// Code returns the ASCII card code (e.g. "AS")
func (c Card) Code() string {
	if c.IsZero() {
		return "--"
	}
	return c.Rank.String() + string(c.Suit.Letter())
}

// Glyph returns the Unicode playing card character for c. The block reserves a
// code point for the Knight between Jack and Queen, which this deck skips.
func (c Card) Glyph() string {
	if c.IsZero() {
		return "?"
	}
	r := rune(0x1F0A1) + 0x10*rune(c.Suit) + rune(c.Rank)
	if c.Rank <= Jack {
		r--
	}
	return string(r)
}

// ParseCard parses a two-character card code such as "AS", "Td" or "Q♥".
// Suits may be given as letters (either case) or as filled or outline glyphs.
func ParseCard(code string) (Card, error) {
	if utf8.RuneCountInString(code) != 2 {
		return Card{}, fmt.Errorf("%w %q: expected 2 characters", ErrInvalidCard, code)
	}

	runes := []rune(code)
	rank, err := parseRank(runes[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %s", ErrInvalidCard, code, err)
	}
	suit, err := parseSuit(runes[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %s", ErrInvalidCard, code, err)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(r rune) (Rank, error) {
	switch r {
	case 'A':
		return Ace, nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'C':
		return 0, errors.New("this deck does not use Knights")
	}
	if r >= '2' && r <= '9' {
		return Rank(r - '0'), nil
	}
	return 0, fmt.Errorf("invalid rank %q", r)
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 'C', 'c', '♣', '♧':
		return Clubs, nil
	case 'D', 'd', '♦', '♢':
		return Diamonds, nil
	case 'H', 'h', '♥', '♡':
		return Hearts, nil
	case 'S', 's', '♠', '♤':
		return Spades, nil
	}
	return 0, fmt.Errorf("invalid suit %q", r)
}

// MustParseCard parses a card code and panics on error. Intended for tables
// of known-good codes.
func MustParseCard(code string) Card {
	card, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return card
}

// ParseCards parses a list of card codes. A single argument may also hold
// several codes separated by spaces or commas.
func ParseCards(codes ...string) ([]Card, error) {
	var cards []Card
	for _, arg := range codes {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ' ' || r == ','
		})
		for _, code := range fields {
			card, err := ParseCard(code)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards parses card codes and panics on error.
func MustParseCards(codes ...string) []Card {
	cards, err := ParseCards(codes...)
	if err != nil {
		panic(err)
	}
	return cards
}

// SortByLowRank orders cards from lowest to highest rank. Suits are not
// compared, so use it with a stable sort.
func SortByLowRank(a, b Card) int {
	return int(a.Rank) - int(b.Rank)
}
