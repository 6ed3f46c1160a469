package display

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/badugi/badugi"
)

// Deck is a colour scheme for card faces, selectable by name.
type Deck struct {
	Name     string
	patterns []*regexp.Regexp
	colors   [badugi.NumSuits]lipgloss.Color
}

// DefaultDeckName is used when no deck is configured or the name is unknown
const DefaultDeckName = "default"

var decks = []*Deck{
	{
		Name:     DefaultDeckName,
		patterns: compile(`^default$`, `^(standard|normal|classic)$`, `^two[\s-]?colou?r$`),
		colors: [badugi.NumSuits]lipgloss.Color{
			badugi.Spades:   "#FAFAFA",
			badugi.Hearts:   "#FF6B6B",
			badugi.Diamonds: "#FF6B6B",
			badugi.Clubs:    "#FAFAFA",
		},
	},
	{
		Name:     "four-color",
		patterns: compile(`^four[\s-]?colou?rs?$`, `^4[\s-]?colou?rs?$`),
		colors: [badugi.NumSuits]lipgloss.Color{
			badugi.Spades:   "#FAFAFA",
			badugi.Hearts:   "#FF6B6B",
			badugi.Diamonds: "#5DADE2",
			badugi.Clubs:    "#58D68D",
		},
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// Matches reports whether name selects this deck. Matching ignores case.
func (d *Deck) Matches(name string) bool {
	for _, rx := range d.patterns {
		if rx.MatchString(name) {
			return true
		}
	}
	return false
}

// Color returns the face colour for suit
func (d *Deck) Color(suit badugi.Suit) lipgloss.Color {
	return d.colors[suit%badugi.NumSuits]
}

// FindDeck returns the deck selected by name. The default deck is returned
// with ok == false when nothing matches.
func FindDeck(name string) (deck *Deck, ok bool) {
	for _, d := range decks {
		if d.Matches(name) {
			return d, true
		}
	}
	return decks[0], false
}

// DeckNames returns the canonical names of the built-in decks
func DeckNames() []string {
	names := make([]string, len(decks))
	for i, d := range decks {
		names[i] = d.Name
	}
	return names
}
