// Package display renders card tables, hands and audit reports for the
// terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/badugi/badugi"
	"github.com/lox/badugi/internal/dealer"
	"github.com/lox/badugi/table"
)

// Renderer formats output using a deck colour scheme.
type Renderer struct {
	deck *Deck
	lg   *lipgloss.Renderer

	header    lipgloss.Style
	axis      lipgloss.Style
	highlight lipgloss.Style
	good      lipgloss.Style
	bad       lipgloss.Style
	muted     lipgloss.Style
}

// NewRenderer creates a renderer writing to w. With color false all styling
// is reduced to plain text.
func NewRenderer(w io.Writer, deck *Deck, color bool) *Renderer {
	if deck == nil {
		deck, _ = FindDeck(DefaultDeckName)
	}
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		deck: deck,
		lg:   lg,
		header: lg.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		axis:      lg.NewStyle().Foreground(lipgloss.Color("#626262")),
		highlight: lg.NewStyle().Reverse(true),
		good: lg.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		bad: lg.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		muted: lg.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders one card in its suit colour
func (r *Renderer) Card(c badugi.Card) string {
	if c.IsZero() {
		return r.muted.Render(c.String())
	}
	return r.lg.NewStyle().Foreground(r.deck.Color(c.Suit)).Bold(true).Render(c.String())
}

// Cards renders cards separated by spaces
func (r *Renderer) Cards(cards ...badugi.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Grid renders the table with column and row labels. Cells covered by any of
// the given reads are highlighted.
func (r *Renderer) Grid(g *table.Grid, reads ...table.Read) string {
	marked := make(map[[2]int]bool)
	for _, read := range reads {
		dx, dy := read.Dir.Delta()
		for k := range table.LineLength {
			x := ((read.X+k*dx)%table.Size + table.Size) % table.Size
			y := ((read.Y+k*dy)%table.Size + table.Size) % table.Size
			marked[[2]int{x, y}] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for x := range table.Size {
		sb.WriteString(r.axis.Render(fmt.Sprintf(" %d ", x)))
	}
	sb.WriteByte('\n')
	for y := range table.Size {
		sb.WriteString(r.axis.Render(fmt.Sprintf("%2d ", y)))
		for x := range table.Size {
			cell := r.Card(g.At(x, y))
			if marked[[2]int{x, y}] {
				cell = r.highlight.Render(g.At(x, y).String())
			}
			sb.WriteByte(' ')
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TableHeader renders the one-line summary above a grid.
func (r *Renderer) TableHeader(g *table.Grid) string {
	title := fmt.Sprintf(" seed %d ", g.Seed())
	if g.UsedFallback() {
		return r.header.Render(title) + " " + r.bad.Render("fallback table")
	}
	return r.header.Render(title) + " " + r.muted.Render(fmt.Sprintf("%d attempt(s)", g.Attempts()))
}

// Hand renders an analyzed hand and its description
func (r *Renderer) Hand(h *badugi.Hand) string {
	cards := h.Cards()
	desc, err := h.Description()
	if err != nil {
		return r.Cards(cards[:]...)
	}
	return fmt.Sprintf("%s  %s", r.Cards(cards[:]...), desc)
}

// Showdown renders both hands and the verdict
func (r *Renderer) Showdown(s *dealer.Showdown) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s  %s\n", r.axis.Render("left "), r.Hand(s.Left), r.muted.Render(s.LeftRead.String()))
	fmt.Fprintf(&sb, "%s %s  %s\n", r.axis.Render("right"), r.Hand(s.Right), r.muted.Render(s.RightRead.String()))
	switch s.Winner() {
	case dealer.Left:
		sb.WriteString(r.good.Render("left hand wins"))
	case dealer.Right:
		sb.WriteString(r.good.Render("right hand wins"))
	default:
		sb.WriteString(r.muted.Render("tie, either hand may be chosen"))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Report renders an audit report
func (r *Renderer) Report(rep *table.Report) string {
	var sb strings.Builder
	if rep.Conflicts() {
		fmt.Fprintf(&sb, "%s %d of %d lines repeat an opening pair\n",
			r.bad.Render("conflicts:"), len(rep.DuplicatePrefixes), rep.Lines)
		for _, d := range rep.DuplicatePrefixes {
			fmt.Fprintf(&sb, "  %s %s also opens %s\n", r.Cards(d.Pair[:]...), d.Read, d.First)
		}
	} else {
		sb.WriteString(r.good.Render("No conflicts."))
		sb.WriteByte('\n')
	}
	if n := len(rep.RepeatedCards); n > 0 {
		fmt.Fprintf(&sb, "%s %d lines hold the same card twice\n", r.bad.Render("repeats:"), n)
	}
	for _, class := range []badugi.Class{badugi.Badugi, badugi.ThreeCard, badugi.TwoCard, badugi.Single} {
		fmt.Fprintf(&sb, "%-16s %d\n", class.String()+":", rep.Classes[class])
	}
	return sb.String()
}

// Success renders a positive status line
func (r *Renderer) Success(s string) string {
	return r.good.Render(s)
}

// Failure renders a negative status line
func (r *Renderer) Failure(s string) string {
	return r.bad.Render(s)
}
