package dropdown

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds every lipgloss style the projector uses. Widgets layer the
// attach-time extra styles on top of Face in order.
type Styles struct {
	Face         lipgloss.Style // closed text surface
	FaceOpen     lipgloss.Style // text surface while the list is expanded
	Indicator    lipgloss.Style // the collapse/expand glyph
	List         lipgloss.Style // option list frame
	Row          lipgloss.Style
	RowHighlight lipgloss.Style // exactly the candidate's row
	GroupHeader  lipgloss.Style
	Muted        lipgloss.Style // scroll indicators, empty-list placeholder
}

// DefaultStyles returns the stock Catppuccin Mocha styling.
func DefaultStyles() Styles {
	return StylesFromFlavor(catppuccin.Mocha)
}

// StylesFromFlavor builds a style set from a Catppuccin flavor.
func StylesFromFlavor(flavor catppuccin.Flavor) Styles {
	var (
		base     = lipgloss.Color(flavor.Base().Hex)
		surface0 = lipgloss.Color(flavor.Surface0().Hex)
		text     = lipgloss.Color(flavor.Text().Hex)
		blue     = lipgloss.Color(flavor.Blue().Hex)
		mauve    = lipgloss.Color(flavor.Mauve().Hex)
		overlay0 = lipgloss.Color(flavor.Overlay0().Hex)
	)
	return Styles{
		Face: lipgloss.NewStyle().
			Foreground(text).
			Background(surface0).
			Padding(0, 1),
		FaceOpen: lipgloss.NewStyle().
			Foreground(base).
			Background(blue).
			Padding(0, 1),
		Indicator: lipgloss.NewStyle().
			Foreground(blue),
		List: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(overlay0),
		Row: lipgloss.NewStyle().
			Foreground(text),
		RowHighlight: lipgloss.NewStyle().
			Foreground(base).
			Background(blue).
			Bold(true),
		GroupHeader: lipgloss.NewStyle().
			Foreground(mauve).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(overlay0),
	}
}
