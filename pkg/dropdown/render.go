package dropdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/styledselect/internal/icons"
)

// Markup renders embedded markdown in option display text. Only multiline
// widgets carry one; single-line widgets truncate raw text instead.
type Markup struct {
	r *glamour.TermRenderer
}

// NewMarkup creates a markdown renderer wrapping at the given width.
func NewMarkup(width int) (*Markup, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Markup{r: r}, nil
}

// Render renders text as markdown, falling back to the raw text on error.
func (m *Markup) Render(text string) string {
	out, err := m.r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// Projector renders SelectionState onto the text surface and option list.
// It is purely a function of its inputs: it holds styling configuration but
// no mutable state, and is safe to call idempotently after every transition.
type Projector struct {
	Styles    Styles
	Icons     icons.Set
	Separator bool    // border between text surface and indicator
	Markup    *Markup // non-nil only in multiline mode
}

// Face renders the replacement text surface: display text, optional
// separator, and the indicator glyph for the current open/closed state.
func (p Projector) Face(st SelectionState, ly Layout) string {
	text := st.DisplayText()
	if p.Markup != nil {
		text = p.Markup.Render(text)
	} else {
		text = ansi.Truncate(text, ly.FaceTextWidth, "…")
	}

	face := p.Styles.Face
	if st.ListExpanded {
		face = p.Styles.FaceOpen
	}
	glyph := p.Icons.Collapsed
	if st.ListExpanded {
		glyph = p.Icons.Expanded
	}

	parts := []string{face.Width(ly.FaceTextWidth).Render(text)}
	if p.Separator {
		parts = append(parts, p.Styles.Muted.Render("│"))
	}
	parts = append(parts, p.Styles.Indicator.Render(glyph))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// List renders the option list overlay, or "" while collapsed. Exactly one
// row — the candidate's — is highlighted; with no candidate, none is. Rows
// beyond the layout's list cap scroll so the candidate stays visible, with
// the scroll window derived purely from the state.
func (p Projector) List(st SelectionState, m *OptionModel, ly Layout) string {
	if !st.ListExpanded {
		return ""
	}
	if len(m.Rows) == 0 {
		return p.Styles.List.Render(p.Styles.Muted.Render("(no options)"))
	}

	innerWidth := ly.OuterWidth - 2 // list frame border
	if innerWidth < 1 {
		innerWidth = 1
	}

	offset, visible := listWindow(m, st.Candidate, ly.ListMaxHeight)

	var b strings.Builder
	if offset > 0 {
		b.WriteString(p.Styles.Muted.Render("↑ more"))
		b.WriteString("\n")
	}
	for i := offset; i < offset+visible && i < len(m.Rows); i++ {
		row := m.Rows[i]
		var line string
		switch {
		case row.Header:
			line = p.Styles.GroupHeader.Width(innerWidth).Render(row.Label)
		case st.Candidate != nil && row.Option == st.Candidate:
			line = p.Styles.RowHighlight.Width(innerWidth).Render(rowText(row, innerWidth))
		default:
			line = p.Styles.Row.Width(innerWidth).Render(rowText(row, innerWidth))
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	if offset+visible < len(m.Rows) {
		b.WriteString("\n")
		b.WriteString(p.Styles.Muted.Render("↓ more"))
	}
	return p.Styles.List.Render(b.String())
}

// View renders the whole surface: the face, with the option list joined
// below it while expanded.
func (p Projector) View(st SelectionState, m *OptionModel, ly Layout) string {
	face := p.Face(st, ly)
	list := p.List(st, m, ly)
	if list == "" {
		return face
	}
	return lipgloss.JoinVertical(lipgloss.Left, face, list)
}

func rowText(row Row, width int) string {
	text := row.Option.DisplayText
	indent := "  "
	if row.Option.Group != nil {
		indent = "    "
	}
	return ansi.Truncate(indent+text, width, "…")
}

// listWindow computes the scroll window that keeps the candidate's row
// visible within maxHeight rows. Deterministic in its inputs, so the
// projector stays stateless.
func listWindow(m *OptionModel, candidate *Option, maxHeight int) (offset, visible int) {
	total := len(m.Rows)
	visible = maxHeight
	if visible > total {
		visible = total
	}
	if visible < 1 {
		visible = 1
	}
	cand := m.rowIndex(candidate)
	if cand < 0 {
		return 0, visible
	}
	if cand >= visible {
		offset = cand - visible + 1
	}
	if offset > total-visible {
		offset = total - visible
	}
	return offset, visible
}
