package demo

import (
	"fmt"

	catppuccin "github.com/catppuccin/go"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/styledselect/pkg/dropdown"
)

// Model is the Bubble Tea program hosting one scenario's widget. It owns the
// demo chrome; the widget owns its own state. Window size changes go through
// the package-level registry exactly once, never per widget.
type Model struct {
	scenario Scenario
	src      *dropdown.Select
	widget   *dropdown.Widget

	title  lipgloss.Style
	status lipgloss.Style
	hint   lipgloss.Style

	lastChange string
	quitting   bool
}

// New attaches the scenario's widget and builds the program model.
func New(s Scenario, flavor catppuccin.Flavor) (*Model, error) {
	src := dropdown.NewSelect(s.Entries...)
	w, err := dropdown.Attach(src, s.Opts)
	if err != nil {
		return nil, err
	}
	return &Model{
		scenario: s,
		src:      src,
		widget:   w,
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Mauve().Hex)).
			Bold(true),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Green().Hex)),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Overlay0().Hex)),
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		dropdown.Viewport(msg.Width, msg.Height)
		return m, nil

	case dropdown.ChangedMsg:
		m.lastChange = msg.Value
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.widget.Close()
			return m, tea.Quit
		case " ":
			// Space toggles the list like a pointer press on the face.
			if err := m.widget.ClickOutside(); err != nil {
				return m, nil
			}
			return m, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			// Digits mutate the control directly, like a programmatic or
			// assistive-technology write; the widget mirrors it.
			idx := int(msg.String()[0] - '1')
			if model := m.widget.Model(); idx < model.Len() {
				m.src.SetValue(model.Flat[idx].Value)
			}
			return m, nil
		}
		return m, m.widget.Update(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.title.Render("styledselect · " + m.scenario.Name)
	status := fmt.Sprintf("control value: %q", m.src.Value())
	if m.lastChange != "" {
		status += m.status.Render("  (changed → " + m.lastChange + ")")
	}
	hint := m.hint.Render("space open · ↑/↓ navigate · enter commit · esc cancel · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.hint.Render(m.scenario.Summary),
		"",
		m.widget.View(),
		"",
		status,
		hint,
	)
}
