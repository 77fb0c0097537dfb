// Package demo hosts the showcase scenarios and the Bubble Tea program the
// demo command runs.
package demo

import (
	"fmt"

	"github.com/marcus/styledselect/pkg/dropdown"
)

// Scenario is one showcase configuration: a control plus the attach options
// used on it.
type Scenario struct {
	Name    string
	Summary string
	Entries []dropdown.Entry
	Opts    dropdown.Options
}

// Scenarios returns the built-in showcases. iconBase flows into every
// scenario's attach options.
func Scenarios(iconBase string) []Scenario {
	return []Scenario{
		{
			Name:    "flat",
			Summary: "top-level options only, full replacement",
			Entries: []dropdown.Entry{
				dropdown.Opt("", ""),
				dropdown.Opt("red", "Red"),
				dropdown.Opt("green", "Green"),
				dropdown.Opt("blue", "Blue"),
			},
			Opts: dropdown.Options{IconBase: iconBase, FullReplace: true},
		},
		{
			Name:    "grouped",
			Summary: "grouped options with boundary-crossing navigation",
			Entries: []dropdown.Entry{
				dropdown.Opt("", ""),
				dropdown.Opt("3", "An Option"),
				dropdown.Opt("4", "Another Option"),
				dropdown.GroupOf("G",
					dropdown.Opt("5", "Grouped A"),
					dropdown.Opt("6", "Grouped B"),
				),
				dropdown.Opt("2", "Last Option"),
			},
			Opts: dropdown.Options{IconBase: iconBase, FullReplace: true},
		},
		{
			Name:    "multiline",
			Summary: "markup in option text, rendered as markdown",
			Entries: []dropdown.Entry{
				dropdown.Opt("plain", "Plain text"),
				dropdown.Opt("bold", "**Bold** choice"),
				dropdown.Opt("mixed", "A `code` _span_"),
			},
			Opts: dropdown.Options{IconBase: iconBase, FullReplace: true, Multiline: true},
		},
		{
			Name:    "overlay",
			Summary: "overlay-only mode: the control stays interactive",
			Entries: []dropdown.Entry{
				dropdown.Opt("a", "Mirrored A"),
				dropdown.Opt("b", "Mirrored B"),
			},
			Opts: dropdown.Options{IconBase: iconBase},
		},
	}
}

// Find returns the named scenario.
func Find(scenarios []Scenario, name string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", name)
}
