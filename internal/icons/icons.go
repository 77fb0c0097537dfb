// Package icons resolves the indicator glyph set a widget renders next to
// its text surface. The attach-time base path points at a directory that may
// carry an indicators.json manifest; absent or partial manifests fall back
// to the built-in glyphs, since asset presence is a styling concern rather
// than an initialization failure.
package icons

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const manifestFile = "indicators.json"

// Set holds the indicator glyphs for the two display states.
type Set struct {
	Collapsed string `json:"collapsed"`
	Expanded  string `json:"expanded"`
}

// Default is the built-in glyph set.
func Default() Set {
	return Set{Collapsed: "▾", Expanded: "▴"}
}

// Load reads the glyph manifest under base. A missing manifest yields the
// defaults; a manifest that exists but cannot be parsed is an error. Empty
// manifest fields keep their default glyph.
func Load(base string) (Set, error) {
	s := Default()

	data, err := os.ReadFile(filepath.Join(base, manifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	var m Set
	if err := json.Unmarshal(data, &m); err != nil {
		return s, err
	}
	if m.Collapsed != "" {
		s.Collapsed = m.Collapsed
	}
	if m.Expanded != "" {
		s.Expanded = m.Expanded
	}
	return s, nil
}
