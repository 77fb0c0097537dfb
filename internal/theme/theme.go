// Package theme resolves named Catppuccin flavors for the demo chrome.
package theme

import (
	"fmt"
	"strings"

	catppuccin "github.com/catppuccin/go"
)

var flavors = map[string]catppuccin.Flavor{
	"latte":     catppuccin.Latte,
	"frappe":    catppuccin.Frappe,
	"macchiato": catppuccin.Macchiato,
	"mocha":     catppuccin.Mocha,
}

// Names returns the recognized flavor names in menu order.
func Names() []string {
	return []string{"latte", "frappe", "macchiato", "mocha"}
}

// Flavor resolves a flavor by name, case-insensitively.
func Flavor(name string) (catppuccin.Flavor, error) {
	f, ok := flavors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown flavor %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}
