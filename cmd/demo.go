package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/styledselect/internal/demo"
	"github.com/marcus/styledselect/internal/theme"
	"github.com/marcus/styledselect/pkg/dropdown"
)

var (
	demoScenario string
	demoFlavor   string
	demoIconBase string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive widget showcase",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoScenario, "scenario", "", "scenario to run (prompted when omitted)")
	demoCmd.Flags().StringVar(&demoFlavor, "flavor", "mocha", "demo chrome flavor: "+strings.Join(theme.Names(), ", "))
	demoCmd.Flags().StringVar(&demoIconBase, "icon-base", "./assets", "base path of the indicator glyph assets")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	flavor, err := theme.Flavor(demoFlavor)
	if err != nil {
		return err
	}

	scenarios := demo.Scenarios(demoIconBase)
	name := demoScenario
	if name == "" {
		name, err = promptScenario(scenarios)
		if err != nil {
			return err
		}
	}
	scenario, err := demo.Find(scenarios, name)
	if err != nil {
		return err
	}

	// Seed the shared viewport before the program starts; later changes
	// arrive as window-size messages.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		dropdown.Viewport(w, h)
	} else {
		slog.Warn("cannot probe terminal size, using defaults", "error", err)
	}

	m, err := demo.New(scenario, flavor)
	if err != nil {
		return fmt.Errorf("attach %s widget: %w", scenario.Name, err)
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

// promptScenario asks which showcase to run.
func promptScenario(scenarios []demo.Scenario) (string, error) {
	opts := make([]huh.Option[string], 0, len(scenarios))
	for _, s := range scenarios {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s — %s", s.Name, s.Summary), s.Name))
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Scenario").
			Options(opts...).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return name, nil
}
