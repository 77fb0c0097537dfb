package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version string

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "styledselect",
	Short: "Styled replacement for plain terminal select controls",
	Long: `styledselect - a terminal select widget that replaces a plain selection
control with custom-styled markup while keeping the control's value authoritative.

The reusable widget lives in pkg/dropdown; this CLI hosts an interactive showcase.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
}
