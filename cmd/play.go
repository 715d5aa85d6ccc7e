package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"menuctl/internal/tui/controller"
	"menuctl/pkg/logging"
)

// playDebug enables verbose logging in the TUI status bar.
var playDebug bool

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Launch the interactive menu shell",
		Long: `Launches the full-screen menu shell.

Navigate the tabs by dragging the screen with the mouse or with the
arrow keys, open the admin panel with 's' to rearrange tabs, place
live events and switch theme presets, and press '?' for the complete
key reference. Changes are persisted and restored on the next launch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := controller.NewProgram(playDebug)
			if err != nil {
				return fmt.Errorf("failed to start the menu shell: %w", err)
			}
			defer logging.CloseChannel()

			if _, err := program.Run(); err != nil {
				return fmt.Errorf("menu shell exited with an error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&playDebug, "debug", false, "Show debug log lines in the status bar")
	return cmd
}
