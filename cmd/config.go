package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"menuctl/internal/config"
	"menuctl/internal/storage"
	"menuctl/pkg/logging"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or reset the persisted menu configuration",
		Long: `Works with the same configuration file the interactive shell
persists: the tab layout, live-event placement, theme preset and the
optional home-screen shortcuts.`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigResetCmd())
	return cmd
}

// openStore loads the persisted configuration the same way the TUI
// does, including the merge with defaults for partial or stale files.
func openStore() (*config.Store, error) {
	logging.InitForCLI(logging.LevelWarn, os.Stderr)

	fileStore, err := storage.NewFileStore()
	if err != nil {
		return nil, fmt.Errorf("failed to locate the configuration file: %w", err)
	}
	return config.Load(fileStore), nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Long: `Prints the effective configuration, i.e. the persisted file merged
with the built-in defaults, exactly as the shell would load it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			data, err := store.ExportJSON()
			if err != nil {
				return fmt.Errorf("failed to render the configuration: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileStore, err := storage.NewFileStore()
			if err != nil {
				return fmt.Errorf("failed to locate the configuration file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), fileStore.Path())
			return nil
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the configuration to the built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if !store.Dispatch(config.ResetToDefaults{}) {
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration already matches the defaults.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
			return nil
		},
	}
}
