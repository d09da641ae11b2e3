package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/config"
	"github.com/payflow-dev/payflow/internal/session"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a payflow workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir)
		},
	}
	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating workspace dir: %w", err)
	}

	cfgPath := filepath.Join(dir, DefaultConfigFile)
	if err := config.Save(cfgPath, config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// A fresh workspace starts logged out.
	store, err := session.Open(filepath.Join(dir, DefaultSessionFile))
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	if err := store.Logout(); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized payflow workspace at %s\n", dir)
	return nil
}
