package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/payflow-dev/payflow/internal/buildinfo"
	"github.com/payflow-dev/payflow/internal/config"
	"github.com/payflow-dev/payflow/internal/logging"
)

// DefaultConfigFile is the config filename commands look for in the working
// directory.
const DefaultConfigFile = "payflow.yaml"

// DefaultSessionFile is the session filename, kept in the same directory
// as the config file.
const DefaultSessionFile = "session.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "payflow",
		Short:   "Demo payment app core: simulated ledger and navigation gate",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", DefaultConfigFile, "path to payflow.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newLoginCommand(&configPath))
	rootCmd.AddCommand(newLogoutCommand(&configPath))
	rootCmd.AddCommand(newBalanceCommand(&configPath))
	rootCmd.AddCommand(newHistoryCommand(&configPath))
	rootCmd.AddCommand(newPayCommand(&configPath))
	rootCmd.AddCommand(newResetCommand(&configPath))
	rootCmd.AddCommand(newDemoCommand(&configPath))

	return rootCmd
}

// sessionPath returns the session file next to the config file, so a
// workspace created by `init <dir>` keeps both files together.
func sessionPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), DefaultSessionFile)
}

// loadConfig reads the config file, falling back to defaults when it is
// absent so commands work without a prior init.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the zap logger from config, letting LOG_LEVEL/LOG_FORMAT
// override.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lc := logging.FromEnv(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	return logging.New(lc)
}
