package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/simulator"
)

func newResetCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the seeded demo balance and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			sim := simulator.New(simulatorOptions(cfg), log)
			sim.Reset()

			fmt.Fprintf(cmd.OutOrStdout(), "Demo data reset: balance %s %s, %d transactions\n",
				sim.Balance().StringFixed(2), sim.Currency(), len(sim.Transactions()))
			return nil
		},
	}
}
