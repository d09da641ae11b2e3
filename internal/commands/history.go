package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/simulator"
)

func newBalanceCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the demo account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			sim := simulator.New(simulatorOptions(cfg), nil)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", sim.Balance().StringFixed(2), sim.Currency())
			return nil
		},
	}
}

func newHistoryCommand(configPath *string) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the demo transaction history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			sim := simulator.New(simulatorOptions(cfg), nil)
			txs := sim.Transactions()
			out := cmd.OutOrStdout()

			if asCSV {
				return simulator.WriteCSV(out, txs)
			}

			for _, tx := range txs {
				fmt.Fprintf(out, "%s  %-12s  %8s %s  %-20s  %s  [%s]\n",
					tx.Timestamp.Format("2006-01-02 15:04"),
					tx.Type,
					tx.Amount.StringFixed(2),
					tx.Currency,
					tx.Counterparty,
					tx.Description,
					tx.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of a table")

	return cmd
}
