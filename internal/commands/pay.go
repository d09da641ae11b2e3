package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/config"
	"github.com/payflow-dev/payflow/internal/model"
	"github.com/payflow-dev/payflow/internal/simulator"
)

// simulatorOptions maps config onto simulator Options. A malformed seed
// balance falls back to the simulator default.
func simulatorOptions(cfg *config.Config) simulator.Options {
	balance, err := decimal.NewFromString(cfg.Seed.Balance)
	if err != nil {
		balance = decimal.Zero
	}

	// An omitted success_rate takes the simulator default; an explicit 0
	// (or below) means every payment fails, which the simulator spells as
	// a negative rate.
	var rate float64
	if v := cfg.Payments.SuccessRate; v != nil {
		rate = *v
		if rate <= 0 {
			rate = -1
		}
	}

	return simulator.Options{
		SeedBalance: balance,
		SeedCount:   cfg.Seed.TransactionCount,
		Currency:    cfg.Seed.Currency,
		SuccessRate: rate,
		MinDelay:    cfg.Payments.MinDelay(),
		MaxDelay:    cfg.Payments.MaxDelay(),
	}
}

func newPayCommand(configPath *string) *cobra.Command {
	var recipient string
	var amount string
	var currency string
	var note string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Submit a simulated payment",
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

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			if currency == "" {
				currency = cfg.Seed.Currency
			}

			sim := simulator.New(simulatorOptions(cfg), log)
			before := sim.Balance()

			conf, err := sim.ProcessPayment(cmd.Context(), model.PaymentRequest{
				Recipient:     recipient,
				Amount:        amt,
				Currency:      currency,
				Description:   note,
				PaymentMethod: "balance",
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status:      %s\n", conf.Status)
			fmt.Fprintf(out, "Transaction: %s\n", conf.TransactionID)
			fmt.Fprintf(out, "Amount:      %s %s to %s\n", conf.Amount.StringFixed(2), conf.Currency, conf.Recipient)
			fmt.Fprintf(out, "Message:     %s\n", conf.Message)
			fmt.Fprintf(out, "Balance:     %s -> %s\n", before.StringFixed(2), sim.Balance().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&recipient, "to", "", "recipient (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, e.g. 50.00 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&currency, "currency", "", "currency (default: seed currency)")
	cmd.Flags().StringVar(&note, "note", "", "payment description")

	return cmd
}
