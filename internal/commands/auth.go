package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/model"
	"github.com/payflow-dev/payflow/internal/session"
	"github.com/payflow-dev/payflow/internal/simulator"
)

func newLoginCommand(configPath *string) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the demo session",
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
			creds := model.Credentials{Username: username, Password: password}
			if !sim.ValidateCredentials(creds) {
				return errors.New("invalid credentials: username and password are required")
			}

			store, err := session.Open(sessionPath(*configPath))
			if err != nil {
				return err
			}
			if err := store.Login(username); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "username (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the demo session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.Open(sessionPath(*configPath))
			if err != nil {
				return err
			}
			if err := store.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
