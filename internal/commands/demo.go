package commands

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/payflow-dev/payflow/internal/navgate"
	"github.com/payflow-dev/payflow/internal/routes"
	"github.com/payflow-dev/payflow/internal/session"
)

// printNavigator is a terminal-backed Navigator: it owns a current path and
// prints every transition. It has no native back stack.
type printNavigator struct {
	mu   sync.Mutex
	out  io.Writer
	path string
}

func (n *printNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

func (n *printNavigator) Navigate(path string, replace bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
	verb := "->"
	if replace {
		verb = "=>"
	}
	fmt.Fprintf(n.out, "  %s %s\n", verb, path)
	return nil
}

func (n *printNavigator) Back() error {
	return errors.New("no native history")
}

func (n *printNavigator) Reload(path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
	fmt.Fprintf(n.out, "  !! reload %s\n", path)
	return nil
}

// waitForGate blocks until the gate's pending transition settles.
func waitForGate(g *navgate.Gate) {
	for g.IsLoading() {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
}

func newDemoCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk the navigation gate through a typical screen flow",
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

			store, err := session.Open(sessionPath(*configPath))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := routes.Default()
			start := table.Fallback(store.IsAuthenticated())
			nav := &printNavigator{out: out, path: start}

			gate := navgate.New(nav, store, table, navgate.Options{
				TransitionDelay: cfg.Navigation.TransitionDelay(),
				ErrorExpiry:     cfg.Navigation.ErrorExpiry(),
				FallbackDelay:   cfg.Navigation.FallbackDelay(),
				MaxHistory:      cfg.Navigation.MaxHistory,
			}, log)
			defer gate.Close()

			fmt.Fprintf(out, "Starting at %s (each hop waits %s)\n", start, cfg.Navigation.TransitionDelay())

			flow := []struct {
				target  string
				message string
			}{
				{"/dashboard", "Loading your dashboard..."},
				{"/send", "Opening send money..."},
				{"/send/amount", ""},
				{"/send/confirm", "Reviewing payment..."},
				{"/transactions", "Fetching history..."},
			}
			for _, step := range flow {
				gate.NavigateWithLoading(step.target, step.message)
				waitForGate(gate)
			}

			gate.GoBack()
			waitForGate(gate)

			fmt.Fprintf(out, "Finished at %s, history: %v\n", nav.CurrentPath(), gate.History())
			return nil
		},
	}
}
