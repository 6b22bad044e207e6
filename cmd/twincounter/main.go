package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/twincounter/internal/config"
	"github.com/jask/twincounter/internal/counter"
	"github.com/jask/twincounter/internal/logging"
	"github.com/jask/twincounter/internal/store"
	"github.com/jask/twincounter/internal/tui"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "twincounter",
	Short: "Two independent counters, each in its own store scope",
	Long: `twincounter mounts one store scope per configured initial count and
renders them side by side. Each scope owns its state and reducer; pressing
enter on a scope dispatches ADD to that scope only.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		// the interactive UI owns the terminal; headless commands may log to stderr
		var console io.Writer
		if cmd.HasParent() {
			console = cmd.ErrOrStderr()
		}
		logger, err = logging.New(cfg.Log, verbose, console)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/twincounter/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every store construction and dispatch (to stderr for headless commands without log.path)")

	replayCmd.Flags().IntVar(&replayScope, "scope", 0, "index of the scope receiving the actions")
	replayCmd.Flags().BoolVar(&replayStrict, "strict", false, "fail on unknown actions instead of passing them through")
	rootCmd.AddCommand(replayCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type counterStore = store.Store[counter.State, counter.Action]

// mountScopes creates one store per configured initial count.
func mountScopes() []*counterStore {
	stores := make([]*counterStore, 0, len(cfg.Scopes.Initial))
	for i, n := range cfg.Scopes.Initial {
		stores = append(stores, store.New(counter.State{Count: n}, counter.Reduce,
			store.WithLogger(logger),
			store.WithName(fmt.Sprintf("scope-%d", i)),
		))
	}
	return stores
}

func unmount(stores []*counterStore) {
	for _, s := range stores {
		s.Close()
	}
}

func handles(stores []*counterStore) []tui.CounterHandle {
	out := make([]tui.CounterHandle, 0, len(stores))
	for _, s := range stores {
		out = append(out, s.Handle())
	}
	return out
}

func runInteractive() error {
	stores := mountScopes()
	defer unmount(stores)

	m := tui.New(cfg.UI.Title, handles(stores), tui.DefaultKeyRegistry())
	defer m.Close()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
