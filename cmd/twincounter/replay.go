package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/twincounter/internal/counter"
	"github.com/jask/twincounter/internal/tui"
)

var (
	replayScope  int
	replayStrict bool
)

const replayWidth = 32

var replayCmd = &cobra.Command{
	Use:   "replay [ACTION...]",
	Short: "Dispatch actions on one scope without a terminal and print every scope",
	Example: `  twincounter replay ADD
  twincounter replay --scope 1 ADD ADD`,
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	stores := mountScopes()
	defer unmount(stores)

	if replayScope < 0 || replayScope >= len(stores) {
		return fmt.Errorf("scope %d out of range: %d scopes mounted", replayScope, len(stores))
	}
	target := stores[replayScope].Handle()

	for _, tag := range args {
		action, err := counter.ParseAction(tag)
		if err != nil {
			var unknown *counter.UnknownActionError
			if replayStrict || !errors.As(err, &unknown) {
				return err
			}
			logger.Warn("passing through unknown action", zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		target.Dispatch(action)
	}

	views := make([]string, 0, len(stores))
	for i, s := range stores {
		v := tui.NewScopeView(fmt.Sprintf("Scope %d", i), s.Handle())
		views = append(views, ansi.Strip(v.Render(replayWidth, 0)))
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(views, "\n"))
	return nil
}
