package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/heartclock/internal/counter"
	"github.com/iburimskiy/heartclock/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the counter in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			c := counter.New(cfg.Reference, nil)
			err = tui.Run(c,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			log.Info("terminal counter closed", "ticks", c.Ticks())
			return tuiExitErr(cmd.Context(), err)
		},
	}
}

// tuiExitErr treats a program killed by a cancelled context as a normal exit.
func tuiExitErr(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
