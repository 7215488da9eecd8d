package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/example/wam/internal/tui"
	"github.com/example/wam/internal/wire"
)

func tuiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive roster and allocation board",
		Long: `Open the interactive terminal client.

The Users tab lists staff; expand a user to see their doables and allocate
more. The Board tab shows every allocation with search, single/case view,
complete and unallocate. Press n anywhere to create a doable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("wam tui needs an interactive terminal (use 'wam board' or 'wam users' instead)")
			}

			level := slog.LevelInfo
			if e.verbose {
				level = slog.LevelDebug
			}
			handler := tui.NewLogHandler(level)

			a, err := wire.New(e.cfg, slog.New(handler))
			if err != nil {
				return err
			}

			model := tui.New(cmd.Context(), a.Board, a.Roster, a.Doables)
			return tui.Run(cmd.Context(), model, handler)
		},
	}
}
