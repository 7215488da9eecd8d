// Package cli contains the cobra command tree for wam.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/wam/internal/config"
	"github.com/example/wam/internal/ctxutil"
	"github.com/example/wam/internal/version"
	"github.com/example/wam/internal/wire"
)

// env carries the resolved configuration from the root command's
// PersistentPreRunE to its subcommands.
type env struct {
	cfg     *config.Config
	verbose bool
	getwd   func() (string, error)
}

// App builds the services on top of a logger writing to w.
func (e *env) App(w io.Writer) (*wire.App, error) {
	return wire.New(e.cfg, e.logger(w))
}

func (e *env) logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: e.level()}))
}

func (e *env) level() slog.Level {
	if e.verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewRootCmd builds the wam command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&env{getwd: os.Getwd})
}

func newRootCmd(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wam",
		Short:   "wam - work allocation manager",
		Version: version.String(),
		Long: `wam is a client for the work allocation backend.
It lists staff, allocates doables and cases to them, and manages the
allocation board from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().String("backend-url", "", "Backend base URL (default from config, then "+config.DefaultBackendURL+")")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout (0 = none)")
	rootCmd.PersistentFlags().BoolVar(&e.verbose, "verbose", false, "Log debug output to stderr")

	rootCmd.AddCommand(usersCmd(e))
	rootCmd.AddCommand(boardCmd(e))
	rootCmd.AddCommand(doableCmd(e))
	rootCmd.AddCommand(allocationCmd(e))
	rootCmd.AddCommand(tuiCmd(e))
	rootCmd.AddCommand(configCmd(e))

	return rootCmd
}

// resolve applies flags on top of the file and environment configuration.
func (e *env) resolve(cmd *cobra.Command) error {
	cwd, err := e.getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Resolve(cwd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend-url") {
		cfg.BackendURL, _ = flags.GetString("backend-url")
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		cfg.Timeout = config.Duration(timeout)
	}

	e.cfg = cfg

	// Every request made by one invocation shares a correlation ID.
	cmd.SetContext(ctxutil.WithRequestID(cmd.Context(), uuid.NewString()))
	return nil
}

func formatTimeout(d config.Duration) string {
	if d <= 0 {
		return "none"
	}
	return time.Duration(d).String()
}
