// Package wire provides dependency injection for the wam application.
// It builds the REST client once from a resolved Config and hands the same
// client to every service; there is no package-level state.
package wire

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	cliadapter "github.com/example/wam/internal/adapters/cli"
	"github.com/example/wam/internal/adapters/rest"
	"github.com/example/wam/internal/app"
	"github.com/example/wam/internal/config"
	"github.com/example/wam/internal/ports/primary"
	"github.com/example/wam/internal/ports/secondary"
)

// App holds the services for one process.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Backend secondary.Backend

	Board   primary.BoardService
	Roster  primary.RosterService
	Doables primary.DoableService
}

// New creates the REST client described by cfg and the services on top of it.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	var opts []rest.Option
	if timeout := time.Duration(cfg.Timeout); timeout > 0 {
		opts = append(opts, rest.WithTimeout(timeout))
	}
	client, err := rest.NewClient(cfg.BackendURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	return NewWithBackend(cfg, logger, client), nil
}

// NewWithBackend creates the services on top of an existing backend.
// This variant allows testing against a fake backend.
func NewWithBackend(cfg *config.Config, logger *slog.Logger, backend secondary.Backend) *App {
	return &App{
		Config:  cfg,
		Logger:  logger,
		Backend: backend,
		Board:   app.NewBoardService(backend, logger.With("component", "board")),
		Roster:  app.NewRosterService(backend, logger.With("component", "roster")),
		Doables: app.NewDoableService(backend, logger.With("component", "doable")),
	}
}

// BoardAdapter returns a new BoardAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (a *App) BoardAdapter(out io.Writer) *cliadapter.BoardAdapter {
	return cliadapter.NewBoardAdapter(a.Board, out)
}

// RosterAdapter returns a new RosterAdapter writing to out.
func (a *App) RosterAdapter(out io.Writer) *cliadapter.RosterAdapter {
	return cliadapter.NewRosterAdapter(a.Roster, out)
}

// DoableAdapter returns a new DoableAdapter writing to out.
func (a *App) DoableAdapter(out io.Writer) *cliadapter.DoableAdapter {
	return cliadapter.NewDoableAdapter(a.Doables, out)
}
