package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/wam/internal/core/doable"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/secondary"
)

// DoableServiceImpl implements the DoableService interface.
type DoableServiceImpl struct {
	backend secondary.Backend
	logger  *slog.Logger
}

// NewDoableService creates a new DoableService with injected dependencies.
func NewDoableService(backend secondary.Backend, logger *slog.Logger) *DoableServiceImpl {
	return &DoableServiceImpl{
		backend: backend,
		logger:  logger,
	}
}

// CreateDoable validates the draft and submits it. Invalid drafts never
// reach the backend.
func (s *DoableServiceImpl) CreateDoable(ctx context.Context, draft doable.Draft) (*models.Doable, error) {
	if err := draft.Validate().Error(); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateDoable(ctx, draft.Payload())
	if err != nil {
		s.logger.Error("failed to create doable", "title", draft.Title, "err", err)
		return nil, fmt.Errorf("failed to create doable: %w", err)
	}

	s.logger.Info("doable created", "doable", created.ID, "type", created.Type)
	return created, nil
}
