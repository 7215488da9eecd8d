package primary

import (
	"context"

	"github.com/example/wam/internal/core/doable"
	"github.com/example/wam/internal/models"
)

// DoableService defines the primary port for creating doables.
type DoableService interface {
	// CreateDoable validates the draft and submits it.
	CreateDoable(ctx context.Context, draft doable.Draft) (*models.Doable, error)
}
