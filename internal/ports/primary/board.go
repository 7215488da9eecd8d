package primary

import (
	"context"

	"github.com/example/wam/internal/core/allocation"
	"github.com/example/wam/internal/models"
)

// BoardService defines the primary port for the allocation board.
// Implementations own the board's allocation list and view state.
type BoardService interface {
	// Load replaces the list with a fresh copy from the backend.
	Load(ctx context.Context) error

	// Allocations returns a copy of the current list.
	Allocations() []models.Allocation

	// SetQuery sets the search text.
	SetQuery(query string)

	// SetViewMode sets single or case layout.
	SetViewMode(mode allocation.ViewMode)

	// SetSortOrder sets an optional ordering applied before projection.
	SetSortOrder(order allocation.SortOrder)

	// State returns the current view state.
	State() BoardState

	// Projection derives what the board renders from the current state.
	Projection() allocation.Projection

	// MarkComplete completes an allocated doable.
	MarkComplete(ctx context.Context, doableID string) error

	// Unallocate releases one doable and drops it from the board.
	Unallocate(ctx context.Context, doableID string) error

	// UnallocateCase releases a case and drops its doables from the board.
	UnallocateCase(ctx context.Context, caseID string) error
}

// BoardState is the board's view state.
type BoardState struct {
	Query     string
	ViewMode  allocation.ViewMode
	SortOrder allocation.SortOrder
}
