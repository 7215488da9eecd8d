package primary

import (
	"context"

	"github.com/example/wam/internal/models"
)

// RosterService defines the primary port for the user roster.
// Implementations own the user list, search text and per-user expansion state.
type RosterService interface {
	// Load replaces the user list with a fresh copy from the backend.
	Load(ctx context.Context) error

	// SetQuery sets the search text.
	SetQuery(query string)

	// Query returns the search text.
	Query() string

	// Users returns the users matching the search text.
	Users() []models.User

	// Toggle expands or collapses a user. Expanding fetches the user's
	// doables; collapsing keeps what was fetched.
	Toggle(ctx context.Context, userID string) (expanded bool, err error)

	// Expanded reports whether a user is expanded.
	Expanded(userID string) bool

	// Doables returns the doables held for a user.
	Doables(userID string) []models.Doable

	// AllocateDoable allocates the next doable to a user and appends it.
	AllocateDoable(ctx context.Context, userID string) (*models.Doable, error)

	// AllocateCase allocates a case to a user and appends its doables.
	AllocateCase(ctx context.Context, userID string) ([]models.Doable, error)

	// AllocateRelated allocates the rest of a case to a user and appends them.
	AllocateRelated(ctx context.Context, userID, caseID string) ([]models.Doable, error)
}
