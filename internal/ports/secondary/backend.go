// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/wam/internal/models"
)

// Backend defines the secondary port for the work allocation REST backend.
// Every method issues exactly one request.
type Backend interface {
	// ListUsers retrieves every user.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListUserDoables retrieves the doables currently assigned to a user.
	ListUserDoables(ctx context.Context, userID string) ([]models.Doable, error)

	// AllocateDoable allocates the next suitable doable to a user.
	AllocateDoable(ctx context.Context, userID string) (*models.Doable, error)

	// AllocateCase allocates a whole unallocated case to a user.
	AllocateCase(ctx context.Context, userID string) ([]models.Doable, error)

	// AllocateRelated allocates the remaining doables of a case to a user.
	AllocateRelated(ctx context.Context, userID, caseID string) ([]models.Doable, error)

	// ListAllocations retrieves the allocation board.
	ListAllocations(ctx context.Context) ([]models.Allocation, error)

	// UpdateDoableStatus sets a doable's status.
	UpdateDoableStatus(ctx context.Context, doableID string, status models.Status) error

	// DeleteAllocation unallocates one doable.
	DeleteAllocation(ctx context.Context, doableID string) error

	// DeleteCaseAllocations unallocates every doable in a case.
	DeleteCaseAllocations(ctx context.Context, caseID string) error

	// CreateDoable creates a doable.
	CreateDoable(ctx context.Context, req models.CreateDoableRequest) (*models.Doable, error)
}
