package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/example/wam/internal/models"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockBackend implements secondary.Backend for testing.
type mockBackend struct {
	listUsersFn             func(ctx context.Context) ([]models.User, error)
	listUserDoablesFn       func(ctx context.Context, userID string) ([]models.Doable, error)
	allocateDoableFn        func(ctx context.Context, userID string) (*models.Doable, error)
	allocateCaseFn          func(ctx context.Context, userID string) ([]models.Doable, error)
	allocateRelatedFn       func(ctx context.Context, userID, caseID string) ([]models.Doable, error)
	listAllocationsFn       func(ctx context.Context) ([]models.Allocation, error)
	updateDoableStatusFn    func(ctx context.Context, doableID string, status models.Status) error
	deleteAllocationFn      func(ctx context.Context, doableID string) error
	deleteCaseAllocationsFn func(ctx context.Context, caseID string) error
	createDoableFn          func(ctx context.Context, req models.CreateDoableRequest) (*models.Doable, error)

	// Track calls for verification
	calls         []string
	lastStatus    models.Status
	lastCreateReq models.CreateDoableRequest
}

func (m *mockBackend) ListUsers(ctx context.Context) ([]models.User, error) {
	m.calls = append(m.calls, "ListUsers")
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockBackend) ListUserDoables(ctx context.Context, userID string) ([]models.Doable, error) {
	m.calls = append(m.calls, "ListUserDoables:"+userID)
	if m.listUserDoablesFn != nil {
		return m.listUserDoablesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockBackend) AllocateDoable(ctx context.Context, userID string) (*models.Doable, error) {
	m.calls = append(m.calls, "AllocateDoable:"+userID)
	if m.allocateDoableFn != nil {
		return m.allocateDoableFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockBackend) AllocateCase(ctx context.Context, userID string) ([]models.Doable, error) {
	m.calls = append(m.calls, "AllocateCase:"+userID)
	if m.allocateCaseFn != nil {
		return m.allocateCaseFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockBackend) AllocateRelated(ctx context.Context, userID, caseID string) ([]models.Doable, error) {
	m.calls = append(m.calls, "AllocateRelated:"+userID+":"+caseID)
	if m.allocateRelatedFn != nil {
		return m.allocateRelatedFn(ctx, userID, caseID)
	}
	return nil, nil
}

func (m *mockBackend) ListAllocations(ctx context.Context) ([]models.Allocation, error) {
	m.calls = append(m.calls, "ListAllocations")
	if m.listAllocationsFn != nil {
		return m.listAllocationsFn(ctx)
	}
	return nil, nil
}

func (m *mockBackend) UpdateDoableStatus(ctx context.Context, doableID string, status models.Status) error {
	m.calls = append(m.calls, "UpdateDoableStatus:"+doableID)
	m.lastStatus = status
	if m.updateDoableStatusFn != nil {
		return m.updateDoableStatusFn(ctx, doableID, status)
	}
	return nil
}

func (m *mockBackend) DeleteAllocation(ctx context.Context, doableID string) error {
	m.calls = append(m.calls, "DeleteAllocation:"+doableID)
	if m.deleteAllocationFn != nil {
		return m.deleteAllocationFn(ctx, doableID)
	}
	return nil
}

func (m *mockBackend) DeleteCaseAllocations(ctx context.Context, caseID string) error {
	m.calls = append(m.calls, "DeleteCaseAllocations:"+caseID)
	if m.deleteCaseAllocationsFn != nil {
		return m.deleteCaseAllocationsFn(ctx, caseID)
	}
	return nil
}

func (m *mockBackend) CreateDoable(ctx context.Context, req models.CreateDoableRequest) (*models.Doable, error) {
	m.calls = append(m.calls, "CreateDoable")
	m.lastCreateReq = req
	if m.createDoableFn != nil {
		return m.createDoableFn(ctx, req)
	}
	return &models.Doable{ID: "message_1", Title: req.DoableTitle, Type: req.DoableType}, nil
}

// ============================================================================
// Fixtures
// ============================================================================

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func fixtureAllocations() []models.Allocation {
	return []models.Allocation{
		{DoableID: "1", CaseID: strPtr("C1"), DoableTitle: "Foo", DoableType: models.DoableTypeEmail, Status: models.StatusAllocated, IsCaseAllocation: true},
		{DoableID: "2", CaseID: strPtr("C1"), DoableTitle: "Bar", DoableType: models.DoableTypeTask, Status: models.StatusCompleted, IsCaseAllocation: true},
		{DoableID: "3", DoableTitle: "Baz", DoableType: models.DoableTypeEmail, Status: models.StatusAllocated},
	}
}

func allocationIDs(allocations []models.Allocation) []string {
	out := make([]string, 0, len(allocations))
	for _, a := range allocations {
		out = append(out, a.DoableID)
	}
	return out
}

func doableIDs(doables []models.Doable) []string {
	out := make([]string, 0, len(doables))
	for _, d := range doables {
		out = append(out, d.ID)
	}
	return out
}
