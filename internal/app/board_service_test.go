package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/wam/internal/core/allocation"
	"github.com/example/wam/internal/models"
)

func newLoadedBoard(t *testing.T, backend *mockBackend) *BoardServiceImpl {
	t.Helper()
	if backend.listAllocationsFn == nil {
		backend.listAllocationsFn = func(ctx context.Context) ([]models.Allocation, error) {
			return fixtureAllocations(), nil
		}
	}
	service := NewBoardService(backend, discardLogger())
	if err := service.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return service
}

func TestBoardLoad(t *testing.T) {
	service := newLoadedBoard(t, &mockBackend{})

	if got, want := allocationIDs(service.Allocations()), []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Allocations() = %v, want %v", got, want)
	}
	state := service.State()
	if state.ViewMode != allocation.ViewSingle || state.Query != "" || state.SortOrder != allocation.SortNone {
		t.Errorf("initial state = %+v", state)
	}
}

func TestBoardLoadError(t *testing.T) {
	backend := &mockBackend{
		listAllocationsFn: func(ctx context.Context) ([]models.Allocation, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := NewBoardService(backend, discardLogger())

	if err := service.Load(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(service.Allocations()) != 0 {
		t.Error("failed load populated the board")
	}
}

func TestBoardProjectionFollowsState(t *testing.T) {
	service := newLoadedBoard(t, &mockBackend{})

	service.SetViewMode(allocation.ViewCase)
	p := service.Projection()
	if len(p.ActiveGroups) != 2 || p.ActiveGroups[0].Key != "C1" || p.ActiveGroups[1].Key != models.UncategorizedCase {
		t.Errorf("active groups = %+v", p.ActiveGroups)
	}
	if len(p.CompletedGroups) != 1 {
		t.Errorf("completed groups = %+v", p.CompletedGroups)
	}

	service.SetQuery("BAZ")
	service.SetViewMode(allocation.ViewSingle)
	p = service.Projection()
	if got := allocationIDs(p.Active); !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("active = %v, want [3]", got)
	}
	if p.HasCompleted() {
		t.Error("completed section shown with no completed matches")
	}
}

func TestBoardMarkComplete(t *testing.T) {
	backend := &mockBackend{}
	service := newLoadedBoard(t, backend)

	if err := service.MarkComplete(context.Background(), "1"); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}
	if backend.lastStatus != models.StatusCompleted {
		t.Errorf("sent status %q, want completed", backend.lastStatus)
	}

	list := service.Allocations()
	if list[0].Status != models.StatusCompleted || list[0].DoableTitle != "Foo" || list[0].Case() != "C1" {
		t.Errorf("patched record = %+v", list[0])
	}
	p := service.Projection()
	if got := allocationIDs(p.Completed); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("completed = %v, want [1 2]", got)
	}
}

func TestBoardMarkCompleteGuards(t *testing.T) {
	tests := []struct {
		name     string
		doableID string
	}{
		{name: "already completed", doableID: "2"},
		{name: "not on board", doableID: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mockBackend{}
			service := newLoadedBoard(t, backend)
			if err := service.MarkComplete(context.Background(), tt.doableID); err == nil {
				t.Fatal("expected error, got nil")
			}
			for _, c := range backend.calls {
				if c != "ListAllocations" {
					t.Errorf("unexpected backend call %s", c)
				}
			}
		})
	}
}

func TestBoardMarkCompleteBackendErrorLeavesList(t *testing.T) {
	backend := &mockBackend{
		updateDoableStatusFn: func(ctx context.Context, doableID string, status models.Status) error {
			return errors.New("HTTP 500")
		},
	}
	service := newLoadedBoard(t, backend)
	before := service.Allocations()

	if err := service.MarkComplete(context.Background(), "1"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if !reflect.DeepEqual(service.Allocations(), before) {
		t.Error("list changed after failed call")
	}
}

func TestBoardUnallocate(t *testing.T) {
	backend := &mockBackend{}
	service := newLoadedBoard(t, backend)

	if err := service.Unallocate(context.Background(), "1"); err != nil {
		t.Fatalf("Unallocate failed: %v", err)
	}
	if got := allocationIDs(service.Allocations()); !reflect.DeepEqual(got, []string{"2", "3"}) {
		t.Errorf("Allocations() = %v, want [2 3]", got)
	}
	p := service.Projection()
	for _, a := range append(p.Active, p.Completed...) {
		if a.DoableID == "1" {
			t.Error("unallocated doable still rendered")
		}
	}
}

func TestBoardUnallocateCompletedRejected(t *testing.T) {
	backend := &mockBackend{}
	service := newLoadedBoard(t, backend)

	if err := service.Unallocate(context.Background(), "2"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(service.Allocations()) != 3 {
		t.Error("completed doable removed")
	}
}

func TestBoardUnallocateBackendError(t *testing.T) {
	backend := &mockBackend{
		deleteAllocationFn: func(ctx context.Context, doableID string) error {
			return errors.New("No allocation found")
		},
	}
	service := newLoadedBoard(t, backend)

	if err := service.Unallocate(context.Background(), "3"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(service.Allocations()) != 3 {
		t.Error("list changed after failed call")
	}
}

func TestBoardUnallocateCase(t *testing.T) {
	backend := &mockBackend{}
	service := newLoadedBoard(t, backend)

	if err := service.UnallocateCase(context.Background(), "C1"); err != nil {
		t.Fatalf("UnallocateCase failed: %v", err)
	}
	if got := allocationIDs(service.Allocations()); !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("Allocations() = %v, want [3]", got)
	}
	if backend.calls[len(backend.calls)-1] != "DeleteCaseAllocations:C1" {
		t.Errorf("last call = %s", backend.calls[len(backend.calls)-1])
	}
}

func TestBoardUnallocateCaseRequiresID(t *testing.T) {
	service := newLoadedBoard(t, &mockBackend{})
	if err := service.UnallocateCase(context.Background(), ""); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestBoardNoRefetchAfterMutation(t *testing.T) {
	backend := &mockBackend{}
	service := newLoadedBoard(t, backend)

	_ = service.MarkComplete(context.Background(), "1")
	_ = service.Unallocate(context.Background(), "3")
	_ = service.UnallocateCase(context.Background(), "C1")

	loads := 0
	for _, c := range backend.calls {
		if c == "ListAllocations" {
			loads++
		}
	}
	if loads != 1 {
		t.Errorf("ListAllocations called %d times, want 1", loads)
	}
}

func TestBoardSortOrder(t *testing.T) {
	backend := &mockBackend{
		listAllocationsFn: func(ctx context.Context) ([]models.Allocation, error) {
			return []models.Allocation{
				{DoableID: "low", Priority: models.PriorityLow, Status: models.StatusAllocated},
				{DoableID: "high", Priority: models.PriorityHigh, Status: models.StatusAllocated},
			}, nil
		},
	}
	service := newLoadedBoard(t, backend)

	if got := allocationIDs(service.Projection().Active); !reflect.DeepEqual(got, []string{"low", "high"}) {
		t.Errorf("unsorted = %v", got)
	}
	service.SetSortOrder(allocation.SortPriority)
	if got := allocationIDs(service.Projection().Active); !reflect.DeepEqual(got, []string{"high", "low"}) {
		t.Errorf("sorted = %v", got)
	}
	if got := allocationIDs(service.Allocations()); !reflect.DeepEqual(got, []string{"low", "high"}) {
		t.Errorf("sorting reordered the held list: %v", got)
	}
}
