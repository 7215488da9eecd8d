package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/example/wam/internal/core/allocation"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// mockBoardService implements primary.BoardService for testing
type mockBoardService struct {
	loadFn           func(ctx context.Context) error
	markCompleteFn   func(ctx context.Context, doableID string) error
	unallocateFn     func(ctx context.Context, doableID string) error
	unallocateCaseFn func(ctx context.Context, caseID string) error

	allocations []models.Allocation
	state       primary.BoardState

	// Track calls for verification
	loads          int
	lastCompleted  string
	lastUnallocate string
	lastCase       string
}

func (m *mockBoardService) Load(ctx context.Context) error {
	m.loads++
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return nil
}

func (m *mockBoardService) Allocations() []models.Allocation { return m.allocations }

func (m *mockBoardService) SetQuery(query string)                   { m.state.Query = query }
func (m *mockBoardService) SetViewMode(mode allocation.ViewMode)    { m.state.ViewMode = mode }
func (m *mockBoardService) SetSortOrder(order allocation.SortOrder) { m.state.SortOrder = order }
func (m *mockBoardService) State() primary.BoardState               { return m.state }

func (m *mockBoardService) Projection() allocation.Projection {
	return allocation.Project(m.state.SortOrder.Apply(m.allocations), m.state.Query, m.state.ViewMode)
}

func (m *mockBoardService) MarkComplete(ctx context.Context, doableID string) error {
	m.lastCompleted = doableID
	if m.markCompleteFn != nil {
		return m.markCompleteFn(ctx, doableID)
	}
	return nil
}

func (m *mockBoardService) Unallocate(ctx context.Context, doableID string) error {
	m.lastUnallocate = doableID
	if m.unallocateFn != nil {
		return m.unallocateFn(ctx, doableID)
	}
	return nil
}

func (m *mockBoardService) UnallocateCase(ctx context.Context, caseID string) error {
	m.lastCase = caseID
	if m.unallocateCaseFn != nil {
		return m.unallocateCaseFn(ctx, caseID)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func boardFixture() []models.Allocation {
	allocatedAt := models.NewTimestamp(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	return []models.Allocation{
		{DoableID: "1", CaseID: strPtr("C1"), DoableTitle: "Foo", DoableType: models.DoableTypeEmail, Priority: models.PriorityHigh,
			Status: models.StatusAllocated, AllocatedAt: &allocatedAt, UserFirstName: "Jane", UserLastName: strPtr("Doe"), IsCaseAllocation: true},
		{DoableID: "2", CaseID: strPtr("C1"), DoableTitle: "Bar", DoableType: models.DoableTypeTask, Priority: models.PriorityLow,
			Status: models.StatusCompleted, IsCaseAllocation: true},
		{DoableID: "3", DoableTitle: "Baz", DoableType: models.DoableTypeEmail, Priority: models.PriorityMedium,
			Status: models.StatusAllocated, UserFirstName: "Raj"},
	}
}

func newTestBoardAdapter(service primary.BoardService, out *bytes.Buffer) *BoardAdapter {
	adapter := NewBoardAdapter(service, out)
	adapter.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return adapter
}

func TestBoardAdapter_ShowSingle(t *testing.T) {
	service := &mockBoardService{allocations: boardFixture()}
	var out bytes.Buffer
	adapter := newTestBoardAdapter(service, &out)

	err := adapter.Show(context.Background(), BoardOptions{ViewMode: allocation.ViewSingle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{"ACTIVE (2)", "COMPLETED (1)", "Jane Doe", "3 hours ago", "Foo [case]", "Baz"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Index(output, "ACTIVE") > strings.Index(output, "COMPLETED") {
		t.Error("completed section rendered before active")
	}
	if strings.Contains(output, "COMPLETED CASES") {
		t.Errorf("single view used the case heading:\n%s", output)
	}
}

func TestBoardAdapter_ShowCaseView(t *testing.T) {
	service := &mockBoardService{allocations: boardFixture()}
	var out bytes.Buffer
	adapter := newTestBoardAdapter(service, &out)

	if err := adapter.Show(context.Background(), BoardOptions{ViewMode: allocation.ViewCase}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	c1 := strings.Index(output, "Case C1")
	uncategorized := strings.Index(output, "Case "+models.UncategorizedCase)
	if c1 < 0 || uncategorized < 0 || c1 > uncategorized {
		t.Errorf("case groups out of order:\n%s", output)
	}
	if !strings.Contains(output, "COMPLETED CASES (1)") {
		t.Errorf("output missing completed cases heading:\n%s", output)
	}
}

func TestBoardAdapter_ShowSearchHidesCompleted(t *testing.T) {
	service := &mockBoardService{allocations: boardFixture()}
	var out bytes.Buffer
	adapter := newTestBoardAdapter(service, &out)

	if err := adapter.Show(context.Background(), BoardOptions{Query: "baz"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if strings.Contains(output, "COMPLETED") {
		t.Errorf("completed section shown with no completed matches:\n%s", output)
	}
	if strings.Contains(output, "Foo") {
		t.Errorf("filtered allocation rendered:\n%s", output)
	}
}

func TestBoardAdapter_ShowEmpty(t *testing.T) {
	var out bytes.Buffer
	adapter := newTestBoardAdapter(&mockBoardService{}, &out)

	if err := adapter.Show(context.Background(), BoardOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No allocations found") {
		t.Errorf("expected empty message, got %q", out.String())
	}
}

func TestBoardAdapter_ShowLoadError(t *testing.T) {
	service := &mockBoardService{
		loadFn: func(ctx context.Context) error { return errors.New("connection refused") },
	}
	var out bytes.Buffer
	adapter := newTestBoardAdapter(service, &out)

	if err := adapter.Show(context.Background(), BoardOptions{}); err == nil {
		t.Fatal("expected error, got nil")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestBoardAdapter_Mutations(t *testing.T) {
	tests := []struct {
		name    string
		run     func(a *BoardAdapter) error
		check   func(t *testing.T, m *mockBoardService)
		wantOut string
	}{
		{
			name: "complete",
			run:  func(a *BoardAdapter) error { return a.Complete(context.Background(), "1") },
			check: func(t *testing.T, m *mockBoardService) {
				if m.lastCompleted != "1" {
					t.Errorf("completed %q, want 1", m.lastCompleted)
				}
			},
			wantOut: "✓ Doable 1 marked as complete",
		},
		{
			name: "unallocate",
			run:  func(a *BoardAdapter) error { return a.Unallocate(context.Background(), "3") },
			check: func(t *testing.T, m *mockBoardService) {
				if m.lastUnallocate != "3" {
					t.Errorf("unallocated %q, want 3", m.lastUnallocate)
				}
			},
			wantOut: "✓ Doable 3 unallocated",
		},
		{
			name: "unallocate case",
			run:  func(a *BoardAdapter) error { return a.UnallocateCase(context.Background(), "C1") },
			check: func(t *testing.T, m *mockBoardService) {
				if m.lastCase != "C1" {
					t.Errorf("case %q, want C1", m.lastCase)
				}
			},
			wantOut: "✓ Case C1 unallocated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockBoardService{allocations: boardFixture()}
			var out bytes.Buffer
			adapter := newTestBoardAdapter(service, &out)

			if err := tt.run(adapter); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if service.loads != 1 {
				t.Errorf("Load called %d times, want 1", service.loads)
			}
			tt.check(t, service)
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("expected %q in output, got %q", tt.wantOut, out.String())
			}
		})
	}
}

func TestBoardAdapter_CompleteError(t *testing.T) {
	service := &mockBoardService{
		markCompleteFn: func(ctx context.Context, doableID string) error {
			return errors.New("can only complete allocated doables")
		},
	}
	var out bytes.Buffer
	adapter := newTestBoardAdapter(service, &out)

	if err := adapter.Complete(context.Background(), "2"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if strings.Contains(out.String(), "✓") {
		t.Errorf("success printed on failure: %q", out.String())
	}
}
