package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/example/wam/internal/core/allocation"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/primary"
	"github.com/example/wam/internal/ports/secondary"
)

// BoardServiceImpl implements the BoardService interface.
// It owns the board's allocation list for its lifetime. The list changes
// only after a backend call succeeds; a failed call leaves it untouched.
type BoardServiceImpl struct {
	backend secondary.Backend
	logger  *slog.Logger

	mu          sync.Mutex
	allocations []models.Allocation
	state       primary.BoardState
}

// NewBoardService creates a new BoardService with injected dependencies.
func NewBoardService(backend secondary.Backend, logger *slog.Logger) *BoardServiceImpl {
	return &BoardServiceImpl{
		backend: backend,
		logger:  logger,
		state: primary.BoardState{
			ViewMode:  allocation.ViewSingle,
			SortOrder: allocation.SortNone,
		},
	}
}

// Load replaces the list with a fresh copy from the backend.
func (s *BoardServiceImpl) Load(ctx context.Context) error {
	allocations, err := s.backend.ListAllocations(ctx)
	if err != nil {
		s.logger.Error("failed to load allocations", "err", err)
		return fmt.Errorf("failed to load allocations: %w", err)
	}

	s.mu.Lock()
	s.allocations = allocations
	s.mu.Unlock()

	s.logger.Debug("allocations loaded", "count", len(allocations))
	return nil
}

// Allocations returns a copy of the current list.
func (s *BoardServiceImpl) Allocations() []models.Allocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.allocations)
}

// SetQuery sets the search text.
func (s *BoardServiceImpl) SetQuery(query string) {
	s.mu.Lock()
	s.state.Query = query
	s.mu.Unlock()
}

// SetViewMode sets single or case layout.
func (s *BoardServiceImpl) SetViewMode(mode allocation.ViewMode) {
	s.mu.Lock()
	s.state.ViewMode = mode
	s.mu.Unlock()
}

// SetSortOrder sets an optional ordering applied before projection.
func (s *BoardServiceImpl) SetSortOrder(order allocation.SortOrder) {
	s.mu.Lock()
	s.state.SortOrder = order
	s.mu.Unlock()
}

// State returns the current view state.
func (s *BoardServiceImpl) State() primary.BoardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Projection derives what the board renders from the current state.
func (s *BoardServiceImpl) Projection() allocation.Projection {
	s.mu.Lock()
	list, state := s.allocations, s.state
	s.mu.Unlock()

	return allocation.Project(state.SortOrder.Apply(list), state.Query, state.ViewMode)
}

// MarkComplete completes an allocated doable.
func (s *BoardServiceImpl) MarkComplete(ctx context.Context, doableID string) error {
	current, ok := s.find(doableID)
	if !ok {
		return fmt.Errorf("doable %s is not on the board", doableID)
	}
	if err := allocation.CanComplete(current).Error(); err != nil {
		return err
	}

	if err := s.backend.UpdateDoableStatus(ctx, doableID, models.StatusCompleted); err != nil {
		s.logger.Error("failed to mark doable complete", "doable", doableID, "err", err)
		return fmt.Errorf("failed to mark doable %s complete: %w", doableID, err)
	}

	s.mu.Lock()
	s.allocations = allocation.PatchStatus(s.allocations, doableID, models.StatusCompleted)
	s.mu.Unlock()

	s.logger.Info("doable completed", "doable", doableID)
	return nil
}

// Unallocate releases one doable and drops it from the board.
func (s *BoardServiceImpl) Unallocate(ctx context.Context, doableID string) error {
	if current, ok := s.find(doableID); ok {
		if err := allocation.CanUnallocate(current).Error(); err != nil {
			return err
		}
	}

	if err := s.backend.DeleteAllocation(ctx, doableID); err != nil {
		s.logger.Error("failed to unallocate doable", "doable", doableID, "err", err)
		return fmt.Errorf("failed to unallocate doable %s: %w", doableID, err)
	}

	s.mu.Lock()
	s.allocations = allocation.Remove(s.allocations, doableID)
	s.mu.Unlock()

	s.logger.Info("doable unallocated", "doable", doableID)
	return nil
}

// UnallocateCase releases a case and drops its doables from the board.
func (s *BoardServiceImpl) UnallocateCase(ctx context.Context, caseID string) error {
	if caseID == "" {
		return fmt.Errorf("case ID is required")
	}

	if err := s.backend.DeleteCaseAllocations(ctx, caseID); err != nil {
		s.logger.Error("failed to unallocate case", "case", caseID, "err", err)
		return fmt.Errorf("failed to unallocate case %s: %w", caseID, err)
	}

	s.mu.Lock()
	s.allocations = allocation.RemoveCase(s.allocations, caseID)
	s.mu.Unlock()

	s.logger.Info("case unallocated", "case", caseID)
	return nil
}

func (s *BoardServiceImpl) find(doableID string) (models.Allocation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return allocation.Find(s.allocations, doableID)
}
