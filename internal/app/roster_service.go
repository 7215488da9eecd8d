package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/example/wam/internal/core/user"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface.
// It owns the user list, the search text and, per user, the expansion flag
// and the doables fetched for that user.
type RosterServiceImpl struct {
	backend secondary.Backend
	logger  *slog.Logger

	mu       sync.Mutex
	users    []models.User
	query    string
	expanded map[string]bool
	doables  map[string][]models.Doable
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(backend secondary.Backend, logger *slog.Logger) *RosterServiceImpl {
	return &RosterServiceImpl{
		backend:  backend,
		logger:   logger,
		expanded: make(map[string]bool),
		doables:  make(map[string][]models.Doable),
	}
}

// Load replaces the user list with a fresh copy from the backend.
func (s *RosterServiceImpl) Load(ctx context.Context) error {
	users, err := s.backend.ListUsers(ctx)
	if err != nil {
		s.logger.Error("failed to load users", "err", err)
		return fmt.Errorf("failed to load users: %w", err)
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	s.logger.Debug("users loaded", "count", len(users))
	return nil
}

// SetQuery sets the search text.
func (s *RosterServiceImpl) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
}

// Query returns the search text.
func (s *RosterServiceImpl) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Users returns the users matching the search text.
func (s *RosterServiceImpl) Users() []models.User {
	s.mu.Lock()
	users, query := s.users, s.query
	s.mu.Unlock()
	return user.Filter(users, query)
}

// Toggle expands or collapses a user. Expanding fetches the user's doables
// and replaces what was held; if the fetch fails the user still expands
// with the previously held doables.
func (s *RosterServiceImpl) Toggle(ctx context.Context, userID string) (bool, error) {
	s.mu.Lock()
	wasExpanded := s.expanded[userID]
	s.mu.Unlock()

	if wasExpanded {
		s.mu.Lock()
		s.expanded[userID] = false
		s.mu.Unlock()
		return false, nil
	}

	doables, err := s.backend.ListUserDoables(ctx, userID)

	s.mu.Lock()
	s.expanded[userID] = true
	if err == nil {
		s.doables[userID] = doables
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("failed to load user doables", "user", userID, "err", err)
		return true, fmt.Errorf("failed to load doables for user %s: %w", userID, err)
	}
	return true, nil
}

// Expanded reports whether a user is expanded.
func (s *RosterServiceImpl) Expanded(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded[userID]
}

// Doables returns the doables held for a user.
func (s *RosterServiceImpl) Doables(userID string) []models.Doable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.doables[userID])
}

// AllocateDoable allocates the next doable to a user and appends it.
func (s *RosterServiceImpl) AllocateDoable(ctx context.Context, userID string) (*models.Doable, error) {
	d, err := s.backend.AllocateDoable(ctx, userID)
	if err != nil {
		s.logger.Error("failed to allocate doable", "user", userID, "err", err)
		return nil, fmt.Errorf("failed to allocate doable to user %s: %w", userID, err)
	}
	if d == nil {
		s.logger.Info("no doable available to allocate", "user", userID)
		return nil, nil
	}

	s.appendDoables(userID, *d)
	s.logger.Info("doable allocated", "user", userID, "doable", d.ID)
	return d, nil
}

// AllocateCase allocates a case to a user and appends its doables.
func (s *RosterServiceImpl) AllocateCase(ctx context.Context, userID string) ([]models.Doable, error) {
	doables, err := s.backend.AllocateCase(ctx, userID)
	if err != nil {
		s.logger.Error("failed to allocate case", "user", userID, "err", err)
		return nil, fmt.Errorf("failed to allocate case to user %s: %w", userID, err)
	}

	s.appendDoables(userID, doables...)
	s.logger.Info("case allocated", "user", userID, "count", len(doables))
	return doables, nil
}

// AllocateRelated allocates the rest of a case to a user and appends them.
func (s *RosterServiceImpl) AllocateRelated(ctx context.Context, userID, caseID string) ([]models.Doable, error) {
	if caseID == "" {
		return nil, fmt.Errorf("case ID is required")
	}

	doables, err := s.backend.AllocateRelated(ctx, userID, caseID)
	if err != nil {
		s.logger.Error("failed to allocate related doables", "user", userID, "case", caseID, "err", err)
		return nil, fmt.Errorf("failed to allocate related doables of case %s to user %s: %w", caseID, userID, err)
	}

	s.appendDoables(userID, doables...)
	s.logger.Info("related doables allocated", "user", userID, "case", caseID, "count", len(doables))
	return doables, nil
}

// appendDoables adds records to a user's list without re-fetching.
func (s *RosterServiceImpl) appendDoables(userID string, doables ...models.Doable) {
	if len(doables) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	held := slices.Clone(s.doables[userID])
	s.doables[userID] = append(held, doables...)
}
