package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/secondary"
)

var _ secondary.Backend = (*Client)(nil)

// ListUsers implements secondary.Backend.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListUserDoables implements secondary.Backend.
func (c *Client) ListUserDoables(ctx context.Context, userID string) ([]models.Doable, error) {
	var doables []models.Doable
	path := fmt.Sprintf("/users/%s/doables", segment(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &doables); err != nil {
		return nil, err
	}
	return doables, nil
}

// AllocateDoable implements secondary.Backend.
func (c *Client) AllocateDoable(ctx context.Context, userID string) (*models.Doable, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/users/%s/doables", segment(userID))
	if err := c.do(ctx, http.MethodPost, path, nil, &raw); err != nil {
		return nil, err
	}
	// The backend answers null when nothing is left to allocate.
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var d models.Doable
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing POST %s response: %w", path, err)
	}
	return &d, nil
}

// AllocateCase implements secondary.Backend.
func (c *Client) AllocateCase(ctx context.Context, userID string) ([]models.Doable, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/users/%s/doables/case", segment(userID))
	if err := c.do(ctx, http.MethodPost, path, nil, &raw); err != nil {
		return nil, err
	}
	doables, err := decodeOneOrMany(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing POST %s response: %w", path, err)
	}
	return doables, nil
}

// AllocateRelated implements secondary.Backend.
func (c *Client) AllocateRelated(ctx context.Context, userID, caseID string) ([]models.Doable, error) {
	var doables []models.Doable
	path := fmt.Sprintf("/users/%s/doables/case/%s", segment(userID), segment(caseID))
	if err := c.do(ctx, http.MethodPost, path, nil, &doables); err != nil {
		return nil, err
	}
	return doables, nil
}

// ListAllocations implements secondary.Backend.
func (c *Client) ListAllocations(ctx context.Context) ([]models.Allocation, error) {
	var allocations []models.Allocation
	if err := c.do(ctx, http.MethodGet, "/allocations", nil, &allocations); err != nil {
		return nil, err
	}
	return allocations, nil
}

// UpdateDoableStatus implements secondary.Backend.
func (c *Client) UpdateDoableStatus(ctx context.Context, doableID string, status models.Status) error {
	path := fmt.Sprintf("/doables/%s", segment(doableID))
	return c.do(ctx, http.MethodPatch, path, models.StatusUpdate{Status: status}, nil)
}

// DeleteAllocation implements secondary.Backend.
func (c *Client) DeleteAllocation(ctx context.Context, doableID string) error {
	path := fmt.Sprintf("/allocations/%s", segment(doableID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// DeleteCaseAllocations implements secondary.Backend.
func (c *Client) DeleteCaseAllocations(ctx context.Context, caseID string) error {
	path := fmt.Sprintf("/allocations/case/%s", segment(caseID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// CreateDoable implements secondary.Backend.
func (c *Client) CreateDoable(ctx context.Context, req models.CreateDoableRequest) (*models.Doable, error) {
	var d models.Doable
	if err := c.do(ctx, http.MethodPost, "/doables", req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// decodeOneOrMany accepts either a JSON array of doables or a single object.
func decodeOneOrMany(raw json.RawMessage) ([]models.Doable, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var many []models.Doable
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return nil, err
		}
		return many, nil
	}
	var one models.Doable
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, err
	}
	return []models.Doable{one}, nil
}
