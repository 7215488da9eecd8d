// Package doable contains the pure business logic for creating doables.
// Guards are pure functions that evaluate preconditions without side effects.
package doable

import (
	"fmt"
	"strings"

	"github.com/example/wam/internal/models"
)

// Draft holds the creation form's state while it is open.
type Draft struct {
	Title    string
	Type     string
	Priority string
	CaseID   string
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanSubmit evaluates whether the submit control is enabled.
// Rules:
// - Title must be non-empty
// - Type must be non-empty
// - Tasks must belong to a case
func (d Draft) CanSubmit() GuardResult {
	if strings.TrimSpace(d.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}
	if strings.TrimSpace(d.Type) == "" {
		return GuardResult{Allowed: false, Reason: "type is required"}
	}
	if models.DoableType(d.normalizedType()) == models.DoableTypeTask && d.caseID() == "" {
		return GuardResult{Allowed: false, Reason: "case ID is required for task doables"}
	}
	return GuardResult{Allowed: true}
}

// Validate evaluates the full set of creation rules.
// Rules:
// - CanSubmit must allow the draft
// - Type must be email or task
// - Priority must be high, medium or low (required for every type)
func (d Draft) Validate() GuardResult {
	if r := d.CanSubmit(); !r.Allowed {
		return r
	}
	if !models.ValidDoableTypes[models.DoableType(d.normalizedType())] {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid type %q (must be email or task)", d.Type),
		}
	}
	if strings.TrimSpace(d.Priority) == "" {
		return GuardResult{Allowed: false, Reason: "priority is required"}
	}
	if !models.ValidPriorities[models.Priority(d.normalizedPriority())] {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid priority %q (must be high, medium or low)", d.Priority),
		}
	}
	return GuardResult{Allowed: true}
}

// Payload builds the creation request. The case ID is nil when the draft
// has none, so it is left out of the body rather than sent as "".
func (d Draft) Payload() models.CreateDoableRequest {
	req := models.CreateDoableRequest{
		DoableTitle:    strings.TrimSpace(d.Title),
		DoableType:     models.DoableType(d.normalizedType()),
		DoablePriority: models.Priority(d.normalizedPriority()),
	}
	if c := d.caseID(); c != "" {
		req.CaseID = &c
	}
	return req
}

// Reset discards the draft.
func (d *Draft) Reset() {
	*d = Draft{}
}

func (d Draft) normalizedType() string {
	return strings.ToLower(strings.TrimSpace(d.Type))
}

func (d Draft) normalizedPriority() string {
	return strings.ToLower(strings.TrimSpace(d.Priority))
}

func (d Draft) caseID() string {
	return strings.TrimSpace(d.CaseID)
}
