// Package models contains domain types for work allocation entities.
// These mirror the JSON shapes exchanged with the allocation backend.
package models

import "strings"

// DoableType is the kind of work a doable represents.
type DoableType string

const (
	DoableTypeEmail DoableType = "email"
	DoableTypeTask  DoableType = "task"
)

// Priority is the urgency of a doable.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status is the allocation state of a doable.
type Status string

// Doable status constants
const (
	StatusUnallocated Status = "unallocated"
	StatusAllocated   Status = "allocated"
	StatusCompleted   Status = "completed"
)

// statusPending is the backend's name for StatusUnallocated.
const statusPending = "pending"

// ValidDoableTypes is the canonical set of accepted doable types.
var ValidDoableTypes = map[DoableType]bool{
	DoableTypeEmail: true,
	DoableTypeTask:  true,
}

// ValidPriorities is the canonical set of accepted priorities.
var ValidPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}

// UnmarshalText accepts the backend's "pending" as an alias for unallocated.
func (s *Status) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	if v == statusPending {
		v = string(StatusUnallocated)
	}
	*s = Status(v)
	return nil
}

// Doable is a unit of work as returned by the backend.
type Doable struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      DoableType `json:"type"`
	Priority  Priority   `json:"priority,omitempty"`
	CaseID    *string    `json:"caseId,omitempty"`
	Status    Status     `json:"status"`
	CreatedAt Timestamp  `json:"createdAt"`
}

// Case returns the doable's case ID, or "" when it is standalone.
func (d Doable) Case() string {
	if d.CaseID == nil {
		return ""
	}
	return *d.CaseID
}

// CreateDoableRequest is the body of POST /doables.
// CaseID is nil when no case was given so the key is left out entirely.
type CreateDoableRequest struct {
	DoableTitle    string     `json:"doableTitle"`
	DoableType     DoableType `json:"doableType"`
	DoablePriority Priority   `json:"doablePriority"`
	CaseID         *string    `json:"caseId,omitempty"`
}

// StatusUpdate is the body of PATCH /doables/{id}.
type StatusUpdate struct {
	Status Status `json:"status"`
}
