// Package allocation contains the pure view-model for the allocation board.
// This is part of the Functional Core - no I/O, only pure functions.
//
// Every function here takes the allocation list as input and returns a new
// slice; inputs are never modified, so derivations are safe to recompute on
// every keystroke.
package allocation

import (
	"fmt"
	"strings"

	"github.com/example/wam/internal/models"
)

// ViewMode selects how the board lays out allocations.
type ViewMode string

const (
	ViewSingle ViewMode = "single"
	ViewCase   ViewMode = "case"
)

// ParseViewMode validates a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewSingle, "":
		return ViewSingle, nil
	case ViewCase:
		return ViewCase, nil
	}
	return "", fmt.Errorf("invalid view mode %q (must be single or case)", s)
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewCase {
		return ViewSingle
	}
	return ViewCase
}

// Group is one case section of the board.
type Group struct {
	Key         string
	Allocations []models.Allocation
}

// Filter keeps allocations whose title, type or status contains query,
// case-insensitively. An empty query keeps everything.
func Filter(allocations []models.Allocation, query string) []models.Allocation {
	q := strings.ToLower(query)
	result := make([]models.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if q == "" || matches(a, q) {
			result = append(result, a)
		}
	}
	return result
}

func matches(a models.Allocation, q string) bool {
	return strings.Contains(strings.ToLower(a.DoableTitle), q) ||
		strings.Contains(strings.ToLower(string(a.DoableType)), q) ||
		strings.Contains(strings.ToLower(string(a.Status)), q)
}

// Partition splits allocations into active and completed, keeping order.
func Partition(allocations []models.Allocation) (active, completed []models.Allocation) {
	active = make([]models.Allocation, 0, len(allocations))
	completed = make([]models.Allocation, 0)
	for _, a := range allocations {
		if a.Status == models.StatusCompleted {
			completed = append(completed, a)
		} else {
			active = append(active, a)
		}
	}
	return active, completed
}

// GroupByCase groups allocations by case ID. Standalone allocations go under
// models.UncategorizedCase. Groups appear in the order their key is first
// seen, so case sections never reorder between renders.
func GroupByCase(allocations []models.Allocation) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, a := range allocations {
		key := a.GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Allocations = append(groups[i].Allocations, a)
	}
	return groups
}

// Projection is what the board renders for a given list, query and mode.
// In single mode only Active and Completed are set; in case mode only the
// group fields are set.
type Projection struct {
	Mode            ViewMode
	Active          []models.Allocation
	Completed       []models.Allocation
	ActiveGroups    []Group
	CompletedGroups []Group
}

// HasCompleted reports whether the completed section should be rendered.
func (p Projection) HasCompleted() bool {
	return len(p.Completed) > 0 || len(p.CompletedGroups) > 0
}

// Len returns the number of allocations in the projection.
func (p Projection) Len() int {
	n := len(p.Active) + len(p.Completed)
	for _, g := range p.ActiveGroups {
		n += len(g.Allocations)
	}
	for _, g := range p.CompletedGroups {
		n += len(g.Allocations)
	}
	return n
}

// Project derives the board layout from the list, search query and view mode.
func Project(allocations []models.Allocation, query string, mode ViewMode) Projection {
	active, completed := Partition(Filter(allocations, query))
	if mode == ViewCase {
		return Projection{
			Mode:            ViewCase,
			ActiveGroups:    GroupByCase(active),
			CompletedGroups: GroupByCase(completed),
		}
	}
	return Projection{
		Mode:      ViewSingle,
		Active:    active,
		Completed: completed,
	}
}
