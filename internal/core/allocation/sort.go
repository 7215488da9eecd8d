package allocation

import (
	"fmt"
	"slices"

	"github.com/example/wam/internal/models"
)

// SortOrder selects an optional ordering applied before projection.
type SortOrder string

const (
	SortNone     SortOrder = "none"
	SortPriority SortOrder = "priority"
)

// ParseSortOrder validates a sort order name.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortNone, "":
		return SortNone, nil
	case SortPriority:
		return SortPriority, nil
	}
	return "", fmt.Errorf("invalid sort order %q (must be none or priority)", s)
}

var priorityRank = map[models.Priority]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

func rank(p models.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// SortByPriorityAndAge orders allocations high to low priority, oldest first
// within a priority. Unknown priorities sort last. The sort is stable.
func SortByPriorityAndAge(allocations []models.Allocation) []models.Allocation {
	result := slices.Clone(allocations)
	slices.SortStableFunc(result, func(a, b models.Allocation) int {
		if ra, rb := rank(a.Priority), rank(b.Priority); ra != rb {
			return ra - rb
		}
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	})
	return result
}

// Apply orders allocations according to the sort order.
func (o SortOrder) Apply(allocations []models.Allocation) []models.Allocation {
	if o == SortPriority {
		return SortByPriorityAndAge(allocations)
	}
	return allocations
}
