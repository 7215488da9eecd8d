package allocation

import (
	"fmt"

	"github.com/example/wam/internal/models"
)

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

// transitions lists the allowed status changes. Completion is final.
var transitions = map[models.Status][]models.Status{
	models.StatusUnallocated: {models.StatusAllocated},
	models.StatusAllocated:   {models.StatusCompleted, models.StatusUnallocated},
}

// CanTransition evaluates whether a doable may move from one status to another.
func CanTransition(from, to models.Status) GuardResult {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return GuardResult{Allowed: true}
		}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("cannot move doable from %s to %s", from, to),
	}
}

// CanComplete evaluates whether an allocation can be marked complete.
// Rules:
// - Status must be "allocated"
func CanComplete(a models.Allocation) GuardResult {
	if !CanTransition(a.Status, models.StatusCompleted).Allowed {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only complete allocated doables (doable %s is %s)", a.DoableID, a.Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanUnallocate evaluates whether a single allocation can be released.
// Rules:
// - Completed doables stay where they are
func CanUnallocate(a models.Allocation) GuardResult {
	if a.Status == models.StatusCompleted {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("doable %s is completed and cannot be unallocated", a.DoableID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanUnallocateCase evaluates whether a case can be released in bulk.
// Rules:
// - Case ID must be given
// - At least one allocation in the list must belong to the case
func CanUnallocateCase(allocations []models.Allocation, caseID string) GuardResult {
	if caseID == "" {
		return GuardResult{Allowed: false, Reason: "case ID is required"}
	}
	for _, a := range allocations {
		if a.Case() == caseID {
			return GuardResult{Allowed: true}
		}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("no allocations found for case %s", caseID),
	}
}

// Actions describes which controls a card offers.
type Actions struct {
	Complete       bool
	Unallocate     bool
	UnallocateCase bool
}

// ActionsFor returns the controls shown for an allocation card.
func ActionsFor(a models.Allocation) Actions {
	return Actions{
		Complete:       CanComplete(a).Allowed,
		Unallocate:     CanUnallocate(a).Allowed,
		UnallocateCase: a.IsCaseAllocation && a.Case() != "",
	}
}
