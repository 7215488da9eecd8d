package allocation

import "github.com/example/wam/internal/models"

// Find returns the allocation for a doable ID.
func Find(allocations []models.Allocation, doableID string) (models.Allocation, bool) {
	for _, a := range allocations {
		if a.DoableID == doableID {
			return a, true
		}
	}
	return models.Allocation{}, false
}

// Merge appends records to the list. A record whose doable is already listed
// replaces the existing entry in place, keeping doable IDs unique.
func Merge(allocations []models.Allocation, records ...models.Allocation) []models.Allocation {
	result := make([]models.Allocation, len(allocations), len(allocations)+len(records))
	copy(result, allocations)
	for _, r := range records {
		replaced := false
		for i := range result {
			if result[i].DoableID == r.DoableID {
				result[i] = r
				replaced = true
				break
			}
		}
		if !replaced {
			result = append(result, r)
		}
	}
	return result
}

// PatchStatus returns a new list where the matching record carries status.
// Every other field of that record is preserved.
func PatchStatus(allocations []models.Allocation, doableID string, status models.Status) []models.Allocation {
	result := make([]models.Allocation, len(allocations))
	for i, a := range allocations {
		if a.DoableID == doableID {
			a = a.WithStatus(status)
		}
		result[i] = a
	}
	return result
}

// Remove returns a new list without the given doable.
func Remove(allocations []models.Allocation, doableID string) []models.Allocation {
	result := make([]models.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if a.DoableID != doableID {
			result = append(result, a)
		}
	}
	return result
}

// RemoveCase returns a new list without any allocation in the case.
func RemoveCase(allocations []models.Allocation, caseID string) []models.Allocation {
	result := make([]models.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if a.Case() != caseID {
			result = append(result, a)
		}
	}
	return result
}
