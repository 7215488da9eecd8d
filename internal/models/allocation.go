package models

// UncategorizedCase is the group key for allocations with no case.
const UncategorizedCase = "Uncategorized"

// Allocation is the denormalized join of a doable with its assignment,
// as listed by GET /allocations.
type Allocation struct {
	DoableID          string     `json:"doableId"`
	CaseID            *string    `json:"caseId,omitempty"`
	DoableTitle       string     `json:"doableTitle"`
	DoableType        DoableType `json:"doableType"`
	Status            Status     `json:"status"`
	Priority          Priority   `json:"priority,omitempty"`
	CreatedAt         Timestamp  `json:"createdAt"`
	AllocatedAt       *Timestamp `json:"allocatedAt,omitempty"`
	UserName          string     `json:"userName,omitempty"`
	UserFirstName     string     `json:"userFirstName,omitempty"`
	UserLastName      *string    `json:"userLastName,omitempty"`
	UserPreferredType DoableType `json:"userPreferredType,omitempty"`
	IsCaseAllocation  bool       `json:"isCaseAllocation"`
}

// Case returns the allocation's case ID, or "" when it is standalone.
func (a Allocation) Case() string {
	if a.CaseID == nil {
		return ""
	}
	return *a.CaseID
}

// GroupKey returns the case heading the allocation renders under.
func (a Allocation) GroupKey() string {
	if c := a.Case(); c != "" {
		return c
	}
	return UncategorizedCase
}

// Assignee returns "First Last" for allocated records and "" otherwise.
func (a Allocation) Assignee() string {
	if a.Status != StatusAllocated {
		return ""
	}
	if a.UserLastName == nil || *a.UserLastName == "" {
		return a.UserFirstName
	}
	return a.UserFirstName + " " + *a.UserLastName
}

// WithStatus returns a copy of the allocation with its status replaced.
func (a Allocation) WithStatus(status Status) Allocation {
	a.Status = status
	return a
}
