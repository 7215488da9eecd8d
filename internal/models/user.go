package models

// User is a member of staff work can be allocated to.
type User struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"firstName"`
	LastName            *string    `json:"lastName,omitempty"`
	UserName            string     `json:"userName"`
	PreferredDoableType DoableType `json:"preferredDoableType,omitempty"`
}

// DisplayName returns the user's first and last name.
func (u User) DisplayName() string {
	if u.LastName == nil || *u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + *u.LastName
}
