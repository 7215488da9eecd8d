// Package user contains the pure roster logic.
package user

import (
	"strings"

	"github.com/example/wam/internal/models"
)

// Filter keeps users whose first name, last name or user name contains
// query, case-insensitively. Users without a last name match on the other
// two fields only. An empty query keeps everyone.
func Filter(users []models.User, query string) []models.User {
	q := strings.ToLower(query)
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		if q == "" || matches(u, q) {
			result = append(result, u)
		}
	}
	return result
}

func matches(u models.User, q string) bool {
	if strings.Contains(strings.ToLower(u.FirstName), q) {
		return true
	}
	if u.LastName != nil && strings.Contains(strings.ToLower(*u.LastName), q) {
		return true
	}
	return strings.Contains(strings.ToLower(u.UserName), q)
}
