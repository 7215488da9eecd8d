package cli

import (
	"fmt"
	"strings"
)

// validateID rejects blank IDs before any request is sent.
// Returns the trimmed ID.
func validateID(id, entityType string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", fmt.Errorf("%s ID is required", entityType)
	}
	if strings.ContainsAny(trimmed, " \t\n") {
		return "", fmt.Errorf("invalid %s ID %q: must not contain whitespace", entityType, id)
	}
	return trimmed, nil
}
