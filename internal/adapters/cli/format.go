// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/example/wam/internal/models"
)

const rule = "────────────────────────────────────────────────────────────────────────────────"

var (
	statusColors = map[models.Status]*color.Color{
		models.StatusUnallocated: color.New(color.FgYellow),
		models.StatusAllocated:   color.New(color.FgCyan),
		models.StatusCompleted:   color.New(color.FgGreen),
	}
	priorityColors = map[models.Priority]*color.Color{
		models.PriorityHigh:   color.New(color.FgRed, color.Bold),
		models.PriorityMedium: color.New(color.FgYellow),
		models.PriorityLow:    color.New(color.FgWhite),
	}
	caseBadge   = color.New(color.FgHiMagenta)
	heading     = color.New(color.Bold)
	checkmark   = color.New(color.FgGreen)
	faintNotice = color.New(color.Faint)
)

// colorStatus pads before colouring so escape codes don't break alignment.
func colorStatus(s models.Status, width int) string {
	text := pad(string(s), width)
	if c, ok := statusColors[s]; ok {
		return c.Sprint(text)
	}
	return text
}

func colorPriority(p models.Priority, width int) string {
	text := pad(string(p), width)
	if c, ok := priorityColors[p]; ok {
		return c.Sprint(text)
	}
	return text
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

// orDash renders an absent value.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// allocatedAge renders when a doable was allocated relative to now,
// e.g. "3 hours ago".
func allocatedAge(ts *models.Timestamp, now time.Time) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return humanize.RelTime(ts.Time, now, "ago", "from now")
}

func ok(format string) string {
	return checkmark.Sprint("✓") + " " + format
}
