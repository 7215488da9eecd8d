package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/wam/internal/core/doable"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/primary"
)

// RosterAdapter is a thin adapter that translates CLI operations to RosterService calls.
type RosterAdapter struct {
	service primary.RosterService
	out     io.Writer
}

// NewRosterAdapter creates a new RosterAdapter with the given service.
func NewRosterAdapter(service primary.RosterService, out io.Writer) *RosterAdapter {
	return &RosterAdapter{
		service: service,
		out:     out,
	}
}

// List prints the users matching query.
func (a *RosterAdapter) List(ctx context.Context, query string) error {
	if err := a.service.Load(ctx); err != nil {
		return err
	}
	a.service.SetQuery(query)

	users := a.service.Users()
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-25s %-16s %s\n", "ID", "NAME", "USERNAME", "PREFERS")
	fmt.Fprintln(a.out, rule)
	for _, u := range users {
		fmt.Fprintf(a.out, "%-12s %-25s %-16s %s\n", u.ID, u.DisplayName(), u.UserName, orDash(string(u.PreferredDoableType)))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Doables expands a user and prints the doables allocated to them.
func (a *RosterAdapter) Doables(ctx context.Context, userID string) error {
	if _, err := a.service.Toggle(ctx, userID); err != nil {
		return err
	}
	a.printDoables(a.service.Doables(userID))
	return nil
}

// Allocate allocates the next available doable to a user.
func (a *RosterAdapter) Allocate(ctx context.Context, userID string) error {
	d, err := a.service.AllocateDoable(ctx, userID)
	if err != nil {
		return err
	}
	if d == nil {
		fmt.Fprintf(a.out, "No doable available for user %s\n", userID)
		return nil
	}

	fmt.Fprintf(a.out, ok("Allocated doable %s to user %s: %s\n"), d.ID, userID, d.Title)
	return nil
}

// AllocateCase allocates a whole case to a user.
func (a *RosterAdapter) AllocateCase(ctx context.Context, userID string) error {
	doables, err := a.service.AllocateCase(ctx, userID)
	if err != nil {
		return err
	}
	if len(doables) == 0 {
		fmt.Fprintf(a.out, "No case available for user %s\n", userID)
		return nil
	}

	fmt.Fprintf(a.out, ok("Allocated %d doable(s) to user %s\n"), len(doables), userID)
	a.printDoables(doables)
	return nil
}

// AllocateRelated allocates the remaining doables of a case to a user.
func (a *RosterAdapter) AllocateRelated(ctx context.Context, userID, caseID string) error {
	doables, err := a.service.AllocateRelated(ctx, userID, caseID)
	if err != nil {
		return err
	}
	if len(doables) == 0 {
		fmt.Fprintf(a.out, "No related doables left in case %s\n", caseID)
		return nil
	}

	fmt.Fprintf(a.out, ok("Allocated %d related doable(s) of case %s to user %s\n"), len(doables), caseID, userID)
	a.printDoables(doables)
	return nil
}

func (a *RosterAdapter) printDoables(doables []models.Doable) {
	if len(doables) == 0 {
		fmt.Fprintln(a.out, "No doables allocated")
		return
	}

	fmt.Fprintf(a.out, "\n%-15s %-6s %-8s %-12s %-15s %-18s %s\n",
		"ID", "TYPE", "PRIORITY", "STATUS", "CASE", "CREATED", "TITLE")
	fmt.Fprintln(a.out, rule)
	for _, d := range doables {
		fmt.Fprintf(a.out, "%-15s %-6s %s %s %-15s %-18s %s\n",
			d.ID,
			d.Type,
			colorPriority(d.Priority, 8),
			colorStatus(d.Status, 12),
			orDash(d.Case()),
			d.CreatedAt.Display(),
			d.Title,
		)
	}
	fmt.Fprintln(a.out)
}

// DoableAdapter is a thin adapter that translates CLI operations to DoableService calls.
type DoableAdapter struct {
	service primary.DoableService
	out     io.Writer
}

// NewDoableAdapter creates a new DoableAdapter with the given service.
func NewDoableAdapter(service primary.DoableService, out io.Writer) *DoableAdapter {
	return &DoableAdapter{
		service: service,
		out:     out,
	}
}

// Create submits a new doable.
func (a *DoableAdapter) Create(ctx context.Context, draft doable.Draft) error {
	created, err := a.service.CreateDoable(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, ok("Created doable %s: %s\n"), created.ID, created.Title)
	if created.Case() != "" {
		fmt.Fprintf(a.out, "  Case: %s\n", created.Case())
	}
	return nil
}
