package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/wam/internal/core/allocation"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/primary"
)

// BoardOptions selects how the board is rendered.
type BoardOptions struct {
	Query     string
	ViewMode  allocation.ViewMode
	SortOrder allocation.SortOrder
}

// BoardAdapter is a thin adapter that translates CLI operations to BoardService calls.
type BoardAdapter struct {
	service primary.BoardService
	out     io.Writer
	now     func() time.Time
}

// NewBoardAdapter creates a new BoardAdapter with the given service.
func NewBoardAdapter(service primary.BoardService, out io.Writer) *BoardAdapter {
	return &BoardAdapter{
		service: service,
		out:     out,
		now:     time.Now,
	}
}

// Show loads the board and prints it.
func (a *BoardAdapter) Show(ctx context.Context, opts BoardOptions) error {
	if err := a.service.Load(ctx); err != nil {
		return err
	}
	a.service.SetQuery(opts.Query)
	a.service.SetViewMode(opts.ViewMode)
	a.service.SetSortOrder(opts.SortOrder)

	a.Render(a.service.Projection())
	return nil
}

// Render prints a projection. The completed section is omitted when empty.
func (a *BoardAdapter) Render(p allocation.Projection) {
	if p.Len() == 0 {
		fmt.Fprintln(a.out, "No allocations found")
		return
	}

	if p.Mode == allocation.ViewCase {
		a.renderGroups("ACTIVE", p.ActiveGroups)
		if p.HasCompleted() {
			a.renderGroups("COMPLETED CASES", p.CompletedGroups)
		}
		return
	}

	a.renderSection("ACTIVE", p.Active)
	if p.HasCompleted() {
		a.renderSection("COMPLETED", p.Completed)
	}
}

func (a *BoardAdapter) renderSection(title string, allocations []models.Allocation) {
	fmt.Fprintf(a.out, "\n%s (%d)\n", heading.Sprint(title), len(allocations))
	a.renderTable(allocations)
}

func (a *BoardAdapter) renderGroups(title string, groups []allocation.Group) {
	n := 0
	for _, g := range groups {
		n += len(g.Allocations)
	}
	fmt.Fprintf(a.out, "\n%s (%d)\n", heading.Sprint(title), n)
	for _, g := range groups {
		fmt.Fprintf(a.out, "\nCase %s\n", caseBadge.Sprint(g.Key))
		a.renderTable(g.Allocations)
	}
}

func (a *BoardAdapter) renderTable(allocations []models.Allocation) {
	if len(allocations) == 0 {
		fmt.Fprintln(a.out, faintNotice.Sprint("  (none)"))
		return
	}

	fmt.Fprintf(a.out, "%-15s %-6s %-8s %-12s %-16s %-15s %-16s %s\n",
		"ID", "TYPE", "PRIORITY", "STATUS", "ASSIGNEE", "CASE", "ALLOCATED", "TITLE")
	fmt.Fprintln(a.out, rule)
	now := a.now()
	for _, al := range allocations {
		title := al.DoableTitle
		if al.IsCaseAllocation {
			title += " " + caseBadge.Sprint("[case]")
		}
		fmt.Fprintf(a.out, "%-15s %-6s %s %s %-16s %-15s %-16s %s\n",
			al.DoableID,
			al.DoableType,
			colorPriority(al.Priority, 8),
			colorStatus(al.Status, 12),
			orDash(al.Assignee()),
			orDash(al.Case()),
			allocatedAge(al.AllocatedAt, now),
			title,
		)
	}
}

// Complete marks an allocated doable complete.
func (a *BoardAdapter) Complete(ctx context.Context, doableID string) error {
	if err := a.service.Load(ctx); err != nil {
		return err
	}
	if err := a.service.MarkComplete(ctx, doableID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, ok("Doable %s marked as complete\n"), doableID)
	return nil
}

// Unallocate releases a single doable.
func (a *BoardAdapter) Unallocate(ctx context.Context, doableID string) error {
	if err := a.service.Load(ctx); err != nil {
		return err
	}
	if err := a.service.Unallocate(ctx, doableID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, ok("Doable %s unallocated\n"), doableID)
	return nil
}

// UnallocateCase releases every doable of a case.
func (a *BoardAdapter) UnallocateCase(ctx context.Context, caseID string) error {
	if err := a.service.Load(ctx); err != nil {
		return err
	}
	if err := a.service.UnallocateCase(ctx, caseID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, ok("Case %s unallocated\n"), caseID)
	return nil
}
