package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/wam/internal/core/allocation"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/primary"
)

// boardLoadedMsg reports the result of (re)loading the board.
type boardLoadedMsg struct {
	err error
}

// boardMutatedMsg reports the result of a complete/unallocate call.
type boardMutatedMsg struct {
	op  string
	id  string
	err error
}

// BoardModel is the allocation board tab. The service owns the list and
// the view state; the model owns the cursor and the search input.
type BoardModel struct {
	ctx     context.Context
	service primary.BoardService
	keys    KeyMap
	theme   Theme

	search textinput.Model
	cursor int
	width  int
}

// NewBoardModel creates a board tab driving service.
func NewBoardModel(ctx context.Context, service primary.BoardService) BoardModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search title, type or status"

	return BoardModel{
		ctx:     ctx,
		service: service,
		keys:    DefaultKeyMap,
		theme:   DefaultTheme,
		search:  search,
	}
}

// Load fetches the allocation list.
func (m BoardModel) Load() tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		return boardLoadedMsg{err: service.Load(ctx)}
	}
}

// Searching reports whether the search input has focus.
func (m BoardModel) Searching() bool {
	return m.search.Focused()
}

// rows returns allocations in display order: active before completed,
// grouped by case in case view.
func (m BoardModel) rows() []models.Allocation {
	return flatten(m.service.Projection())
}

func flatten(p allocation.Projection) []models.Allocation {
	if p.Mode != allocation.ViewCase {
		return append(append([]models.Allocation{}, p.Active...), p.Completed...)
	}
	var rows []models.Allocation
	for _, g := range p.ActiveGroups {
		rows = append(rows, g.Allocations...)
	}
	for _, g := range p.CompletedGroups {
		rows = append(rows, g.Allocations...)
	}
	return rows
}

// Selected returns the allocation under the cursor.
func (m BoardModel) Selected() (models.Allocation, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return models.Allocation{}, false
	}
	return rows[m.cursor], true
}

func (m *BoardModel) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the board tab.
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case boardLoadedMsg, boardMutatedMsg:
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m BoardModel) updateSearch(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SearchClear):
		m.search.Reset()
		m.search.Blur()
		m.service.SetQuery("")
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.keys.SearchAccept):
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.service.SetQuery(m.search.Value())
	m.clampCursor()
	return m, cmd
}

func (m BoardModel) updateKeys(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.SearchActivate):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.SearchClear):
		m.search.Reset()
		m.service.SetQuery("")
		m.clampCursor()
	case key.Matches(msg, m.keys.ToggleView):
		m.service.SetViewMode(m.service.State().ViewMode.Toggle())
		m.clampCursor()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.Load()
	case key.Matches(msg, m.keys.Complete):
		if a, ok := m.Selected(); ok && allocation.ActionsFor(a).Complete {
			return m, m.run("complete", a.DoableID, m.service.MarkComplete)
		}
	case key.Matches(msg, m.keys.Unallocate):
		if a, ok := m.Selected(); ok && allocation.ActionsFor(a).Unallocate {
			return m, m.run("unallocate", a.DoableID, m.service.Unallocate)
		}
	case key.Matches(msg, m.keys.UnallocateCase):
		if a, ok := m.Selected(); ok && allocation.ActionsFor(a).UnallocateCase {
			return m, m.run("unallocate case", a.Case(), m.service.UnallocateCase)
		}
	}
	return m, nil
}

// run performs a backend mutation off the update loop.
func (m BoardModel) run(op, id string, call func(context.Context, string) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return boardMutatedMsg{op: op, id: id, err: call(ctx, id)}
	}
}

// View renders the board tab.
func (m BoardModel) View() string {
	var b strings.Builder
	state := m.service.State()

	fmt.Fprintf(&b, "%s  %s\n", m.theme.header("Allocations"), m.theme.faint(fmt.Sprintf("view: %s", state.ViewMode)))
	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	p := m.service.Projection()
	if p.Len() == 0 {
		b.WriteString(m.theme.faint("No allocations"))
		b.WriteString("\n")
		return b.String()
	}

	row := 0
	section := func(title string, allocations []models.Allocation) {
		fmt.Fprintf(&b, "%s\n", m.theme.header(fmt.Sprintf("%s (%d)", title, len(allocations))))
		for _, a := range allocations {
			b.WriteString(m.renderRow(a, row == m.cursor))
			b.WriteString("\n")
			row++
		}
	}
	groups := func(title string, gs []allocation.Group) {
		n := 0
		for _, g := range gs {
			n += len(g.Allocations)
		}
		fmt.Fprintf(&b, "%s\n", m.theme.header(fmt.Sprintf("%s (%d)", title, n)))
		for _, g := range gs {
			fmt.Fprintf(&b, "  %s\n", m.theme.badge(g.Key))
			for _, a := range g.Allocations {
				b.WriteString(m.renderRow(a, row == m.cursor))
				b.WriteString("\n")
				row++
			}
		}
	}

	if p.Mode == allocation.ViewCase {
		groups("Active", p.ActiveGroups)
		if p.HasCompleted() {
			b.WriteString("\n")
			groups("Completed Cases", p.CompletedGroups)
		}
	} else {
		section("Active", p.Active)
		if p.HasCompleted() {
			b.WriteString("\n")
			section("Completed", p.Completed)
		}
	}
	return b.String()
}

func (m BoardModel) renderRow(a models.Allocation, selected bool) string {
	line := fmt.Sprintf("  %-14s %-6s %s %s %-18s %-18s %s",
		a.DoableID,
		a.DoableType,
		m.theme.priority(a.Priority, 7),
		m.theme.status(a.Status, 12),
		orDash(a.Assignee()),
		a.CreatedAt.Display(),
		a.DoableTitle,
	)
	if a.IsCaseAllocation {
		line += " " + m.theme.badge("Case")
	}
	if selected {
		return m.theme.selected(line, m.width)
	}
	return line
}

// Help returns the key hints for the board tab.
func (m BoardModel) Help() string {
	if m.search.Focused() {
		return helpLine(m.keys.SearchAccept, m.keys.SearchClear)
	}
	bindings := []key.Binding{m.keys.SearchActivate, m.keys.ToggleView}
	if a, ok := m.Selected(); ok {
		actions := allocation.ActionsFor(a)
		if actions.Complete {
			bindings = append(bindings, m.keys.Complete)
		}
		if actions.Unallocate {
			bindings = append(bindings, m.keys.Unallocate)
		}
		if actions.UnallocateCase {
			bindings = append(bindings, m.keys.UnallocateCase)
		}
	}
	return helpLine(bindings...)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
