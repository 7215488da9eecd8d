package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/primary"
)

// rosterLoadedMsg reports the result of (re)loading the user list.
type rosterLoadedMsg struct {
	err error
}

// rosterToggledMsg reports the result of expanding or collapsing a user.
type rosterToggledMsg struct {
	userID   string
	expanded bool
	err      error
}

// rosterAllocatedMsg reports the result of an allocation call.
type rosterAllocatedMsg struct {
	op     string
	userID string
	count  int
	err    error
}

// rosterRow is one selectable line: a user, or one of an expanded user's
// doables.
type rosterRow struct {
	user   models.User
	doable *models.Doable
}

// RosterModel is the staff tab.
type RosterModel struct {
	ctx     context.Context
	service primary.RosterService
	keys    KeyMap
	theme   Theme

	search textinput.Model
	cursor int
	width  int
}

// NewRosterModel creates a roster tab driving service.
func NewRosterModel(ctx context.Context, service primary.RosterService) RosterModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search first, last or user name"

	return RosterModel{
		ctx:     ctx,
		service: service,
		keys:    DefaultKeyMap,
		theme:   DefaultTheme,
		search:  search,
	}
}

// Load fetches the user list.
func (m RosterModel) Load() tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		return rosterLoadedMsg{err: service.Load(ctx)}
	}
}

// Searching reports whether the search input has focus.
func (m RosterModel) Searching() bool {
	return m.search.Focused()
}

func (m RosterModel) rows() []rosterRow {
	var rows []rosterRow
	for _, u := range m.service.Users() {
		rows = append(rows, rosterRow{user: u})
		if !m.service.Expanded(u.ID) {
			continue
		}
		for _, d := range m.service.Doables(u.ID) {
			rows = append(rows, rosterRow{user: u, doable: &d})
		}
	}
	return rows
}

func (m RosterModel) selected() (rosterRow, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return rosterRow{}, false
	}
	return rows[m.cursor], true
}

func (m *RosterModel) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the roster tab.
func (m RosterModel) Update(msg tea.Msg) (RosterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case rosterLoadedMsg, rosterToggledMsg, rosterAllocatedMsg:
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

func (m RosterModel) updateSearch(msg tea.KeyMsg) (RosterModel, tea.Cmd) {
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

func (m RosterModel) updateKeys(msg tea.KeyMsg) (RosterModel, tea.Cmd) {
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
	case key.Matches(msg, m.keys.Refresh):
		return m, m.Load()
	case key.Matches(msg, m.keys.Expand):
		if row, ok := m.selected(); ok {
			if row.doable != nil {
				// Collapsing from a doable line moves the cursor to its user.
				m.cursor = m.userRow(row.user.ID)
			}
			return m, m.toggle(row.user.ID)
		}
	case key.Matches(msg, m.keys.Allocate):
		if row, ok := m.selected(); ok {
			return m, m.allocate("allocate doable", row.user.ID, func(ctx context.Context) (int, error) {
				d, err := m.service.AllocateDoable(ctx, row.user.ID)
				if d == nil {
					return 0, err
				}
				return 1, err
			})
		}
	case key.Matches(msg, m.keys.AllocateCase):
		if row, ok := m.selected(); ok {
			return m, m.allocate("allocate case", row.user.ID, func(ctx context.Context) (int, error) {
				doables, err := m.service.AllocateCase(ctx, row.user.ID)
				return len(doables), err
			})
		}
	case key.Matches(msg, m.keys.AllocateRelated):
		if row, ok := m.selected(); ok && row.doable != nil && row.doable.Case() != "" {
			caseID := row.doable.Case()
			return m, m.allocate("allocate related", row.user.ID, func(ctx context.Context) (int, error) {
				doables, err := m.service.AllocateRelated(ctx, row.user.ID, caseID)
				return len(doables), err
			})
		}
	}
	return m, nil
}

func (m RosterModel) userRow(userID string) int {
	for i, row := range m.rows() {
		if row.doable == nil && row.user.ID == userID {
			return i
		}
	}
	return m.cursor
}

func (m RosterModel) toggle(userID string) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		expanded, err := service.Toggle(ctx, userID)
		return rosterToggledMsg{userID: userID, expanded: expanded, err: err}
	}
}

func (m RosterModel) allocate(op, userID string, call func(context.Context) (int, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		count, err := call(ctx)
		return rosterAllocatedMsg{op: op, userID: userID, count: count, err: err}
	}
}

// View renders the roster tab.
func (m RosterModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", m.theme.header("Users"))
	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(m.theme.faint("No users"))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range rows {
		var line string
		if row.doable == nil {
			line = m.renderUser(row.user)
		} else {
			line = m.renderDoable(*row.doable)
		}
		if i == m.cursor {
			line = m.theme.selected(line, m.width)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m RosterModel) renderUser(u models.User) string {
	marker := "▸"
	if m.service.Expanded(u.ID) {
		marker = "▾"
	}
	line := fmt.Sprintf("%s %-25s %-16s", marker, u.DisplayName(), u.UserName)
	if u.PreferredDoableType != "" {
		line += " " + m.theme.faint("prefers "+string(u.PreferredDoableType))
	}
	return line
}

func (m RosterModel) renderDoable(d models.Doable) string {
	line := fmt.Sprintf("    %-14s %-6s %s %s %-18s %s",
		d.ID,
		d.Type,
		m.theme.priority(d.Priority, 7),
		m.theme.status(d.Status, 12),
		d.CreatedAt.Display(),
		d.Title,
	)
	if c := d.Case(); c != "" {
		line += " " + m.theme.badge(c)
	}
	return line
}

// Help returns the key hints for the roster tab.
func (m RosterModel) Help() string {
	if m.search.Focused() {
		return helpLine(m.keys.SearchAccept, m.keys.SearchClear)
	}
	bindings := []key.Binding{m.keys.SearchActivate, m.keys.Expand, m.keys.Allocate, m.keys.AllocateCase}
	if row, ok := m.selected(); ok && row.doable != nil && row.doable.Case() != "" {
		bindings = append(bindings, m.keys.AllocateRelated)
	}
	return helpLine(bindings...)
}
