package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/wam/internal/ports/primary"
)

type tab int

const (
	tabRoster tab = iota
	tabBoard
)

// Model is the root bubbletea model: two tabs, a modal form and a status
// bar. Errors never end the program; they are shown in the status bar and
// the affected view stays as it was.
type Model struct {
	keys  KeyMap
	theme Theme

	roster RosterModel
	board  BoardModel
	form   CreateForm

	active   tab
	formOpen bool

	status      string
	statusLevel slog.Level
	statusSeq   int

	width  int
	height int
}

// New creates the root model over the given services.
func New(ctx context.Context, board primary.BoardService, roster primary.RosterService, doables primary.DoableService) Model {
	return Model{
		keys:   DefaultKeyMap,
		theme:  DefaultTheme,
		roster: NewRosterModel(ctx, roster),
		board:  NewBoardModel(ctx, board),
		form:   NewCreateForm(ctx, doables),
	}
}

// Init loads both tabs.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.roster.Load(), m.board.Load())
}

// setStatus shows text in the status bar until the fade delay passes or
// a newer status replaces it.
func (m *Model) setStatus(text string, level slog.Level) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusLevel = level
	seq := m.statusSeq
	return tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{seq: seq}
	})
}

// report shows err, or success when err is nil.
func (m *Model) report(err error, success string) tea.Cmd {
	if err != nil {
		return m.setStatus(err.Error(), slog.LevelError)
	}
	if success == "" {
		return nil
	}
	return m.setStatus(success, slog.LevelInfo)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.roster, _ = m.roster.Update(msg)
		m.board, _ = m.board.Update(msg)
		return m, nil

	case logRecordMsg:
		cmd := m.setStatus(msg.Summary, msg.Level)
		return m, cmd

	case statusFadeMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case boardLoadedMsg:
		m.board, _ = m.board.Update(msg)
		cmd := m.report(msg.err, "")
		return m, cmd

	case boardMutatedMsg:
		m.board, _ = m.board.Update(msg)
		cmd := m.report(msg.err, fmt.Sprintf("%s %s: done", msg.op, msg.id))
		return m, cmd

	case rosterLoadedMsg:
		m.roster, _ = m.roster.Update(msg)
		cmd := m.report(msg.err, "")
		return m, cmd

	case rosterToggledMsg:
		m.roster, _ = m.roster.Update(msg)
		cmd := m.report(msg.err, "")
		return m, cmd

	case rosterAllocatedMsg:
		m.roster, _ = m.roster.Update(msg)
		success := fmt.Sprintf("%s: %d doable(s) allocated to user %s", msg.op, msg.count, msg.userID)
		if msg.count == 0 {
			success = fmt.Sprintf("%s: nothing available for user %s", msg.op, msg.userID)
		}
		cmd := m.report(msg.err, success)
		return m, cmd

	case doableCreatedMsg:
		m.form, _ = m.form.Update(msg)
		if msg.err != nil {
			cmd := m.report(msg.err, "")
			return m, cmd
		}
		m.formOpen = false
		m.form.Reset()
		cmd := m.report(nil, fmt.Sprintf("created doable %s: %s", msg.doable.ID, msg.doable.Title))
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.formOpen {
		if msg.String() == "esc" {
			m.formOpen = false
			m.form.Reset()
			return m, nil
		}
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	if !m.searching() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchTab):
			if m.active == tabRoster {
				m.active = tabBoard
			} else {
				m.active = tabRoster
			}
			return m, nil
		case key.Matches(msg, m.keys.NewDoable):
			m.formOpen = true
			return m, nil
		}
	}

	if m.active == tabBoard {
		m.board, cmd = m.board.Update(msg)
	} else {
		m.roster, cmd = m.roster.Update(msg)
	}
	return m, cmd
}

func (m Model) searching() bool {
	if m.active == tabBoard {
		return m.board.Searching()
	}
	return m.roster.Searching()
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	if m.formOpen {
		form := m.form.View()
		if m.width > 0 {
			form = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, form)
		}
		b.WriteString(form)
	} else if m.active == tabBoard {
		b.WriteString(m.board.View())
	} else {
		b.WriteString(m.roster.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) tabBar() string {
	render := func(name string, t tab) string {
		if m.active == t {
			return m.theme.header("[" + name + "]")
		}
		return m.theme.faint(" " + name + " ")
	}
	return render("Users", tabRoster) + " " + render("Board", tabBoard)
}

func (m Model) statusBar() string {
	if m.status != "" {
		if m.statusLevel >= slog.LevelWarn {
			return m.theme.errorText(m.status)
		}
		return m.status
	}

	var tabHelp string
	if m.active == tabBoard {
		tabHelp = m.board.Help()
	} else {
		tabHelp = m.roster.Help()
	}
	return m.theme.help(tabHelp + " · " + helpLine(m.keys.SwitchTab, m.keys.NewDoable, m.keys.Refresh, m.keys.Quit))
}

// Run starts the TUI and blocks until the user quits. Records logged
// through handler show up in the status bar.
func Run(ctx context.Context, model Model, handler *LogHandler, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, opts...)
	handler.SetProgram(program)
	_, err := program.Run()
	return err
}
