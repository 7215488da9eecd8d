package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/wam/internal/core/doable"
	"github.com/example/wam/internal/models"
	"github.com/example/wam/internal/ports/primary"
)

// doableCreatedMsg reports the result of submitting the form.
type doableCreatedMsg struct {
	doable *models.Doable
	err    error
}

// formField indexes the form's focusable fields.
type formField int

const (
	fieldTitle formField = iota
	fieldType
	fieldPriority
	fieldCase
	fieldCount
)

var (
	typeChoices     = []string{"", string(models.DoableTypeEmail), string(models.DoableTypeTask)}
	priorityChoices = []string{"", string(models.PriorityHigh), string(models.PriorityMedium), string(models.PriorityLow)}
)

// CreateForm is the modal for creating a doable. Type and priority are
// picked with ←/→; title and case are free text. Enter submits only when
// the draft can be submitted.
type CreateForm struct {
	ctx     context.Context
	service primary.DoableService
	theme   Theme

	title    textinput.Model
	caseID   textinput.Model
	typ      int
	priority int
	focus    formField

	submitting bool
	err        error
}

// NewCreateForm creates an empty form submitting to service.
func NewCreateForm(ctx context.Context, service primary.DoableService) CreateForm {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "title"
	title.CharLimit = 200

	caseID := textinput.New()
	caseID.Prompt = ""
	caseID.Placeholder = "case ID (required for tasks)"

	f := CreateForm{
		ctx:     ctx,
		service: service,
		theme:   DefaultTheme,
		title:   title,
		caseID:  caseID,
	}
	f.title.Focus()
	return f
}

// Draft returns the form's current values.
func (f CreateForm) Draft() doable.Draft {
	return doable.Draft{
		Title:    f.title.Value(),
		Type:     typeChoices[f.typ],
		Priority: priorityChoices[f.priority],
		CaseID:   f.caseID.Value(),
	}
}

// CanSubmit reports whether the submit action is enabled.
func (f CreateForm) CanSubmit() bool {
	return !f.submitting && f.Draft().CanSubmit().Allowed
}

// Reset clears every field.
func (f *CreateForm) Reset() {
	f.title.Reset()
	f.caseID.Reset()
	f.typ = 0
	f.priority = 0
	f.err = nil
	f.submitting = false
	f.setFocus(fieldTitle)
}

func (f *CreateForm) setFocus(field formField) {
	f.focus = field
	f.title.Blur()
	f.caseID.Blur()
	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldCase:
		f.caseID.Focus()
	}
}

// Update handles messages for the form. Esc is handled by the parent.
func (f CreateForm) Update(msg tea.Msg) (CreateForm, tea.Cmd) {
	switch msg := msg.(type) {
	case doableCreatedMsg:
		f.submitting = false
		f.err = msg.err
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil
		case "enter":
			cmd := f.submit()
			return f, cmd
		case "left", "right":
			if f.focus == fieldType || f.focus == fieldPriority {
				step := 1
				if msg.String() == "left" {
					step = -1
				}
				f.cycle(step)
				return f, nil
			}
		}

		var cmd tea.Cmd
		switch f.focus {
		case fieldTitle:
			f.title, cmd = f.title.Update(msg)
		case fieldCase:
			f.caseID, cmd = f.caseID.Update(msg)
		}
		return f, cmd
	}
	return f, nil
}

func (f *CreateForm) cycle(step int) {
	switch f.focus {
	case fieldType:
		f.typ = (f.typ + step + len(typeChoices)) % len(typeChoices)
	case fieldPriority:
		f.priority = (f.priority + step + len(priorityChoices)) % len(priorityChoices)
	}
}

// submit sends the draft when allowed. The form's values stay put until
// the result arrives.
func (f *CreateForm) submit() tea.Cmd {
	if f.submitting {
		return nil
	}
	draft := f.Draft()
	if result := draft.CanSubmit(); !result.Allowed {
		f.err = result.Error()
		return nil
	}
	f.submitting = true
	f.err = nil
	ctx, service := f.ctx, f.service
	return func() tea.Msg {
		created, err := service.CreateDoable(ctx, draft)
		return doableCreatedMsg{doable: created, err: err}
	}
}

// View renders the form.
func (f CreateForm) View() string {
	var b strings.Builder
	b.WriteString(f.theme.header("New doable"))
	b.WriteString("\n\n")

	label := func(field formField, name string) string {
		if f.focus == field {
			return f.theme.header(fmt.Sprintf("› %-9s", name))
		}
		return fmt.Sprintf("  %-9s", name)
	}
	choice := func(value string) string {
		if value == "" {
			return f.theme.faint("‹ select ›")
		}
		return "‹ " + value + " ›"
	}

	fmt.Fprintf(&b, "%s %s\n", label(fieldTitle, "Title"), f.title.View())
	fmt.Fprintf(&b, "%s %s\n", label(fieldType, "Type"), choice(typeChoices[f.typ]))
	fmt.Fprintf(&b, "%s %s\n", label(fieldPriority, "Priority"), choice(priorityChoices[f.priority]))
	fmt.Fprintf(&b, "%s %s\n", label(fieldCase, "Case"), f.caseID.View())
	b.WriteString("\n")

	submit := "[ Create ]"
	switch {
	case f.submitting:
		submit = f.theme.faint("[ Creating… ]")
	case !f.CanSubmit():
		submit = f.theme.faint(submit)
	default:
		submit = f.theme.header(submit)
	}
	b.WriteString(submit)
	if f.err != nil {
		b.WriteString("  ")
		b.WriteString(f.theme.errorText(f.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(f.theme.help("Tab next field · ←/→ choose · Enter create · Esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.theme.BorderColor).
		Padding(1, 2).
		Render(b.String())
}
