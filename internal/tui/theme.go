// Package tui is the interactive terminal client for wam: a staff roster
// and an allocation board on two tabs, plus a modal form for creating
// doables. Models hold only view state (cursor, focus, search input); the
// allocation data lives in the services they drive.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/example/wam/internal/models"
)

// Theme defines the color palette for the TUI. All colors use lipgloss
// ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color

	StatusUnallocated lipgloss.Color
	StatusAllocated   lipgloss.Color
	StatusCompleted   lipgloss.Color

	CaseBadge        lipgloss.Color
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	ErrorText        lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	PriorityHigh:   lipgloss.Color("196"),
	PriorityMedium: lipgloss.Color("214"),
	PriorityLow:    lipgloss.Color("245"),

	StatusUnallocated: lipgloss.Color("220"),
	StatusAllocated:   lipgloss.Color("39"),
	StatusCompleted:   lipgloss.Color("34"),

	CaseBadge:        lipgloss.Color("170"),
	HeaderForeground: lipgloss.Color("75"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	ErrorText:        lipgloss.Color("203"),
}

// StatusColor returns the color for a doable status, or FaintText for
// unknown values.
func (theme Theme) StatusColor(status models.Status) lipgloss.Color {
	switch status {
	case models.StatusUnallocated:
		return theme.StatusUnallocated
	case models.StatusAllocated:
		return theme.StatusAllocated
	case models.StatusCompleted:
		return theme.StatusCompleted
	}
	return theme.FaintText
}

// PriorityColor returns the color for a priority, or NormalText for
// unknown values.
func (theme Theme) PriorityColor(priority models.Priority) lipgloss.Color {
	switch priority {
	case models.PriorityHigh:
		return theme.PriorityHigh
	case models.PriorityMedium:
		return theme.PriorityMedium
	case models.PriorityLow:
		return theme.PriorityLow
	}
	return theme.NormalText
}

// status renders a status padded to width.
func (theme Theme) status(status models.Status, width int) string {
	return lipgloss.NewStyle().Foreground(theme.StatusColor(status)).Width(width).Render(string(status))
}

func (theme Theme) priority(priority models.Priority, width int) string {
	return lipgloss.NewStyle().Foreground(theme.PriorityColor(priority)).Width(width).Render(string(priority))
}

func (theme Theme) badge(text string) string {
	return lipgloss.NewStyle().Foreground(theme.CaseBadge).Bold(true).Render("[" + text + "]")
}

func (theme Theme) header(text string) string {
	return lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).Render(text)
}

func (theme Theme) faint(text string) string {
	return lipgloss.NewStyle().Foreground(theme.FaintText).Render(text)
}

func (theme Theme) help(text string) string {
	return lipgloss.NewStyle().Foreground(theme.HelpText).Render(text)
}

func (theme Theme) errorText(text string) string {
	return lipgloss.NewStyle().Foreground(theme.ErrorText).Render(text)
}

func (theme Theme) selected(line string, width int) string {
	style := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(line)
}
