package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by every command.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Code    lipgloss.Style
	Gutter  lipgloss.Style
	Caret   lipgloss.Style
	Help    lipgloss.Style
	Link    lipgloss.Style
}

// NewStyles builds the style set bound to a lipgloss renderer, so the
// renderer's color profile decides whether ANSI codes are emitted.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Info:    lr.NewStyle().Foreground(lipgloss.Color("12")),
		Code:    lr.NewStyle().Foreground(lipgloss.Color("13")),
		Gutter:  lr.NewStyle().Foreground(lipgloss.Color("12")),
		Caret:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Help:    lr.NewStyle().Foreground(lipgloss.Color("14")),
		Link:    lr.NewStyle().Underline(true).Foreground(lipgloss.Color("12")),
	}
}
