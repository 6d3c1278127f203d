package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tracalorie/internal/ui"
)

type styles struct {
	title, accent, muted, success, over, err lipgloss.Style
	selected, help, frame, form             lipgloss.Style
}

func newStyles(theme ui.Theme) styles {
	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		over:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		help:     lipgloss.NewStyle().Faint(true),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		form:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
	}
	switch theme.Name {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.accent = s.accent.Foreground(lipgloss.Color("14"))
	case "mono":
		plain := lipgloss.NewStyle()
		s.accent, s.success, s.over = plain, plain, plain
		s.err = plain.Bold(true)
		s.frame = s.frame.Border(lipgloss.NormalBorder()).UnsetBorderForeground()
		s.form = s.form.Border(lipgloss.NormalBorder()).UnsetBorderForeground()
	}
	return s
}
