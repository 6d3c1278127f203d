package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tracalorie/internal/model"
	"github.com/idilsaglam/tracalorie/internal/ui"
)

const (
	barWidth     = 28
	maxNameWidth = 60
)

func listLines(p *ui.Printer, all, shown []model.Item, where string, goal int) []string {
	total := sum(all)
	t := p.Theme
	header := fmt.Sprintf("%s  %s %d  %s %s",
		p.C(t.Title, "Calories"),
		p.C(t.Accent, "Items"), len(all),
		p.C(t.Accent, "Total"), ui.Kcal(total),
	)

	lines := []string{header}
	if goal > 0 {
		lines = append(lines, p.ProgressBar(total, goal, barWidth)+" of "+ui.Kcal(goal))
	}
	lines = append(lines, "")
	if where != "" {
		lines = append(lines, p.C(t.Muted, fmt.Sprintf("where %s: %d of %d items, %s",
			where, len(shown), len(all), ui.Kcal(sum(shown)))))
	}
	lines = append(lines, itemLines(p, shown)...)
	lines = append(lines, "")
	lines = append(lines, p.C(t.Muted, "Tip: add with `tracalorie add 600 Pizza`"))
	return lines
}

func itemLines(p *ui.Printer, items []model.Item) []string {
	if len(items) == 0 {
		return []string{p.C(p.Theme.Muted, "no items")}
	}
	names := make([]string, len(items))
	width := 0
	for i, it := range items {
		name := it.Name
		if r := []rune(name); len(r) > maxNameWidth {
			name = string(r[:maxNameWidth-3]) + "..."
		}
		names[i] = name
		if w := lipgloss.Width(name); w > width {
			width = w
		}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", it.ID)
		out = append(out, fmt.Sprintf("%s %s  %s",
			p.C(ui.Dim, idx), ui.PadRight(names[i], width), p.C(p.Theme.Muted, ui.Kcal(it.Calories))))
	}
	return out
}

func totalLine(p *ui.Printer, total, goal int) string {
	line := "Total " + ui.Kcal(total)
	switch {
	case goal <= 0:
	case total > goal:
		line += p.C(p.Theme.Over, fmt.Sprintf(" (%s over the %s goal)", ui.Kcal(total-goal), ui.Kcal(goal)))
	default:
		line += fmt.Sprintf(" (%s left of %s)", ui.Kcal(goal-total), ui.Kcal(goal))
	}
	return line
}

func sum(items []model.Item) int {
	total := 0
	for _, it := range items {
		total += it.Calories
	}
	return total
}
