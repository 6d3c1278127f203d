package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders done/total as a bar plus percentage. The bar is
// capped at width; the percentage is not, so an exceeded goal reads >100%.
func (p *Printer) ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat(p.Theme.BarFull, filled) + strings.Repeat(p.Theme.BarEmpty, width-filled)
	pct := done * 100 / total
	color := p.Theme.Success
	if done > total {
		color = p.Theme.Over
	}
	return fmt.Sprintf("%s %3d%%", p.C(color, bar), pct)
}

// PadRight pads s with spaces to the given visible width.
func PadRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Panel draws a framed box around lines using the printer's theme.
func (p *Printer) Panel(lines []string) {
	t := p.Theme
	maxw := 0
	for _, ln := range lines {
		if w := lipgloss.Width(ln); w > maxw {
			maxw = w
		}
	}
	fmt.Fprintln(p.Out, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(p.Out, t.V+" "+PadRight(ln, maxw)+" "+t.V)
	}
	fmt.Fprintln(p.Out, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}
