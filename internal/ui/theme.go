package ui

import "strings"

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	Over                                   string // goal exceeded
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	BarFull, BarEmpty                      string
	SymDone, SymFail                       string
	Plain                                  bool // never colorize
}

// ThemeNames lists the accepted --theme values.
var ThemeNames = []string{"classic", "neon", "mono"}

func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Over: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			BarFull: "▰", BarEmpty: "▱",
			SymDone: "✔", SymFail: "✖",
		}
	case "mono":
		return Theme{
			Name:     "mono",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			BarFull: "#", BarEmpty: ".",
			SymDone: "ok:", SymFail: "error:",
			Plain: true,
		}
	default: // classic
		return Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Over: fgYellow,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			BarFull: "█", BarEmpty: "░",
			SymDone: "✔", SymFail: "✖",
		}
	}
}
