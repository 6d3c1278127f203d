package ui

import (
	"fmt"
	"io"
	"os"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	Dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

// Printer writes themed CLI output. Color is decided once by the caller.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Theme Theme
	Color bool
}

func NewPrinter(out, errw io.Writer, theme Theme, color bool) *Printer {
	return &Printer{Out: out, Err: errw, Theme: theme, Color: color && !theme.Plain}
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (p *Printer) C(color, s string) string {
	if !p.Color || color == "" {
		return s
	}
	return color + s + reset
}

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.C(p.Theme.Success, p.Theme.SymDone+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.C(p.Theme.Error, p.Theme.SymFail+" "+msg))
}

func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.Err, p.C(p.Theme.Muted, msg))
}
