package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Printer writes styled messages to one stream
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter returns a Printer for out. FormatAuto is resolved by
// inspecting out when it is an *os.File, and falls back to plain text
// otherwise.
func NewPrinter(out io.Writer, format Format) *Printer {
	if format == FormatAuto {
		f, _ := out.(*os.File)
		format = DetectFormat(f)
	}
	return &Printer{out: out, format: format}
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

// Errorf prints "Error: <message>" with the Error style
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.line("Error", "Error:", fmt.Sprintf(format, args...))
}

func (p *Printer) line(style, label, msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.style(style, label), msg)
}

func (p *Printer) style(name, s string) string {
	if p.format != FormatTerminal {
		return s
	}
	renderer := lipgloss.NewRenderer(p.out, termenv.WithProfile(termenv.ColorProfile()))
	return renderer.NewStyle().Inherit(Style(name)).Render(s)
}

// Bold returns s in bold when stdout is a terminal, for use in help
// templates.
func Bold(s string) string {
	if DetectFormat(os.Stdout) != FormatTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}
