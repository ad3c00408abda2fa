package cli

import (
	"fmt"
	"github.com/fatih/color"
	"golang.org/x/term"
	"io"
	"os"
)

// Printer writes user-facing output, which goes to STDERR by default.
type Printer struct {
	out      io.Writer
	errColor *color.Color
}

func NewPrinter() *Printer {
	return new(Printer).Redirect(os.Stderr)
}

// Redirect sends output to writer.
// Colored output is only used when writer is a terminal.
func (p *Printer) Redirect(writer io.Writer) *Printer {
	p.out = writer
	p.errColor = color.New(color.FgRed, color.Bold)
	if !IsTerminal(writer) {
		p.errColor.DisableColor()
	}
	return p
}

// IsTerminal reports whether w is a file descriptor connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Errorf prints a line prefixed with "error: ".
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = p.errColor.Fprint(p.out, "error: ")
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Write allows a Printer to be used as an [io.Writer], e.g. as the destination of a log handler.
func (p *Printer) Write(b []byte) (int, error) {
	return p.out.Write(b)
}
