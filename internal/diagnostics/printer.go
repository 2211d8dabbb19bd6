package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer renders diagnostics to a writer, with ANSI colors when the
// writer is an interactive terminal.
type Printer struct {
	out     io.Writer
	colored bool
}

func NewPrinter(out io.Writer) *Printer {
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{out: out, colored: colored}
}

func (p *Printer) Print(err *DiagnosticError) {
	if err == nil {
		return
	}
	if !p.colored {
		fmt.Fprintf(p.out, "error %s\n", err.Error())
		return
	}
	code := color.New(color.FgRed, color.Bold).Sprintf("error [%s]", err.Code)
	if err.Token.IsZero() {
		fmt.Fprintf(p.out, "%s %s\n", code, err.Message)
		return
	}
	pos := color.New(color.FgCyan).Sprint(err.Token.Pos())
	fmt.Fprintf(p.out, "%s %s: %s\n", code, pos, err.Message)
}

func (p *Printer) PrintAll(errs []*DiagnosticError) {
	for _, err := range errs {
		p.Print(err)
	}
}
