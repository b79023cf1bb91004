// Package diagfmt renders diagnostics and extraction reports into
// human-readable terminal output. It is the only place where diag records
// meet formatting; producers never print.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"telex/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>: <SEV> <ID>: <Message>
// (без ":<line>", если диагностика не привязана к строке).
func Pretty(w io.Writer, bag *diag.Bag, path string, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		if d.Line > 0 {
			fmt.Fprintf(w, "%s:%d: %s %s: %s\n", path, d.Line, sev, d.Code.ID(), d.Message)
		} else {
			fmt.Fprintf(w, "%s: %s %s: %s\n", path, sev, d.Code.ID(), d.Message)
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
