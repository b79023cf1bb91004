package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Separator frames every extraction report, one rule above and one below.
const Separator = "===================================="

var separatorColor = color.New(color.Faint)

// Report writes one extraction report: a separator rule, every Describe
// line in configuration order, and a closing rule.
func Report(w io.Writer, lines []string, opts PrettyOpts) {
	rule := Separator
	if opts.Color {
		rule = separatorColor.Sprint(rule)
	}
	fmt.Fprintln(w, rule)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, rule)
}
