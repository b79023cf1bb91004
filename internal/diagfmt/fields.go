package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"telex/internal/field"
)

// FormatFields lists parsed field definitions one per line, with names
// padded to a common display width so the bounds line up:
//
//	PACKET SEND TIME [1, 7]
//	| - hour         [1, 2]
func FormatFields(w io.Writer, defs []field.Definition) {
	widest := 0
	for _, def := range defs {
		if n := runewidth.StringWidth(def.Name); n > widest {
			widest = n
		}
	}
	for _, def := range defs {
		pad := widest - runewidth.StringWidth(def.Name)
		fmt.Fprintf(w, "%s%s [%d, %d]\n", def.Name, strings.Repeat(" ", pad), def.Lower, def.Upper)
	}
}
