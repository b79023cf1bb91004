package field

import (
	"fmt"

	"telex/internal/diag"
)

// Definition is one named character range inside a raw telemetry line.
// Lower and Upper are inclusive 0-based offsets counted in characters
// (runes), not bytes. A Definition is immutable after construction.
type Definition struct {
	Name  string
	Lower int
	Upper int
}

// New builds an already-normalized Definition. If lower > upper the bounds
// are swapped and a warning is reported through r; construction never fails.
// Normalization happens before the value is returned, so callers never
// observe an inverted pair.
func New(name string, lower, upper int, r diag.Reporter) Definition {
	if lower > upper {
		if r != nil {
			r.Report(diag.FieldIndexOrder, diag.SevWarning, 0,
				fmt.Sprintf("item %q has its index order inverted; corrected to (%d, %d), please verify the configuration", name, upper, lower))
		}
		lower, upper = upper, lower
	}
	return Definition{Name: name, Lower: lower, Upper: upper}
}

// Extract returns the substring of source from Lower to Upper inclusive.
// Bounds that fall outside source clip to whatever characters exist in
// range; an empty string is returned when the range lies entirely past the
// end. Several default fields (the catch-all comment range in particular)
// rely on this clipping to work against variable-length input.
func (d Definition) Extract(source string) string {
	runes := []rune(source)
	lo, hi := d.Lower, d.Upper+1
	if lo < 0 {
		lo = 0
	}
	if lo > len(runes) {
		lo = len(runes)
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	if hi < lo {
		hi = lo
	}
	return string(runes[lo:hi])
}

// Describe renders the sole user-visible output format: "name: value".
func (d Definition) Describe(source string) string {
	return fmt.Sprintf("%s: %s", d.Name, d.Extract(source))
}

func (d Definition) String() string {
	return fmt.Sprintf("%s [%d, %d]", d.Name, d.Lower, d.Upper)
}
