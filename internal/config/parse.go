package config

import (
	"fmt"
	"strconv"
	"strings"

	"telex/internal/diag"
)

// parsedLine holds the raw parts of one data line before the field layer
// normalizes them.
type parsedLine struct {
	name  string
	lower int
	upper int
}

// parseLine converts one non-comment, non-blank line into its parts.
// On failure it returns the diagnostic code plus a short detail string and
// ok=false; a failing line never aborts the batch, the caller just skips it.
// Whitespace around every token is tolerated.
func parseLine(text string) (parsed parsedLine, code diag.Code, detail string, ok bool) {
	parts := strings.Split(text, delimiter)
	if len(parts) != 3 {
		return parsedLine{}, diag.CfgWrongFieldCount,
			fmt.Sprintf("expected name%slower_index%supper_index, got %d value(s)", delimiter, delimiter, len(parts)), false
	}

	lower, code, detail, ok := parseIndex("lower_index", parts[1])
	if !ok {
		return parsedLine{}, code, detail, false
	}
	upper, code, detail, ok := parseIndex("upper_index", parts[2])
	if !ok {
		return parsedLine{}, code, detail, false
	}

	return parsedLine{
		name:  strings.TrimSpace(parts[0]),
		lower: lower,
		upper: upper,
	}, diag.CfgInfo, "", true
}

func parseIndex(label, token string) (value int, code diag.Code, detail string, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, diag.CfgBadIndex, fmt.Sprintf("%s %q is not an integer", label, strings.TrimSpace(token)), false
	}
	if n < 0 {
		return 0, diag.CfgNegativeIndex, fmt.Sprintf("%s %d is negative", label, n), false
	}
	return n, diag.CfgInfo, "", true
}
