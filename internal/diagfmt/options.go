package diagfmt

// PrettyOpts control human-readable rendering.
type PrettyOpts struct {
	// Color enables ANSI colors. The CLI decides based on --color and
	// whether the destination is a terminal.
	Color bool
}
