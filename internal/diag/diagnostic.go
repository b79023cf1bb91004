package diag

// Diagnostic is a single finding produced while loading a configuration or
// constructing a field definition.
type Diagnostic struct {
	Severity Severity
	Code     Code
	// Line is the 1-based line in the configuration source the finding
	// refers to; 0 when the finding is not tied to a particular line.
	Line    int
	Message string
}
