// Package config reads line-oriented filter configurations and turns them
// into field definitions. Malformed lines are reported and skipped; a load
// never aborts because of a bad entry. The only fatal condition is failing
// to create the file when it has to be synthesized.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"telex/internal/diag"
	"telex/internal/field"
)

// commentMarker starts a comment line; delimiter separates data tokens.
const (
	commentMarker = ";"
	delimiter     = ","
)

// Loader reads one configuration file into an ordered field list.
type Loader struct {
	path string
	opts Options
}

func NewLoader(path string, opts Options) *Loader {
	return &Loader{path: path, opts: opts}
}

// Path returns the configuration file this loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the configuration and returns the field definitions in file
// order. A missing file is synthesized with default content first (reported
// as a warning); failure to create it is the only error returned.
func (l *Loader) Load() ([]field.Definition, error) {
	if _, err := os.Stat(l.path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %q: %w", l.path, err)
		}
		l.report(diag.CfgFileCreated, diag.SevWarning, 0,
			fmt.Sprintf("filter data file %q could not be found; a new one will be created with the default values", l.path))
		if err := WriteDefaultFile(l.path); err != nil {
			l.report(diag.CfgCreateFailed, diag.SevError, 0, err.Error())
			return nil, err
		}
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", l.path, err)
	}

	var defs []field.Definition
	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		text := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if text == "" || strings.HasPrefix(text, commentMarker) {
			continue
		}
		parsed, code, detail, ok := parseLine(text)
		if !ok {
			l.report(code, diag.SevWarning, lineNo,
				fmt.Sprintf("line %d %q could not be converted to a field definition (%s); the line will be skipped, please review the configuration", lineNo, text, detail))
			continue
		}
		defs = append(defs, field.New(parsed.name, parsed.lower, parsed.upper,
			lineReporter{next: l.opts.Reporter, line: lineNo}))
	}
	return defs, nil
}

// WriteDefaultFile creates path with the default configuration content.
// It refuses to clobber an existing file.
func WriteDefaultFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create default configuration %q: %w", path, err)
	}
	if _, err := f.WriteString(DefaultContent()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write default configuration %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close default configuration %q: %w", path, err)
	}
	return nil
}
