package config

import (
	"telex/internal/diag"
)

// Options configure a Loader.
type Options struct {
	// Reporter receives per-line findings. Может быть nil — тогда
	// диагностики отбрасываются, но загрузка продолжается.
	Reporter diag.Reporter
}

func (l *Loader) report(code diag.Code, sev diag.Severity, line int, msg string) {
	if l.opts.Reporter != nil {
		l.opts.Reporter.Report(code, sev, line, msg)
	}
}

// lineReporter pins every forwarded diagnostic to a fixed configuration
// line, so that producers that are not line-aware (field.New) still end up
// with an addressable finding.
type lineReporter struct {
	next diag.Reporter
	line int
}

func (lr lineReporter) Report(code diag.Code, sev diag.Severity, _ int, msg string) {
	if lr.next != nil {
		lr.next.Report(code, sev, lr.line, msg)
	}
}
