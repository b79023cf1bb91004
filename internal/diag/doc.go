// Package diag defines the diagnostic model shared by the configuration
// loader and the field layer.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     while parsing a filter configuration or normalizing a field definition.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/diagfmt;
// the CLI decides what ends up on the user's terminal.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Line – 1-based configuration line the finding refers to (0 when the
//     finding is not tied to a particular line).
//   - Message – human oriented text; keep it short and actionable.
//
// Producers should use a diag.Reporter to decouple emission from storage.
// diag.BagReporter aggregates diagnostics into a Bag, which supports sorting
// and severity queries, so tests can assert on emitted diagnostics without
// capturing console output.
package diag
