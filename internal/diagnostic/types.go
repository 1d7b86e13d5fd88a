package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"property-sugar/internal/common"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Unit identifies which compilation unit this relates to (if any).
	Unit string
	// Member identifies which class member this relates to (if any).
	Member string
	// Pos is the source position (if known).
	Pos token.Position
	// Frame is a rendered code frame for the position (if available).
	Frame string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, unit, member string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Unit:     unit,
		Member:   member,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, unit, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Unit:     unit,
		Member:   member,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, unit, member string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Unit:     unit,
		Member:   member,
	})
}

// AddFailure records an engine failure for a unit. Source, when non-nil, is
// used to render a code frame.
func (d *Diagnostics) AddFailure(err *Error, unit string, source []byte) {
	d.AddErrorAt(err.Kind.String(), err.Message, unit, err.Member, err.Pos, source)
}

// AddErrorAt adds an error diagnostic at a source position.
func (d *Diagnostics) AddErrorAt(code, message, unit, member string, pos token.Position, source []byte) {
	diag := Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Unit:     unit,
		Member:   member,
		Pos:      pos,
	}
	if source != nil && pos.IsValid() {
		diag.Frame = CodeFrame(source, pos)
	}

	d.Errors = append(d.Errors, diag)
}

// AddWarningAt adds a warning diagnostic at a source position.
func (d *Diagnostics) AddWarningAt(code, message, unit, member string, pos token.Position) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Unit:     unit,
		Member:   member,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string

	switch {
	case d.Pos.IsValid():
		prefix = append(prefix, d.Pos.String())
	case d.Unit != "":
		prefix = append(prefix, d.Unit)
	}

	if d.Member != "" {
		prefix = append(prefix, "("+d.Member+")")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
