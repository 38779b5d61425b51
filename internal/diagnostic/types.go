package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"variantgen/internal/common"
)

// Code is a stable identifier for a class of diagnostic.
type Code string

const (
	// CodeMalformedAnnotation - annotation does not match any recognized
	// directive shape (unknown name, wrong argument count, empty list).
	CodeMalformedAnnotation Code = "malformed-annotation"
	// CodeConflictingDirective - more than one mutually exclusive inclusion
	// directive on a single field.
	CodeConflictingDirective Code = "conflicting-directive"
	// CodeUnknownVariant - a directive references a variant name that was
	// never declared.
	CodeUnknownVariant Code = "unknown-variant"
	// CodeUnnamedField - a field lacks a name.
	CodeUnnamedField Code = "unnamed-field"
	// CodeDuplicateVariant - the same variant name declared twice.
	// Surfaced as a warning; the later declaration wins.
	CodeDuplicateVariant Code = "duplicate-variant"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is a single message tied to a field or directive.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the class of diagnostic.
	Code Code
	// Message is the human-readable description.
	Message string
	// Field names the offending field, if any.
	Field string
	// Directive is the raw offending directive text, if any.
	Directive string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Field != "" {
		prefix = append(prefix, "field "+d.Field)
	}

	if d.Directive != "" {
		prefix = append(prefix, fmt.Sprintf("directive %q", d.Directive))
	}

	msg := fmt.Sprintf("[%s] %s", d.Code, d.Message)
	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics accumulates all diagnostics produced by a derivation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Errorf adds an error diagnostic with a formatted message.
func (d *Diagnostics) Errorf(code Code, field, directive, format string, args ...any) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		Field:     field,
		Directive: directive,
	})
}

// Warnf adds a warning diagnostic with a formatted message.
func (d *Diagnostics) Warnf(code Code, field, directive, format string, args ...any) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		Field:     field,
		Directive: directive,
	})
}

// Add appends a single diagnostic to the matching severity bucket.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
		return
	}

	d.Warnings = append(d.Warnings, diag)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
