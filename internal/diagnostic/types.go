package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bindrename/internal/common"
)

// Diagnostic codes.
const (
	CodeDuplicateDefinition = "DUPLICATE_DEFINITION"
	CodeUnresolvedName      = "UNRESOLVED_NAME"
	CodeOrphanAliases       = "ORPHAN_ALIASES"
)

// Diagnostics holds the diagnostics gathered during discovery and export.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Item identifies the discovered item this relates to (if any), e.g. "id=3".
	Item string
	// Detail carries a multi-line dump of the affected state (if any).
	Detail string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Level maps the severity onto a slog level.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, item string) Diagnostic {
	diag := Diagnostic{Severity: SeverityError, Code: code, Message: message, Item: item}
	d.Errors = append(d.Errors, diag)

	return diag
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, item string) Diagnostic {
	diag := Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Item: item}
	d.Warnings = append(d.Warnings, diag)

	return diag
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, item string) Diagnostic {
	diag := Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Item: item}
	d.Infos = append(d.Infos, diag)

	return diag
}

// Add appends a fully built diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
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

// Count returns how many diagnostics of any severity carry code.
func (d *Diagnostics) Count(code string) int {
	n := 0
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
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

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Item != "" {
		return d.Item + ": " + msg
	}

	return msg
}

// Log writes the diagnostic to logger at the level matching its severity.
func (d Diagnostic) Log(logger *slog.Logger) {
	if logger == nil {
		return
	}

	attrs := []slog.Attr{slog.String("code", d.Code)}
	if d.Item != "" {
		attrs = append(attrs, slog.String("item", d.Item))
	}

	if d.Detail != "" {
		attrs = append(attrs, slog.String("detail", d.Detail))
	}

	logger.LogAttrs(context.Background(), d.Severity.Level(), d.Message, attrs...)
}
