package validate

import (
	"fmt"
	"sort"
	"strings"
)

// Code classifies why a validation failed.
type Code string

const (
	// CodeRequired marks a mandatory field that was missing or empty.
	CodeRequired Code = "REQUIRED"
	// CodeFormat marks input with the wrong character set or length.
	CodeFormat Code = "FORMAT"
	// CodeRange marks a numeric value outside the allowed bounds.
	CodeRange Code = "RANGE"
	// CodeChecksum marks a Luhn or ABA arithmetic failure.
	CodeChecksum Code = "CHECKSUM"
	// CodePolicy marks a password complexity or pattern violation.
	CodePolicy Code = "POLICY"
	// CodeUnsupported marks input that is recognized but disallowed,
	// such as a non-NANP number or an unknown card network.
	CodeUnsupported Code = "UNSUPPORTED"
	// CodeLeadingZero marks an amount with superfluous leading zeros.
	CodeLeadingZero Code = "LEADING_ZERO"
)

// Verdict is the result of a single validation call. It is created fresh
// per call and never mutated. Normalized holds the canonical form for
// validators that produce one; it is empty on failure and for validators
// that never normalize (passwords).
type Verdict struct {
	Valid      bool
	Normalized string
	Code       Code
	Message    string
}

func ok(normalized string) Verdict {
	return Verdict{Valid: true, Normalized: normalized}
}

func fail(code Code, message string) Verdict {
	return Verdict{Code: code, Message: message}
}

// FieldErrors maps field names to failing verdicts. It implements the
// error interface so flows can return every failing field at once while
// keeping each validator's specific message intact.
type FieldErrors map[string]Verdict

// Put records the verdict for a field if it failed. Valid verdicts are
// ignored so callers can feed every verdict through without branching.
func (fe FieldErrors) Put(field string, v Verdict) {
	if !v.Valid {
		fe[field] = v
	}
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

func (fe FieldErrors) Has(field string) bool {
	_, found := fe[field]
	return found
}

// Messages returns field -> message, the shape handlers serialize to JSON.
func (fe FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(fe))
	for field, v := range fe {
		out[field] = v.Message
	}
	return out
}

// Error implements the error interface. Fields are sorted so the message
// is stable across calls with identical input.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe[field].Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
