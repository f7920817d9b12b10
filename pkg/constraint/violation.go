package constraint

import (
	"errors"
	"fmt"
	"strings"
)

// Violation is the outcome of a failed rule: the message identifying the
// failure and the resolved positional arguments for its template.
type Violation struct {
	Message ViolationMessage
	Args    []any
}

func (v Violation) Code() string { return v.Message.Code() }

func (v Violation) String() string {
	if len(v.Args) == 0 {
		return v.Message.Code()
	}
	return fmt.Sprintf("%s%v", v.Message.Code(), v.Args)
}

// Violations is an ordered collection of violations. It implements error so
// a non-empty set can be returned directly.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.String())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed so callers can use errors.Is.
func (vs Violations) Is(target error) bool {
	return target == ErrValidationFailed
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Has reports whether any violation carries the code.
func (vs Violations) Has(code string) bool {
	for _, v := range vs {
		if v.Message.Code() == code {
			return true
		}
	}
	return false
}

// Codes returns the violation codes in order, duplicates included.
func (vs Violations) Codes() []string {
	codes := make([]string, 0, len(vs))
	for _, v := range vs {
		codes = append(codes, v.Message.Code())
	}
	return codes
}

// Err returns nil for an empty set and the set itself otherwise.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// AsViolations extracts Violations from an error chain.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}
