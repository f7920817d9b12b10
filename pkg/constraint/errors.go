package constraint

import "errors"

var (
	// ErrValidationFailed matches any non-empty Violations via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoConstraintToOverride is the panic value when a message override is
	// requested before any rule was added.
	ErrNoConstraintToOverride = errors.New("no constraint found to override")
)
