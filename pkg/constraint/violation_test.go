package constraint_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/constraint"
)

func TestViolations(t *testing.T) {
	t.Parallel()

	var vs constraint.Violations
	assert.True(t, vs.IsEmpty())
	assert.NoError(t, vs.Err())
	assert.Equal(t, "validation failed", vs.Error())

	vs.Add(constraint.Violation{Message: constraint.ContainerFixedSize, Args: []any{3, 2}})
	vs.Add(constraint.Violation{Message: constraint.BooleanIsTrue})

	assert.False(t, vs.IsEmpty())
	assert.True(t, vs.Has("BOOLEAN_IS_TRUE"))
	assert.False(t, vs.Has("OBJECT_NOT_NULL"))
	assert.Equal(t, []string{"CONTAINER_FIXED_SIZE", "BOOLEAN_IS_TRUE"}, vs.Codes())
	assert.Equal(t, "validation failed: CONTAINER_FIXED_SIZE[3 2]; BOOLEAN_IS_TRUE", vs.Error())

	err := vs.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, constraint.ErrValidationFailed)
}

func TestAsViolations(t *testing.T) {
	t.Parallel()

	_, ok := constraint.AsViolations(nil)
	assert.False(t, ok)

	_, ok = constraint.AsViolations(errors.New("other"))
	assert.False(t, ok)

	wrapped := fmt.Errorf("saving order: %w", constraint.NewBoolean().IsTrue().Validate(new(bool)))
	vs, ok := constraint.AsViolations(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"BOOLEAN_IS_TRUE"}, vs.Codes())
	assert.ErrorIs(t, wrapped, constraint.ErrValidationFailed)
}
