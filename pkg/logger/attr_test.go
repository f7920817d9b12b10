package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestCode(t *testing.T) {
	attr := logger.Code("CONTAINER_FIXED_SIZE")
	require.Equal(t, "code", attr.Key)
	assert.Equal(t, "CONTAINER_FIXED_SIZE", attr.Value.String())

	assert.True(t, logger.Code("").Equal(slog.Attr{}))
}

func TestPath(t *testing.T) {
	attr := logger.Path("messages/en.yaml")
	require.Equal(t, "path", attr.Key)
	assert.Equal(t, "messages/en.yaml", attr.Value.String())

	assert.True(t, logger.Path("").Equal(slog.Attr{}))
}

func TestComponentAndCount(t *testing.T) {
	c := logger.Component("constraint")
	require.Equal(t, "component", c.Key)
	assert.Equal(t, "constraint", c.Value.String())

	n := logger.Count(3)
	require.Equal(t, "count", n.Key)
	assert.Equal(t, int64(3), n.Value.Int64())
}
