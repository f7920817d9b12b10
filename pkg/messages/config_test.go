package messages_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/constraint"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/messages"
)

func TestFromConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no path yields defaults", func(t *testing.T) {
		c, err := messages.FromConfig(ctx, messages.Config{}, messages.WithLogger(logger.Discard()))
		require.NoError(t, err)
		assert.Equal(t, constraint.ObjectNotNull.DefaultTemplate(), c.Template(constraint.ObjectNotNull))
	})

	t.Run("strict config with unknown entries fails", func(t *testing.T) {
		_, err := messages.FromConfig(ctx, messages.Config{
			Path:   filepath.Join("testdata", "unknown.yaml"),
			Strict: true,
		}, messages.WithLogger(logger.Discard()))
		assert.ErrorIs(t, err, messages.ErrUnknownMessage)
	})

	t.Run("lenient config accepts unknown entries", func(t *testing.T) {
		c, err := messages.FromConfig(ctx, messages.Config{
			Path: filepath.Join("testdata", "unknown.yaml"),
		}, messages.WithLogger(logger.Discard()))
		require.NoError(t, err)
		assert.Equal(t, "{0} must be empty", c.Template(constraint.ObjectIsNull))
	})
}

func TestLoadFromEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("RULEKIT_MESSAGES_PATH", filepath.Join("testdata", "en.yaml"))
	t.Setenv("RULEKIT_MESSAGES_STRICT", "true")

	c, err := messages.LoadFromEnv(context.Background(), messages.WithLogger(logger.Discard()))
	require.NoError(t, err)
	assert.Equal(t, "{0} is required", c.Template(constraint.ContainerNotEmpty))
}

func TestLoadFromEnvBadValue(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("RULEKIT_MESSAGES_STRICT", "not-a-bool")

	_, err := messages.LoadFromEnv(context.Background())
	assert.ErrorIs(t, err, messages.ErrFailedToLoadConfig)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
