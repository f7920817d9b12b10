package messages

import (
	"context"
	"errors"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

// Config selects the catalog file applied on top of the defaults.
type Config struct {
	Path   string `env:"RULEKIT_MESSAGES_PATH"`
	Strict bool   `env:"RULEKIT_MESSAGES_STRICT" envDefault:"false"`
}

// FromConfig creates a catalog and applies the configured file, if any.
// Options are applied after the configured strictness.
func FromConfig(ctx context.Context, cfg Config, opts ...Option) (*Catalog, error) {
	c := New(append([]Option{WithStrict(cfg.Strict)}, opts...)...)
	if cfg.Path == "" {
		return c, nil
	}
	if err := c.LoadFile(ctx, cfg.Path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromEnv reads Config from the environment and calls FromConfig.
func LoadFromEnv(ctx context.Context, opts ...Option) (*Catalog, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrFailedToLoadConfig, err)
	}
	return FromConfig(ctx, cfg, opts...)
}
