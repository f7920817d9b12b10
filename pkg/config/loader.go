package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache holds one entry per configuration type.
	cache sync.Map

	dotenvOnce sync.Once
)

// Load fills v from environment variables according to its `env` tags.
// Each configuration type is parsed once; later calls for the same type
// receive the cached value, or the cached error.
//
// The first call also loads a .env file from the working directory if one
// exists. Variables already set in the environment take precedence.
//
// Example:
//
//	type MessagesConfig struct {
//		Path   string `env:"RULEKIT_MESSAGES_PATH"`
//		Strict bool   `env:"RULEKIT_MESSAGES_STRICT" envDefault:"false"`
//	}
//
//	var cfg MessagesConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	raw, _ := cache.LoadOrStore(typeKey[T](), &entry{})
	e := raw.(*entry)
	e.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		return e.err
	}
	cfg, ok := e.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cfg
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnvFiles loads the named dotenv files into the process environment
// without overriding variables that are already set. It does not touch the
// cache, so it must run before the first Load of the affected types.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
