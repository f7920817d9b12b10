// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for tag-driven parsing and
// github.com/joho/godotenv for .env files. Each configuration type is parsed
// once per process and cached, so packages can call Load wherever they need
// their settings without re-reading the environment.
//
// # Usage
//
//	type Config struct {
//		Path   string `env:"RULEKIT_MESSAGES_PATH"`
//		Strict bool   `env:"RULEKIT_MESSAGES_STRICT" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
//
// MustLoad panics instead of returning the error, for settings the process
// cannot start without. LoadEnvFiles loads additional dotenv files; call it
// before the first Load. Reset clears the cache between tests.
package config
