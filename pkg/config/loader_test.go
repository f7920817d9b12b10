package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

type testConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type testConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
}

type testConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type envFileConfig struct {
	Value string `env:"TEST_ENV_FILE_VALUE"`
}

func TestLoad_Success(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg testConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.Reset()
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")

	var cfg testConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()
	os.Unsetenv("REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	// The failure is cached like a success.
	t.Setenv("REQUIRED_VALUE", "now set")
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	config.Reset()
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now set", cfg.Required)
}

func TestLoad_Singleton(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first testConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second testConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.TestString)
}

func TestLoad_Concurrent(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_STRING_SINGLETON", "shared")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg testConfigSingleton
			if err := config.Load(&cfg); err == nil {
				results[i] = cfg.TestString
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	os.Unsetenv("REQUIRED_VALUE")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnvFiles(t *testing.T) {
	config.Reset()
	os.Unsetenv("TEST_ENV_FILE_VALUE")
	t.Cleanup(func() { os.Unsetenv("TEST_ENV_FILE_VALUE") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_VALUE=from_file\n"), 0o600))

	require.NoError(t, config.LoadEnvFiles(path))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
	assert.NoError(t, config.LoadEnvFiles())
}
