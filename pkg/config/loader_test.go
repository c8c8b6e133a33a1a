package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/19990921ck-dev/food/pkg/config"
)

type testConfig struct {
	BasePath string        `env:"TEST_FOOD_BASE_PATH" envDefault:"/"`
	Endpoint string        `env:"TEST_FOOD_ENDPOINT,required"`
	Timeout  time.Duration `env:"TEST_FOOD_TIMEOUT" envDefault:"30s"`
}

func TestLoad(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		t.Setenv("TEST_FOOD_ENDPOINT", "https://script.example.com/exec")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/", cfg.BasePath)
		assert.Equal(t, "https://script.example.com/exec", cfg.Endpoint)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg struct {
			Value string `env:"TEST_FOOD_SURELY_UNSET_VALUE,required"`
		}
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("explicit env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "food.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_FOOD_FILE_ENDPOINT=https://file.example.com\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("TEST_FOOD_FILE_ENDPOINT") })

		var cfg struct {
			Endpoint string `env:"TEST_FOOD_FILE_ENDPOINT,required"`
		}
		require.NoError(t, config.Load(&cfg, path))
		assert.Equal(t, "https://file.example.com", cfg.Endpoint)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, config.ErrEnvFile)
	})
}
