package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Cleanup(viper.Reset)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", cfg.AppHost)
		assert.Equal(t, 8000, cfg.AppPort)
		assert.Equal(t, DriverSQLite, cfg.StorageDriver)
		assert.False(t, cfg.ValidateFolderMoves)
	})

	t.Run("Explicit file", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		path := filepath.Join(t.TempDir(), "multiai.env")
		require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9001\nSTORAGE_DRIVER=redis\nVALIDATE_FOLDER_MOVES=true\n"), 0o600))
		viper.Set(ConfigFileKey, path)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 9001, cfg.AppPort)
		assert.Equal(t, DriverRedis, cfg.StorageDriver)
		assert.True(t, cfg.ValidateFolderMoves)
	})

	t.Run("Environment wins over defaults", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		t.Setenv("OLLAMA_MODEL", "qwen2.5")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "qwen2.5", cfg.OllamaModel)
	})

	t.Run("Missing explicit file", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		viper.Set(ConfigFileKey, filepath.Join(t.TempDir(), "nope.env"))

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
