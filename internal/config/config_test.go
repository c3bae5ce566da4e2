package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.Encoder.Type)
	assert.Equal(t, "http://localhost:7208", cfg.Layout.URL)
}

func TestLoadAppliesRemoteDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "encoder:\n  type: auto\n  remote:\n    model: custom-encoder\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Encoder.Type)
	require.NotNil(t, cfg.Encoder.Remote)
	assert.Equal(t, "custom-encoder", cfg.Encoder.Remote.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Encoder.Remote.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Encoder.Remote.APIKeyEnv)
	assert.Equal(t, 30, cfg.Encoder.Remote.TimeoutSecs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &AppConfig{
		Encoder: EncoderConfig{Type: "fallback"},
		Layout:  LayoutConfig{URL: "http://layout:9999", TimeoutSecs: 5},
		Cache:   CacheConfig{Enabled: true, Path: "/tmp/cache.db"},
		Vocabulary: VocabularyConfig{
			SeedFile: "/etc/wordspace/seed.txt",
		},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Layout, loaded.Layout)
	assert.Equal(t, cfg.Cache, loaded.Cache)
	assert.Equal(t, cfg.Vocabulary, loaded.Vocabulary)
}

func TestCachePathDefault(t *testing.T) {
	cfg := &AppConfig{Cache: CacheConfig{Enabled: true}}
	applyConfigDefaults(cfg)
	assert.NotEmpty(t, cfg.Cache.Path)
}
