package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RemoteEncoderConfig holds configuration for the remote sentence
// encoder (OpenAI-compatible embeddings endpoint).
type RemoteEncoderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	Dimension   int    `yaml:"dimension"`
}

// EncoderConfig selects and configures the word embedder. Type is one
// of "auto" (remote with fallback), "remote" or "fallback".
type EncoderConfig struct {
	Type   string               `yaml:"type"`
	Remote *RemoteEncoderConfig `yaml:"remote,omitempty"`
}

// LayoutConfig contains connection details for the external 3D layout
// service.
type LayoutConfig struct {
	URL         string `yaml:"url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// CacheConfig configures the persistent embedding cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// VocabularyConfig points at the seed word list.
type VocabularyConfig struct {
	SeedFile string `yaml:"seed_file"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Encoder    EncoderConfig    `yaml:"encoder"`
	Layout     LayoutConfig     `yaml:"layout"`
	Cache      CacheConfig      `yaml:"cache"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	LogPath    string           `yaml:"log_path"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/wordspace/config.yaml.
// If neither exists, it writes defaults to ~/.config/wordspace/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wordspace", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Encoder: EncoderConfig{Type: "fallback"},
		Layout:  LayoutConfig{URL: "http://localhost:7208", TimeoutSecs: 60},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Encoder.Type == "" {
		cfg.Encoder.Type = "fallback"
	}
	if (cfg.Encoder.Type == "remote" || cfg.Encoder.Type == "auto") && cfg.Encoder.Remote != nil {
		if cfg.Encoder.Remote.BaseURL == "" {
			cfg.Encoder.Remote.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Encoder.Remote.APIKeyEnv == "" {
			cfg.Encoder.Remote.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Encoder.Remote.Model == "" {
			cfg.Encoder.Remote.Model = "text-embedding-3-small"
		}
		if cfg.Encoder.Remote.TimeoutSecs == 0 {
			cfg.Encoder.Remote.TimeoutSecs = 30
		}
	}
	if cfg.Layout.URL == "" {
		cfg.Layout.URL = "http://localhost:7208"
	}
	if cfg.Layout.TimeoutSecs == 0 {
		cfg.Layout.TimeoutSecs = 60
	}
	if cfg.Cache.Enabled && cfg.Cache.Path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Path = filepath.Join(home, ".cache", "wordspace", "embeddings.db")
		}
	}
}
