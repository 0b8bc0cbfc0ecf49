// Package config reads and writes the per-classroom settings file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/marcus/blink/internal/auth"
)

const configFile = ".blink/config.json"

// Config holds the tool's settings. A missing file yields the defaults.
type Config struct {
	// AccessCode gates the teacher role; compared case-insensitively
	AccessCode string `json:"accessCode,omitempty"`

	// OpenAIAPIKey enables the AI coach. The OPENAI_API_KEY environment
	// variable takes precedence so the key can stay out of the file.
	OpenAIAPIKey string `json:"openaiApiKey,omitempty"`

	// Model and MaxTokens tune the coaching request
	Model     string `json:"model,omitempty"`
	MaxTokens int    `json:"maxTokens,omitempty"`
}

// Load reads the config from disk, applying defaults for absent values
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	var cfg Config
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.AccessCode == "" {
		cfg.AccessCode = auth.DefaultCode
	}
	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}

// APIKey resolves the OpenAI key, preferring the environment
func (c *Config) APIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return c.OpenAIAPIKey
}
