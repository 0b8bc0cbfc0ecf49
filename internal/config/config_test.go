package config

import (
	"testing"

	"github.com/marcus/blink/internal/auth"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AccessCode != auth.DefaultCode {
		t.Errorf("AccessCode = %q, want default", cfg.AccessCode)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	saved := &Config{
		AccessCode:   "GROEP8",
		OpenAIAPIKey: "sk-test",
		Model:        "gpt-4o-mini",
		MaxTokens:    128,
	}
	if err := Save(dir, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("round trip differs: %+v vs %+v", loaded, saved)
	}
}

func TestAPIKeyPrefersEnv(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-from-file"}

	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	if got := cfg.APIKey(); got != "sk-from-env" {
		t.Errorf("APIKey = %q, want env value", got)
	}

	t.Setenv("OPENAI_API_KEY", "")
	if got := cfg.APIKey(); got != "sk-from-file" {
		t.Errorf("APIKey = %q, want file value", got)
	}
}
