package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ALPHAFOLD_API_KEY", "")
	t.Setenv("ALPHAFOLD_BASE_URL", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AlphaFold.APIKey != "" {
		t.Errorf("APIKey = %q, want empty (absent credential is valid)", cfg.AlphaFold.APIKey)
	}
	if cfg.AlphaFold.BaseURL != "https://api.alphafoldserver.com/v1" {
		t.Errorf("BaseURL = %q", cfg.AlphaFold.BaseURL)
	}
	if cfg.AlphaFold.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.AlphaFold.PollInterval)
	}
	if cfg.AlphaFold.MaxPollAttempts != 60 {
		t.Errorf("MaxPollAttempts = %d, want 60", cfg.AlphaFold.MaxPollAttempts)
	}
	if cfg.AlphaFold.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.AlphaFold.RequestTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("ALPHAFOLD_API_KEY", "secret-token")
	t.Setenv("ALPHAFOLD_BASE_URL", "https://staging.alphafold.test/v1")

	cfg, err := LoadConfig("", true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AlphaFold.APIKey != "secret-token" {
		t.Errorf("APIKey = %q", cfg.AlphaFold.APIKey)
	}
	if cfg.AlphaFold.BaseURL != "https://staging.alphafold.test/v1" {
		t.Errorf("BaseURL = %q", cfg.AlphaFold.BaseURL)
	}
	if !cfg.Runtime.Dev {
		t.Error("Runtime.Dev not set")
	}
}

func TestLoadConfigFile(t *testing.T) {
	// t.Setenv registers the restore; the test itself needs the variable gone.
	t.Setenv("ALPHAFOLD_API_KEY", "placeholder")
	os.Unsetenv("ALPHAFOLD_API_KEY")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
log:
  level: debug
  format: console
alphafold:
  api_key: from-file
  max_poll_attempts: 3
colabfold:
  enabled: true
  bin_path: /opt/colabfold/bin/colabfold_batch
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AlphaFold.APIKey != "from-file" {
		t.Errorf("APIKey = %q", cfg.AlphaFold.APIKey)
	}
	if cfg.AlphaFold.MaxPollAttempts != 3 {
		t.Errorf("MaxPollAttempts = %d", cfg.AlphaFold.MaxPollAttempts)
	}
	if !cfg.ColabFold.Enabled || cfg.ColabFold.BinPath == "" {
		t.Errorf("colabfold config = %+v", cfg.ColabFold)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Errorf("log config = %+v", cfg.Log)
	}
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	t.Setenv("ALPHAFOLD_API_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("alphafold:\n  api_key: from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AlphaFold.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env override to win", cfg.AlphaFold.APIKey)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("alphafold: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path, false); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
