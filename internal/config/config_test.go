package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultProfile != "latex" {
		t.Errorf("expected default profile 'latex', got %s", cfg.DefaultProfile)
	}

	if len(cfg.Profiles) != 3 {
		t.Errorf("expected 3 profiles, got %d", len(cfg.Profiles))
	}

	md, ok := cfg.Profiles["markdown"]
	if !ok {
		t.Error("expected 'markdown' profile in config")
	}
	if md.Format != "markdown" {
		t.Errorf("expected markdown profile format 'markdown', got %s", md.Format)
	}

	plain, ok := cfg.Profiles["plain"]
	if !ok {
		t.Error("expected 'plain' profile in config")
	}
	if !plain.SkipStyles {
		t.Error("expected plain profile to skip styles")
	}

	if cfg.Match.FuzzyThreshold != 0.7 {
		t.Errorf("expected fuzzy threshold 0.7, got %v", cfg.Match.FuzzyThreshold)
	}
}

func TestConfig_GetProfile(t *testing.T) {
	cfg := DefaultConfig()

	p, ok := cfg.GetProfile("latex")
	if !ok {
		t.Fatal("expected to find 'latex' profile")
	}
	if p.Format != "latex" {
		t.Errorf("expected format 'latex', got %s", p.Format)
	}

	_, ok = cfg.GetProfile("nonexistent")
	if ok {
		t.Error("expected not to find 'nonexistent' profile")
	}
}

func TestConfig_GetDefaultProfile(t *testing.T) {
	cfg := DefaultConfig()

	p, ok := cfg.GetDefaultProfile()
	if !ok {
		t.Fatal("expected to find default profile")
	}
	if p.Format != "latex" {
		t.Errorf("expected default profile format 'latex', got %s", p.Format)
	}
}

func TestLoader_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	loader := NewLoaderWithPath(configPath)

	cfg := DefaultConfig()
	cfg.DefaultProfile = "markdown"

	err := loader.Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if !loader.Exists() {
		t.Error("expected config file to exist after save")
	}

	loaded, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.DefaultProfile != "markdown" {
		t.Errorf("expected default profile 'markdown', got %s", loaded.DefaultProfile)
	}
}

func TestLoader_LoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nonexistent", "config.yaml")

	loader := NewLoaderWithPath(configPath)

	// Should return default config when file doesn't exist
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}

	if cfg.DefaultProfile != "latex" {
		t.Errorf("expected default profile 'latex', got %s", cfg.DefaultProfile)
	}
}

func TestLoader_ExpandEnvVars(t *testing.T) {
	os.Setenv("TEST_ASSET_BASE", "/srv/assets")
	defer os.Unsetenv("TEST_ASSET_BASE")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `default_profile: web
profiles:
  web:
    format: markdown
    asset_base: ${TEST_ASSET_BASE}
match:
  fuzzy_threshold: 0.8
  normalize: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	web, ok := cfg.GetProfile("web")
	if !ok {
		t.Fatal("expected to find 'web' profile")
	}

	if web.AssetBase != "/srv/assets" {
		t.Errorf("expected asset base '/srv/assets', got %s", web.AssetBase)
	}
	if cfg.Match.FuzzyThreshold != 0.8 {
		t.Errorf("expected fuzzy threshold 0.8, got %v", cfg.Match.FuzzyThreshold)
	}
}

func TestExpandEnvVars_UnsetVar(t *testing.T) {
	os.Unsetenv("UNSET_VAR_FOR_TEST")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `default_profile: web
profiles:
  web:
    format: markdown
    asset_base: ${UNSET_VAR_FOR_TEST}
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	web, ok := cfg.GetProfile("web")
	if !ok {
		t.Fatal("expected to find 'web' profile")
	}

	// Unset env var should result in empty string
	if web.AssetBase != "" {
		t.Errorf("expected empty asset base for unset env var, got %s", web.AssetBase)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if v := GetEnvOrDefault("TEST_VAR", "default"); v != "test-value" {
		t.Errorf("expected 'test-value', got %s", v)
	}

	if v := GetEnvOrDefault("NONEXISTENT_VAR", "default"); v != "default" {
		t.Errorf("expected 'default', got %s", v)
	}
}

func TestNewLoader(t *testing.T) {
	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("failed to create loader: %v", err)
	}

	path := loader.ConfigPath()
	if path == "" {
		t.Error("expected non-empty config path")
	}

	if filepath.Base(path) != ConfigFileName {
		t.Errorf("expected config file name %s, got %s", ConfigFileName, filepath.Base(path))
	}
}

func TestLoader_Init(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	loader := NewLoaderWithPath(configPath)

	err := loader.Init()
	if err != nil {
		t.Fatalf("failed to init config: %v", err)
	}

	if !loader.Exists() {
		t.Error("expected config file to exist after init")
	}

	// Init again should fail
	err = loader.Init()
	if err == nil {
		t.Error("expected error when initializing existing config")
	}
}

func TestLoader_LoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidYAML := "{{{{invalid yaml"
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	_, err := loader.Load()
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}
