package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	loader := NewLoader().WithDotEnv(false).WithPath(filepath.Join(t.TempDir(), "missing.yaml"))

	result, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	cfg := result.Config

	if result.Path != "defaults" {
		t.Errorf("Path = %q, want defaults", result.Path)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Speech.DefaultVoice != "Camila" {
		t.Errorf("DefaultVoice = %q, want Camila", cfg.Speech.DefaultVoice)
	}
	if cfg.Speech.Language != "pt-BR" {
		t.Errorf("Language = %q, want pt-BR", cfg.Speech.Language)
	}
	if cfg.Web.MaxUploadBytes != 5*1024*1024 {
		t.Errorf("MaxUploadBytes = %d, want 5MiB", cfg.Web.MaxUploadBytes)
	}
	if cfg.Shaping.MinLabelConfidence != 70 || cfg.Shaping.MaxLabels != 20 {
		t.Errorf("unexpected shaping defaults: %+v", cfg.Shaping)
	}
	if cfg.Describe.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Describe.Model, DefaultModel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("DEFAULT_VOICE", "Vitoria")
	t.Setenv("TTS_PROVIDER", "edge")

	loader := NewLoader().WithDotEnv(false).WithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	result, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	cfg := result.Config

	if cfg.Server.Port != 8081 {
		t.Errorf("Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.AWS.Region != "sa-east-1" {
		t.Errorf("Region = %q, want sa-east-1", cfg.AWS.Region)
	}
	if cfg.Describe.APIKey != "gsk_test" {
		t.Errorf("APIKey = %q, want gsk_test", cfg.Describe.APIKey)
	}
	if cfg.Speech.DefaultVoice != "Vitoria" {
		t.Errorf("DefaultVoice = %q, want Vitoria", cfg.Speech.DefaultVoice)
	}
	if cfg.Speech.Provider != "edge" {
		t.Errorf("Provider = %q, want edge", cfg.Speech.Provider)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9000
speech:
  default_voice: Thiago
shaping:
  max_labels: 10
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := NewLoader().WithDotEnv(false).WithPath(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	cfg := result.Config

	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Speech.DefaultVoice != "Thiago" {
		t.Errorf("DefaultVoice = %q, want Thiago", cfg.Speech.DefaultVoice)
	}
	if cfg.Shaping.MaxLabels != 10 {
		t.Errorf("MaxLabels = %d, want 10", cfg.Shaping.MaxLabels)
	}
	// untouched sections keep their defaults
	if cfg.Vision.MaxLabels != 50 {
		t.Errorf("Vision.MaxLabels = %d, want 50", cfg.Vision.MaxLabels)
	}
}

func TestLoad_EnvBeatsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9001")

	result, err := NewLoader().WithDotEnv(false).WithPath(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if result.Config.Server.Port != 9001 {
		t.Errorf("Port = %d, want env override 9001", result.Config.Server.Port)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader().WithDotEnv(false).WithPath(path).Load(); err == nil {
		t.Error("Load() should fail on invalid yaml")
	}
}
