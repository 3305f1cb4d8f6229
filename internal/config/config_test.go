package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	opt := cfg.ParseOpt()
	if opt.Strictness.OnDuplicateKey != customs.Ignore || opt.MaxDepth != 0 || opt.MaxBytes != 0 || opt.FailFast {
		t.Fatalf("unexpected default ParseOpt: %+v", opt)
	}
	if cfg.NumberMode() != customs.NumberJSONNumber {
		t.Fatalf("NumberMode = %v, want NumberJSONNumber", cfg.NumberMode())
	}
}

func TestLoad_File(t *testing.T) {
	content := `
log:
  level: debug
  format: json
language: ja
input:
  duplicate_keys: error
  max_depth: 16
  max_bytes: 4096
  number_mode: float64
  fail_fast: true
  json_driver: go-json
`
	path := filepath.Join(t.TempDir(), "customs.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Language != "ja" {
		t.Errorf("Language = %s, want ja", cfg.Language)
	}
	if cfg.Input.JSONDriver != "go-json" {
		t.Errorf("JSONDriver = %s, want go-json", cfg.Input.JSONDriver)
	}
	opt := cfg.ParseOpt()
	if opt.Strictness.OnDuplicateKey != customs.Error || opt.MaxDepth != 16 || opt.MaxBytes != 4096 || !opt.FailFast {
		t.Errorf("ParseOpt = %+v", opt)
	}
	if cfg.NumberMode() != customs.NumberFloat64 {
		t.Errorf("NumberMode = %v, want NumberFloat64", cfg.NumberMode())
	}
}

func TestRead_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Read(strings.NewReader("input:\n  duplicate_keys: warn\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Input.NumberMode != "json_number" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.ParseOpt().Strictness.OnDuplicateKey != customs.Warn {
		t.Fatalf("duplicate policy = %v, want Warn", cfg.ParseOpt().Strictness.OnDuplicateKey)
	}
}

func TestRead_Empty(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Language != "en" {
		t.Fatalf("Language = %s, want en", cfg.Language)
	}
}

func TestRead_ExpandsEnv(t *testing.T) {
	t.Setenv("CUSTOMS_TEST_LEVEL", "warn")
	cfg, err := config.Read(strings.NewReader("log:\n  level: ${CUSTOMS_TEST_LEVEL}\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("Level = %s, want warn", cfg.Log.Level)
	}
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
		mention string
	}{
		{"bad level", "log:\n  level: loud\n", config.ErrValidationFailed, "log.level"},
		{"bad format", "log:\n  format: xml\n", config.ErrValidationFailed, "log.format"},
		{"bad language", "language: fr\n", config.ErrValidationFailed, "language"},
		{"bad duplicate policy", "input:\n  duplicate_keys: panic\n", config.ErrValidationFailed, "duplicate_keys"},
		{"bad number mode", "input:\n  number_mode: int\n", config.ErrValidationFailed, "number_mode"},
		{"bad driver", "input:\n  json_driver: sonic\n", config.ErrValidationFailed, "json_driver"},
		{"negative depth", "input:\n  max_depth: -1\n", config.ErrValidationFailed, "max_depth"},
		{"unknown field", "colour: red\n", config.ErrInvalidFormat, "colour"},
		{"not yaml", "log: [\n", config.ErrInvalidFormat, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Read(strings.NewReader(tt.content))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if tt.mention != "" && !strings.Contains(err.Error(), tt.mention) {
				t.Fatalf("error %q does not mention %q", err, tt.mention)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
}
