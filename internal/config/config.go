// Package config loads the customs CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/i18n"
	"github.com/fishbait/customs/internal/logging"
	"github.com/fishbait/customs/source"
)

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidFormat is returned when the file is not valid YAML.
	ErrInvalidFormat = errors.New("invalid config format")
	// ErrValidationFailed is returned when a field holds an unsupported value.
	ErrValidationFailed = errors.New("config validation failed")
)

// Config is the CLI configuration.
type Config struct {
	Log      Log    `yaml:"log"`
	Language string `yaml:"language"`
	Input    Input  `yaml:"input"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Input configures how payloads are read before they reach an agent.
type Input struct {
	// DuplicateKeys is ignore, warn or error.
	DuplicateKeys string `yaml:"duplicate_keys"`
	MaxDepth      int    `yaml:"max_depth"`
	MaxBytes      int64  `yaml:"max_bytes"`
	// NumberMode is json_number or float64.
	NumberMode string `yaml:"number_mode"`
	FailFast   bool   `yaml:"fail_fast"`
	// JSONDriver names a driver from source.Names.
	JSONDriver string `yaml:"json_driver"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:      Log{Level: "info", Format: "console"},
		Language: "en",
		Input: Input{
			DuplicateKeys: "ignore",
			NumberMode:    "json_number",
			JSONDriver:    "encoding/json",
		},
	}
}

// Load reads the YAML file at path over the defaults. ${VAR} references are
// expanded from the environment.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses YAML from r over the defaults and validates the result.
func Read(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every enumerated field and the numeric limits.
func (c *Config) Validate() error {
	var problems []string
	if !logging.ValidLevel(c.Log.Level) {
		problems = append(problems, fmt.Sprintf("log.level %q (want one of %v)", c.Log.Level, logging.Levels()))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		problems = append(problems, fmt.Sprintf("log.format %q (want console or json)", c.Log.Format))
	}
	if !contains(i18n.Languages(), c.Language) {
		problems = append(problems, fmt.Sprintf("language %q (want one of %v)", c.Language, i18n.Languages()))
	}
	if _, ok := severities[c.Input.DuplicateKeys]; !ok {
		problems = append(problems, fmt.Sprintf("input.duplicate_keys %q (want ignore, warn or error)", c.Input.DuplicateKeys))
	}
	if _, ok := numberModes[c.Input.NumberMode]; !ok {
		problems = append(problems, fmt.Sprintf("input.number_mode %q (want json_number or float64)", c.Input.NumberMode))
	}
	if !contains(source.Names(), c.Input.JSONDriver) {
		problems = append(problems, fmt.Sprintf("input.json_driver %q (want one of %v)", c.Input.JSONDriver, source.Names()))
	}
	if c.Input.MaxDepth < 0 {
		problems = append(problems, "input.max_depth must not be negative")
	}
	if c.Input.MaxBytes < 0 {
		problems = append(problems, "input.max_bytes must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(problems, "; "))
	}
	return nil
}

var severities = map[string]customs.Severity{
	"ignore": customs.Ignore,
	"warn":   customs.Warn,
	"error":  customs.Error,
}

var numberModes = map[string]customs.NumberMode{
	"json_number": customs.NumberJSONNumber,
	"float64":     customs.NumberFloat64,
}

// ParseOpt converts the input section into decode options.
func (c *Config) ParseOpt() customs.ParseOpt {
	return customs.ParseOpt{
		Strictness: customs.Strictness{OnDuplicateKey: severities[c.Input.DuplicateKeys]},
		MaxDepth:   c.Input.MaxDepth,
		MaxBytes:   c.Input.MaxBytes,
		FailFast:   c.Input.FailFast,
	}
}

// NumberMode returns the configured number materialization.
func (c *Config) NumberMode() customs.NumberMode { return numberModes[c.Input.NumberMode] }

// Logging returns the logger configuration writing to w.
func (c *Config) Logging(w io.Writer) logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, Output: w}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
