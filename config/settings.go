package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEnvFile     = "/app/frontend/.env"
	DefaultURLKey      = "REACT_APP_BACKEND_URL"
	DefaultAPISuffix   = "/api"
	DefaultTimeout     = "10s"
	DefaultOrigin      = "http://localhost:3000"
	DefaultDetailLimit = 200
)

// Settings tunes the runner. Every field has a default, so a settings file is optional
// and may set only some of them.
type Settings struct {
	EnvFile          string `yaml:"env_file"`
	URLKey           string `yaml:"url_key"`
	APISuffix        string `yaml:"api_suffix"`
	Timeout          string `yaml:"timeout"`
	Origin           string `yaml:"origin"`
	DetailLimit      int    `yaml:"detail_limit"` // 0 means response text is not truncated
	StrictValidation bool   `yaml:"strict_validation"`
}

func DefaultSettings() Settings {
	return Settings{
		EnvFile:     DefaultEnvFile,
		URLKey:      DefaultURLKey,
		APISuffix:   DefaultAPISuffix,
		Timeout:     DefaultTimeout,
		Origin:      DefaultOrigin,
		DetailLimit: DefaultDetailLimit,
	}
}

// LoadSettings reads a YAML settings file. An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Fields absent from the file keep their default values.
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	d := DefaultSettings()
	if s.EnvFile == "" {
		s.EnvFile = d.EnvFile
	}
	if s.URLKey == "" {
		s.URLKey = d.URLKey
	}
	if s.APISuffix == "" {
		s.APISuffix = d.APISuffix
	}
	if s.Timeout == "" {
		s.Timeout = d.Timeout
	}
	if s.Origin == "" {
		s.Origin = d.Origin
	}
}

func (s Settings) Validate() error {
	timeout, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	if timeout <= 0 {
		return errors.New("timeout must be > 0")
	}
	if s.DetailLimit < 0 {
		return errors.New("detail_limit must be >= 0")
	}
	return nil
}

// RequestTimeout returns the parsed per-request timeout. Settings returned by
// LoadSettings are already validated.
func (s Settings) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}
