package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultIndexURL = "https://pypi.org"
	DefaultTimeout  = 10 * time.Second
	DefaultFormat   = "table"

	envIndexURL = "ONEUP_INDEX_URL"
	envTimeout  = "ONEUP_TIMEOUT"
)

// SupportedFormats lists the report formats a run can emit.
var SupportedFormats = []string{"table", "json", "markdown"} //nolint:gochecknoglobals // read-only list

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the optional configuration for a run.
type Settings struct {
	IndexURL     string        `yaml:"index_url"`
	Timeout      time.Duration `yaml:"timeout"`
	Format       string        `yaml:"format"`
	OnlyOutdated bool          `yaml:"only_outdated"`
	Ignore       []string      `yaml:"ignore"` // package names never reported
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		IndexURL: DefaultIndexURL,
		Timeout:  DefaultTimeout,
		Format:   DefaultFormat,
	}
}

// NewSettings reads and parses a configuration file, expanding environment variables.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.IndexURL = ExpandEnv(settings.IndexURL)
	for i := range settings.Ignore {
		settings.Ignore[i] = NormalizeName(ExpandEnv(settings.Ignore[i]))
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".oneup.yaml",
		".oneup.yml",
		"oneup.yaml",
		"oneup.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ApplyEnvironment loads a .env file if present and applies ONEUP_* overrides.
func (s *Settings) ApplyEnvironment() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Debugf("Failed to load .env file: %v", err)
	}

	if indexURL := os.Getenv(envIndexURL); indexURL != "" {
		s.IndexURL = indexURL
	}
	if rawTimeout := os.Getenv(envTimeout); rawTimeout != "" {
		timeout, err := time.ParseDuration(rawTimeout)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envTimeout, rawTimeout, err)
		}
		s.Timeout = timeout
	}
	return nil
}

// IsIgnored returns true if the dependency name is listed under ignore.
func (s *Settings) IsIgnored(name string) bool {
	return slices.Contains(s.Ignore, NormalizeName(name))
}

// Validate checks the settings for values a run cannot work with.
func (s *Settings) Validate() error {
	parsed, err := url.Parse(s.IndexURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("index_url %q must be an absolute http(s) URL", s.IndexURL)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	if !slices.Contains(SupportedFormats, s.Format) {
		return fmt.Errorf("format %q is not one of %v", s.Format, SupportedFormats)
	}
	return nil
}

// ExpandEnv expands ${ENV_VAR} references, leaving unset variables empty.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
