package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Config file names, in lookup order.
const (
	YAMLFile = ".nxreport.yaml"
	TOMLFile = ".nxreport.toml"
)

// Environment overrides.
const (
	EnvRoot   = "NXREPORT_ROOT"
	EnvFormat = "NXREPORT_FORMAT"
)

// DefaultFormat is used when neither the config file nor the environment sets one.
const DefaultFormat = "text"

// Config is the nxreport configuration.
type Config struct {
	// Root overrides workspace root detection.
	Root string `yaml:"root,omitempty" toml:"root,omitempty"`

	// PackageManager forces npm, yarn or pnpm instead of lockfile detection.
	PackageManager string `yaml:"package-manager,omitempty" toml:"package-manager,omitempty"`

	// Format is the default report format: text or json.
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	// Ignore lists extra packages to skip during plugin detection.
	// Entries wrapped in slashes are regular expressions.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Format: DefaultFormat}
}

// LoadConfigFn is swapped in tests.
var LoadConfigFn = loadConfig

// loadConfig reads the config file from the working directory, applies
// environment overrides and validates the result.
func loadConfig() (*Config, error) {
	cfg, err := loadFile(".")
	if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile looks for .nxreport.yaml then .nxreport.toml in dir.
func loadFile(dir string) (*Config, error) {
	yamlPath := filepath.Join(dir, YAMLFile)
	data, err := os.ReadFile(yamlPath)
	if err == nil {
		return decodeYAML(yamlPath, data)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", yamlPath, err)
	}

	tomlPath := filepath.Join(dir, TOMLFile)
	data, err = os.ReadFile(tomlPath)
	if err == nil {
		return decodeTOML(tomlPath, data)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", tomlPath, err)
	}

	return Default(), nil
}

func decodeYAML(path string, data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

func decodeTOML(path string, data []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ValidateRoot cleans a workspace root and rejects any ".." path segment
// left after cleaning. Names merely containing dots ("a..b") are fine.
func ValidateRoot(path string) (string, error) {
	cleanPath := filepath.Clean(path)
	for _, seg := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if seg == ".." {
			return "", fmt.Errorf("path traversal not allowed in %q, use absolute path instead", path)
		}
	}
	return cleanPath, nil
}

func applyEnv(cfg *Config) error {
	if envRoot := os.Getenv(EnvRoot); envRoot != "" {
		cleanPath, err := ValidateRoot(envRoot)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRoot, err)
		}
		cfg.Root = cleanPath
	}

	if envFormat := os.Getenv(EnvFormat); envFormat != "" {
		cfg.Format = strings.ToLower(strings.TrimSpace(envFormat))
	}

	return nil
}
