package sqlindent

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/takeokunn/sqlindent/formatter"
)

// Config represents the sqlindent configuration file (sqlindent.yaml)
type Config struct {
	// Style selects the layout style: basic, compact, aligned or dataops
	Style string `yaml:"style"`

	// Uppercase controls keyword casing. Pointer to distinguish between
	// unset and false; nil means the default (uppercase)
	Uppercase *bool `yaml:"uppercase"`
}

var validStyles = map[string]bool{
	"":        true,
	"basic":   true,
	"compact": true,
	"aligned": true,
	"dataops": true,
}

// LoadConfig loads configuration from the specified file. A missing file
// yields the default configuration rather than an error.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if !validStyles[config.Style] {
		return fmt.Errorf("%w: %w: '%s' (must be one of basic, compact, aligned, dataops)", ErrConfigValidation, ErrInvalidStyleName, config.Style)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Style: "basic",
	}
}

// Options converts the configuration into formatter options
func (c *Config) Options() formatter.Options {
	opts := formatter.DefaultOptions()
	if c.Style != "" {
		opts.Style = formatter.StyleFromName(c.Style)
	}
	if c.Uppercase != nil {
		opts.Uppercase = *c.Uppercase
	}

	return opts
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in config values
func expandConfigEnvVars(config *Config) {
	config.Style = expandEnvVars(config.Style)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
