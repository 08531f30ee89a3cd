// Package config loads and validates YAML configuration for md2docx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conorwade/go-md2docx/internal/fileutil"
	"github.com/conorwade/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxNameLength           = 100 // Full name
	MaxTitleLength          = 100 // Professional title
	MaxQualificationsLength = 200 // Post-nominals line
	MaxFontNameLength       = 60  // Typeface name
	MaxDateLength           = 40  // "auto:letter" or a literal written date
	MaxCountryLength        = 60  // Default recipient country
	MaxPathLength           = 512 // Template and output paths
	MaxDocTitleLength       = 200 // Document title
)

// Config holds all configuration for letter generation.
type Config struct {
	Brand     BrandConfig     `yaml:"brand"`
	SignOff   SignOffConfig   `yaml:"signoff"`
	Template  TemplateConfig  `yaml:"template"`
	Output    OutputConfig    `yaml:"output"`
	Recipient RecipientConfig `yaml:"recipient"`
	Document  DocumentConfig  `yaml:"document"`
}

// BrandConfig defines the visual identity. Zero values fall back to the
// library defaults (Calibri 11pt, 1.2 line spacing).
type BrandConfig struct {
	Font               string  `yaml:"font"`
	BodySize           int     `yaml:"bodySize"`           // points
	QualificationsSize int     `yaml:"qualificationsSize"` // points
	Heading2Size       int     `yaml:"heading2Size"`       // points
	Heading3Size       int     `yaml:"heading3Size"`       // points
	LineSpacing        float64 `yaml:"lineSpacing"`        // 1.0 = single
}

// SignOffConfig defines the fixed closing identity of every letter.
type SignOffConfig struct {
	Name           string `yaml:"name"`
	Qualifications string `yaml:"qualifications"`
	Title          string `yaml:"title"`
}

// TemplateConfig defines the letterhead source.
type TemplateConfig struct {
	Path string `yaml:"path"` // Default letterhead .docx (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// RecipientConfig defines recipient field defaults.
type RecipientConfig struct {
	DefaultCountry string `yaml:"defaultCountry"` // Used when no country is given
}

// DocumentConfig defines document metadata defaults.
type DocumentConfig struct {
	Date string `yaml:"date"` // "auto", "auto:FORMAT", or a literal date line
}

// DefaultCountry is the stock recipient country.
const DefaultCountry = "Ireland"

// DefaultDate produces the full written date of the generation day.
const DefaultDate = "auto:letter"

// DefaultConfig returns a configuration with the stock defaults and no
// template path.
func DefaultConfig() *Config {
	return &Config{
		Recipient: RecipientConfig{DefaultCountry: DefaultCountry},
		Document:  DocumentConfig{Date: DefaultDate},
	}
}

// Validate checks field lengths. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"brand.font", c.Brand.Font, MaxFontNameLength},
		{"signoff.name", c.SignOff.Name, MaxNameLength},
		{"signoff.qualifications", c.SignOff.Qualifications, MaxQualificationsLength},
		{"signoff.title", c.SignOff.Title, MaxTitleLength},
		{"template.path", c.Template.Path, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"recipient.defaultCountry", c.Recipient.DefaultCountry, MaxCountryLength},
		{"document.date", c.Document.Date, MaxDateLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(name, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s is %d characters (max %d)", ErrFieldTooLong, name, len(value), max)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config
// directory under md2docx/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "md2docx", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
