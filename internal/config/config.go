package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the file layout of an addon project.
type Config struct {
	// Descriptor is the addon descriptor file.
	Descriptor string `yaml:"descriptor"`
	// DefaultSource is the script used when the descriptor lists no sources.
	DefaultSource string `yaml:"default_source"`
	// Icon is the optional icon image.
	Icon string `yaml:"icon"`
	// OutputDir receives the generated <name>.xml.
	OutputDir string `yaml:"output_dir"`
	// IconSize is the edge length of the embedded square thumbnail.
	IconSize int `yaml:"icon_size"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the settings file looked up in the working directory.
	DefaultConfigFilename = "addon-builder.yaml"

	// DefaultDescriptor is the default addon descriptor path.
	DefaultDescriptor = "src/addon.json"

	// DefaultSource is the script read when the descriptor has no source list.
	DefaultSource = "src/main.js"

	// DefaultIcon is the default icon image path.
	DefaultIcon = "src/icon.png"

	// DefaultOutputDir is the default output directory.
	DefaultOutputDir = "build"

	// DefaultIconSize is the thumbnail edge in pixels.
	DefaultIconSize = 64

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the mode of the settings file.
	DefaultFilePermissions = 0o644
)

var (
	// ErrInvalidSettings wraps every validation failure.
	ErrInvalidSettings = errors.New("invalid settings")
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
)

// Default returns settings matching the conventional project layout.
func Default() *Config {
	return &Config{
		Descriptor:    DefaultDescriptor,
		DefaultSource: DefaultSource,
		Icon:          DefaultIcon,
		OutputDir:     DefaultOutputDir,
		IconSize:      DefaultIconSize,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads settings from path and validates them.
// Fields absent from the file keep their default values.
// The returned error wraps os.ErrNotExist when the file is missing.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills empty fields with defaults and rejects unusable values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	defaults := Default()

	if cfg.Descriptor == "" {
		cfg.Descriptor = defaults.Descriptor
	}

	if cfg.DefaultSource == "" {
		cfg.DefaultSource = defaults.DefaultSource
	}

	if cfg.Icon == "" {
		cfg.Icon = defaults.Icon
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	if cfg.IconSize == 0 {
		cfg.IconSize = defaults.IconSize
	}

	if cfg.IconSize < 0 {
		return fmt.Errorf("%w: icon_size must be positive, got %d", ErrInvalidSettings, cfg.IconSize)
	}

	if filepath.Base(filepath.Clean(cfg.Descriptor)) == "." {
		return fmt.Errorf("%w: descriptor must name a file", ErrInvalidSettings)
	}

	return nil
}

// Resolve returns path relative to workDir unless it is already absolute.
func Resolve(workDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(workDir, path)
}
