package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oshokin/addon-builder/internal/config"
	"github.com/oshokin/addon-builder/internal/definition"
	"github.com/oshokin/addon-builder/internal/descriptor"
	"github.com/oshokin/addon-builder/internal/domain/addon"
	"github.com/oshokin/addon-builder/internal/icon"
	"github.com/oshokin/addon-builder/internal/logger"
	"github.com/oshokin/addon-builder/internal/script"
)

// Options contains inputs for the build entry point.
type Options struct {
	// WorkDir is the addon project root. Every relative path is resolved against it.
	WorkDir string
	// ConfigPath is an optional settings file. When empty, addon-builder.yaml in
	// WorkDir is used if it exists.
	ConfigPath string
	// OutputDir overrides the output directory from the settings.
	OutputDir string
	// LogLevel overrides the log level from the settings.
	LogLevel string
	// Now supplies the date for last-modified. Defaults to time.Now.
	Now func() time.Time
}

// Report describes a finished build.
type Report struct {
	// OutputPath is the absolute path of the written definition.
	OutputPath string
	// IconEmbedded is true when the definition carries an icon.
	IconEmbedded bool
}

const (
	// DefaultDirMode is the mode of a created output directory.
	DefaultDirMode os.FileMode = 0o755
	// DefaultFileMode is the mode of the written definition.
	DefaultFileMode os.FileMode = 0o644
)

var errWorkDirRequired = errors.New("working directory must be provided")

// Run executes the build workflow.
func Run(ctx context.Context, opts *Options) (*Report, error) {
	ctx = logger.WithName(ctx, "addon-builder")

	b, err := newBuilder(opts)
	if err != nil {
		return nil, fmt.Errorf("initialize builder: %w", err)
	}

	report, err := b.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}

	logger.InfoKV(ctx, "Build completed successfully", "path", report.OutputPath)

	return report, nil
}

// builder holds the resolved inputs of one build.
type builder struct {
	workDir string
	cfg     *config.Config
	now     func() time.Time
}

func newBuilder(opts *Options) (*builder, error) {
	if opts == nil || opts.WorkDir == "" {
		return nil, errWorkDirRequired
	}

	workDir, err := filepath.Abs(opts.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	info, err := os.Stat(workDir)
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("working directory %s is not a directory", workDir)
	}

	cfg, err := loadSettings(workDir, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err = logger.SetLevelName(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidSettings, err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &builder{
		workDir: workDir,
		cfg:     cfg,
		now:     now,
	}, nil
}

// loadSettings reads the settings file. Only the implicit default file may be absent.
func loadSettings(workDir, path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigFilename
	}

	cfg, err := config.Load(config.Resolve(workDir, path))

	switch {
	case err == nil:
		return cfg, nil
	case !explicit && errors.Is(err, os.ErrNotExist):
		return config.Default(), nil
	default:
		return nil, fmt.Errorf("load settings: %w", err)
	}
}

// Run performs the steps in order and writes the definition.
func (b *builder) Run(ctx context.Context) (*Report, error) {
	descriptorPath := config.Resolve(b.workDir, b.cfg.Descriptor)

	record, err := descriptor.Load(ctx, descriptorPath)
	if err != nil {
		return nil, err
	}

	desc, err := addon.NewDescriptor(record, b.cfg.DefaultSource)
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", descriptorPath, err)
	}

	ctx = logger.WithKV(ctx, "addon", desc.Name)
	logger.InfoKV(ctx, "Building service task definition",
		"engine_type", desc.EngineType, "sources", len(desc.Sources))

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	body, err := script.Concatenate(ctx, b.workDir, desc.Sources)
	if err != nil {
		return nil, err
	}

	doc := definition.Assemble(desc, body, b.now)
	report := &Report{}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	report.IconEmbedded = b.attachIcon(ctx, doc)

	contents, err := definition.Render(doc)
	if err != nil {
		return nil, err
	}

	if report.OutputPath, err = b.write(desc.Filename(), contents); err != nil {
		return nil, err
	}

	return report, nil
}

// attachIcon embeds the icon when it exists. Processing failures are logged
// and never fail the build.
func (b *builder) attachIcon(ctx context.Context, doc *definition.Document) bool {
	iconPath := config.Resolve(b.workDir, b.cfg.Icon)

	result := icon.Load(iconPath, b.cfg.IconSize)

	switch {
	case result.Ok():
		doc.AttachIcon(result.Encoded)
		logger.DebugKV(ctx, "Icon embedded", "path", iconPath, "size", b.cfg.IconSize)

		return true
	case result.Skipped:
		return false
	default:
		logger.ErrorKV(ctx, "Icon processing failed, continuing without icon",
			"path", iconPath, "error", result.Err)

		return false
	}
}

// write creates the output directory if needed and writes the definition in one call.
func (b *builder) write(filename string, contents []byte) (string, error) {
	outputDir := config.Resolve(b.workDir, b.cfg.OutputDir)

	if err := os.MkdirAll(outputDir, DefaultDirMode); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	target := filepath.Join(outputDir, filename)

	if err := os.WriteFile(target, contents, DefaultFileMode); err != nil {
		return "", fmt.Errorf("write definition: %w", err)
	}

	return target, nil
}
