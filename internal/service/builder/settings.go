package builder

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/addon-builder/internal/config"
	"github.com/oshokin/addon-builder/internal/logger"
)

// ErrSettingsExist is returned by InitSettings when the file is already there.
var ErrSettingsExist = errors.New("settings file already exists")

// InitSettings writes the default settings file into workDir and returns its path.
// An existing file is kept unless overwrite is set.
func InitSettings(ctx context.Context, workDir string, overwrite bool) (string, error) {
	if workDir == "" {
		return "", errWorkDirRequired
	}

	path := config.Resolve(workDir, config.DefaultConfigFilename)

	if _, err := os.Stat(path); err == nil && !overwrite {
		return "", fmt.Errorf("%s: %w", path, ErrSettingsExist)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return "", err
	}

	logger.InfoKV(logger.WithName(ctx, "addon-builder"), "Settings written", "path", path)

	return path, nil
}
