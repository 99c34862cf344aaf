// Package script joins the addon script sources into the single body
// embedded in the definition.
package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/addon-builder/internal/logger"
)

// separator is placed between fragments and around the whole body.
const separator = "\n"

// Concatenate reads every path relative to workDir, in order, and joins the
// contents with a newline. The result starts and ends with a newline.
// Any unreadable file fails the whole call.
func Concatenate(ctx context.Context, workDir string, paths []string) (string, error) {
	fragments := make([]string, 0, len(paths))

	for _, path := range paths {
		contents, err := os.ReadFile(filepath.Join(workDir, path))
		if err != nil {
			return "", fmt.Errorf("read script source %s: %w", path, err)
		}

		logger.DebugKV(ctx, "Script source read", "path", path, "bytes", len(contents))

		fragments = append(fragments, string(contents))
	}

	return separator + strings.Join(fragments, separator) + separator, nil
}
