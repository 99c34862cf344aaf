// Package version exposes build metadata for addon-builder.
//
// Version, Commit and BuildTime are injected at build time via
// -ldflags "-X github.com/oshokin/addon-builder/internal/version.Version=...".
package version
