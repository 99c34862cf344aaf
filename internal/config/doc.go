// Package config defines the builder settings and provides helpers to load,
// validate and save them in YAML format.
//
// Every path in the settings is relative to the working directory handed to
// the build; Resolve turns it into a filesystem path.
package config
