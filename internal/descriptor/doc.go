// Package descriptor loads the addon descriptor file.
//
// The JSON document is read token by token rather than into a Go map so
// that key declaration order survives and locale variants are emitted in a
// reproducible order. Numbers keep their literal spelling.
package descriptor
