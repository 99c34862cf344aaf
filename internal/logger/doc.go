// Package logger wraps zap for the addon builder:
//   - a global sugared logger writing console lines to stdout,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing for the --log-level flag and the settings file,
//   - leveled helpers (DebugKV, InfoKV, Error, ErrorKV).
//
// Pipeline steps take a context and log through it, so every line carries
// the name of the step that produced it.
package logger
