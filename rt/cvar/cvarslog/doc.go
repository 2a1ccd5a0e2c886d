// Package cvarslog provides small helpers to bind cvar variables to log/slog.
//
// It bridges typed variables (package cvar) and slog constructs:
//   - LevelVar keeps a slog.LevelVar in sync with a cvar.Var.
//   - Logger returns an observer that logs every change.
//   - PanicHandler reports observer panics through a slog.Logger.
//
// Note: cvar observers run synchronously inside Set*. Do NOT set a bound variable on
// latency-sensitive hot paths.
package cvarslog
