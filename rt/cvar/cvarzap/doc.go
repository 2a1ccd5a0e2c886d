// Package cvarzap binds cvar variables to go.uber.org/zap.
//
// It mirrors package cvarslog for services that log with zap:
//   - AtomicLevel keeps a zap.AtomicLevel in sync with a cvar.Var.
//   - Logger returns an observer that logs every change.
//   - PanicHandler reports observer panics through a zap.Logger.
package cvarzap
