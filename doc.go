// Package cvarkit is the root of a small kit around typed, self-converting configuration
// variables.
//
// The root package contains no code. The building blocks live in subpackages:
//   - rt/cvar: the variable itself (cvar.Var). It stores one canonical value (int, bool, float,
//     double, vec2/3/4 or string), converts it lazily to every other representation, and
//     notifies observers synchronously on change.
//   - rt/cvar/cvarslog: log/slog bindings (slog.LevelVar binding, change logger, panic handler).
//   - rt/cvar/cvarzap: the same bindings for go.uber.org/zap.
//   - rt/cvar/cvarotel: OpenTelemetry change counter and value gauge.
//   - rt/cvar/cvarpubsub: broadcast changes over gocloud.dev/pubsub and mirror them into
//     another Var.
//
// # Quick start
//
//	gamma := cvar.New()
//	gamma.SetString("2.2")
//
//	gamma.AddObserver(cvar.ObserverFunc(func(v *cvar.Var) {
//		renderer.SetGamma(v.GetFloat())
//	}))
//
//	gamma.SetDouble(1.8) // observer runs here, before SetDouble returns
//
// A Var is not safe for concurrent use; reads update its conversion cache. Serialize access
// with your own lock when a Var is shared across goroutines.
//
// Not in scope: a name → variable registry, persistence of variable sets, and console command
// parsing. Those are expected to be built on top of cvar.Var by the embedding application.
package cvarkit
