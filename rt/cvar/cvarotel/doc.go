// Package cvarotel records cvar changes as OpenTelemetry metrics.
//
// Instrument registers an observer on a Var that, on every change:
//   - increments the counter "cvar.changes";
//   - records the new value (GetDouble) on the gauge "cvar.value".
//
// Both measurements carry the attributes cvar.name and cvar.kind, plus any attributes passed
// with WithAttributes.
package cvarotel
