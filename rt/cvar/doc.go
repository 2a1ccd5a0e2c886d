// Package cvar provides a typed, self-converting configuration variable.
//
// A Var stores exactly one canonical value of one of eight kinds (int, bool, float, double,
// vec2, vec3, vec4, string) and can hand it out in every other representation on demand.
// Conversions are computed lazily and cached until the next write.
//
// It only depends on the Go standard library.
//
// # Design highlights
//
//   - One cell, one canonical kind. Every Set* call switches the kind to the written one and
//     invalidates all cached conversions.
//   - Get* never fails. Text that cannot be parsed converts to 0 (or false), so a live-tunable
//     variable never halts the subsystem that reads it.
//   - Observers are notified synchronously, once per semantic change.
//   - The zero value of Var is ready to use: kind int, value 0, no observers.
//
// # Reads mutate the cache
//
// Get* methods take a pointer receiver because the first read of a representation after a
// write computes and stores it. A Var is therefore NOT safe for concurrent use, not even for
// concurrent reads. Callers that share a Var across goroutines must serialize every access
// (reads included) with their own lock.
//
// # Change semantics
//
// A write notifies observers when the kind changes or when the stored value differs from the
// written one (exact comparison, no epsilon). Writing the same value with the same kind is a
// no-op for observers:
//
//	var v cvar.Var
//	v.SetInt(1)  // notifies
//	v.SetInt(1)  // silent
//	v.SetBool(true) // notifies: kind changed
//
// SetFloat only compares the first float component; SetVec2/SetVec3 zero the unused trailing
// components.
//
// # Conversion rules
//
//   - to int: bool is 1/0, floats truncate toward zero (NaN is 0, out of range saturates),
//     vectors use component 0, strings parse a leading decimal integer.
//   - to bool: numbers are true when > 0, strings are true unless they equal "false"
//     (ASCII case-insensitive). This includes "", "0" and "no": all of them are true.
//   - to float/double: strings parse a leading decimal number. Reading one of the two also
//     caches the other.
//   - to vector: scalars become (x, 0, 0, 0). Strings are scanned as up to four
//     whitespace-separated floats. Scanning stops at the first token that is not a float and
//     the components it did not reach keep their previous content. Reading float or double
//     first pins component 0 to that scalar result (0 when the text has no leading number).
//   - to string: "%.9f" for floats (space separated for vectors), base 10 for int,
//     "TRUE"/"FALSE" for bool.
//
// # Observers
//
// AddObserver returns a Subscription token. Observers are invoked in registration order;
// duplicates are allowed and each registration is invoked. An observer removed during a
// notification pass is not invoked afterwards, so an Unsubscribe before the observer is torn
// down is enough to guarantee it is never called again.
//
// Observer panics are recovered and reported (stderr by default, see WithPanicHandler and
// WithPanicPolicy). Remaining observers still run.
//
// # Re-entrant writes (important)
//
// Observers MUST NOT write to the Var that is notifying them. Doing so is a programming error:
// the nested Set* panics with ErrReentrantWrite before changing anything, and the panic is
// handled like any other observer panic.
package cvar
