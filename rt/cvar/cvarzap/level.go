package cvarzap

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

// AtomicLevel returns a zap.AtomicLevel that follows v.
//
// String values are zap level names, case-insensitive ("debug", "info", "warn", "error",
// "dpanic", "panic", "fatal"); "warning" and "err" are accepted as aliases. Any other kind is
// read with GetInt and clamped to [zapcore.DebugLevel, zapcore.FatalLevel].
//
// defaultLevel is used when the current value of v is not a valid level. Later invalid values
// leave the level unchanged.
func AtomicLevel(v *cvar.Var, defaultLevel zapcore.Level) (zap.AtomicLevel, cvar.Subscription) {
	al := zap.NewAtomicLevelAt(defaultLevel)
	if v == nil {
		return al, cvar.Subscription{}
	}
	if l, ok := levelOf(v); ok {
		al.SetLevel(l)
	}
	sub := v.AddObserver(cvar.ObserverFunc(func(v *cvar.Var) {
		if l, ok := levelOf(v); ok {
			al.SetLevel(l)
		}
	}))
	return al, sub
}

func levelOf(v *cvar.Var) (zapcore.Level, bool) {
	if v.Kind() != cvar.KindString {
		n := v.GetInt()
		switch {
		case n < int(zapcore.DebugLevel):
			return zapcore.DebugLevel, true
		case n > int(zapcore.FatalLevel):
			return zapcore.FatalLevel, true
		default:
			return zapcore.Level(n), true
		}
	}
	s := strings.ToLower(strings.TrimSpace(v.GetString()))
	if s == "" {
		// zapcore reads "" as info.
		return 0, false
	}
	switch s {
	case "warning":
		s = "warn"
	case "err":
		s = "error"
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, false
	}
	return l, true
}
