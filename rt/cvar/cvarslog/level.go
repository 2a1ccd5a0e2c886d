package cvarslog

import (
	"log/slog"
	"strings"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

// LevelVar returns a slog.LevelVar that follows v.
//
// String values are level names, case-insensitive, with an optional offset as accepted by
// slog.Level.UnmarshalText (e.g. "debug", "WARN", "info+2"). The aliases "warning" and "err"
// are accepted too. Any other kind is read with GetInt and used as a raw slog.Level.
//
// defaultLevel is used when the current value of v is not a valid level. Later invalid values
// leave the level unchanged.
//
// The returned Subscription stops the binding.
func LevelVar(v *cvar.Var, defaultLevel slog.Level) (*slog.LevelVar, cvar.Subscription) {
	lv := new(slog.LevelVar)
	lv.Set(defaultLevel)
	if v == nil {
		return lv, cvar.Subscription{}
	}
	if l, ok := levelOf(v); ok {
		lv.Set(l)
	}
	sub := v.AddObserver(cvar.ObserverFunc(func(v *cvar.Var) {
		if l, ok := levelOf(v); ok {
			lv.Set(l)
		}
	}))
	return lv, sub
}

func levelOf(v *cvar.Var) (slog.Level, bool) {
	if v.Kind() != cvar.KindString {
		return slog.Level(v.GetInt()), true
	}
	return parseLevel(v.GetString())
}

func parseLevel(s string) (slog.Level, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "warning":
		s = "warn"
	case "err":
		s = "error"
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, false
	}
	return l, true
}
