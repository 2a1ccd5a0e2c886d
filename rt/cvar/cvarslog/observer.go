package cvarslog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

// Logger returns an observer that logs every change of the observed variable at Info level.
//
// Records carry the attributes name, kind and value (the GetString representation).
// A nil logger means slog.Default().
func Logger(l *slog.Logger, name string) cvar.Observer {
	return cvar.ObserverFunc(func(v *cvar.Var) {
		logger := l
		if logger == nil {
			logger = slog.Default()
		}
		logger.LogAttrs(context.Background(), slog.LevelInfo, "cvar changed",
			slog.String("name", name),
			slog.String("kind", v.Kind().String()),
			slog.String("value", v.GetString()),
		)
	})
}

// PanicHandler returns a cvar.PanicHandler that reports observer panics at Error level.
// A nil logger means slog.Default().
func PanicHandler(l *slog.Logger) cvar.PanicHandler {
	return func(info cvar.PanicInfo) {
		logger := l
		if logger == nil {
			logger = slog.Default()
		}
		logger.LogAttrs(context.Background(), slog.LevelError, "cvar observer panic",
			slog.String("kind", info.Kind.String()),
			slog.String("panic", fmt.Sprint(info.Value)),
			slog.String("stack", string(info.Stack)),
		)
	}
}
