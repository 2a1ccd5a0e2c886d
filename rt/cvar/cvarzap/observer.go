package cvarzap

import (
	"go.uber.org/zap"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

// Logger returns an observer that logs every change at Info level with the fields
// name, kind and value. A nil logger means zap.L().
func Logger(l *zap.Logger, name string) cvar.Observer {
	return cvar.ObserverFunc(func(v *cvar.Var) {
		logger := l
		if logger == nil {
			logger = zap.L()
		}
		logger.Info("cvar changed",
			zap.String("name", name),
			zap.Stringer("kind", v.Kind()),
			zap.String("value", v.GetString()),
		)
	})
}

// PanicHandler returns a cvar.PanicHandler that reports observer panics at Error level.
// A nil logger means zap.L().
func PanicHandler(l *zap.Logger) cvar.PanicHandler {
	return func(info cvar.PanicInfo) {
		logger := l
		if logger == nil {
			logger = zap.L()
		}
		logger.Error("cvar observer panic",
			zap.Stringer("kind", info.Kind),
			zap.Any("panic", info.Value),
			zap.ByteString("stack", info.Stack),
		)
	}
}
