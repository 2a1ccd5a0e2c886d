package cvar

type config struct {
	observers []Observer

	onPanic     PanicHandler
	panicPolicy PanicPolicy

	onConvert func(from, to Kind)
}

// Option configures a Var created by New.
type Option func(*config)

// WithObserver registers o at construction time, as if AddObserver was called right after New.
// The resulting Subscription is not returned; use AddObserver if you need to unsubscribe.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithPanicHandler sets the handler for observer panics.
//
// If not set, panics are reported to stderr (unless the policy is RecoverOnly).
// Panics in the handler itself are contained and reported to stderr.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) { c.onPanic = h }
}

// WithPanicPolicy sets how observer panics are handled. Default is RecoverAndReport.
func WithPanicPolicy(p PanicPolicy) Option {
	return func(c *config) { c.panicPolicy = p }
}

// WithConvertHook sets a hook called every time a Get* call actually computes a conversion
// (that is, on a cache miss). to is the requested representation; GetVector reports KindVec4.
//
// The hook runs synchronously inside the getter and must not access the Var.
func WithConvertHook(fn func(from, to Kind)) Option {
	return func(c *config) { c.onConvert = fn }
}
