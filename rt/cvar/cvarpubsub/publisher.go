package cvarpubsub

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gocloud.dev/pubsub"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

const (
	// MetadataName is the message metadata key carrying the variable name.
	MetadataName = "name"
	// MetadataKind is the message metadata key carrying the canonical kind.
	MetadataKind = "kind"
)

// defaultTimeout keeps a slow broker from stalling the writer for long.
const defaultTimeout = time.Second

type config struct {
	ctx     context.Context
	timeout time.Duration
	onError func(name string, err error)
}

// Option configures a Publisher.
type Option func(*config)

// WithContext sets the parent context of every send. Default is context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithTimeout bounds every send. Default is 1s; d <= 0 disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithErrorHandler sets the handler for send failures. If not set, failures are reported to stderr.
func WithErrorHandler(fn func(name string, err error)) Option {
	return func(c *config) { c.onError = fn }
}

func newConfig(opts []Option) config {
	cfg := config{ctx: context.Background(), timeout: defaultTimeout}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}
	if cfg.onError == nil {
		cfg.onError = reportErrorToStderr
	}
	return cfg
}

// Publisher returns an observer that sends every change of the observed Var to topic.
func Publisher(topic *pubsub.Topic, name string, opts ...Option) cvar.Observer {
	cfg := newConfig(opts)

	return cvar.ObserverFunc(func(v *cvar.Var) {
		msg := &pubsub.Message{
			Body: []byte(Encode(v)),
			Metadata: map[string]string{
				MetadataName: name,
				MetadataKind: v.Kind().String(),
			},
		}

		ctx := cfg.ctx
		if cfg.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
			defer cancel()
		}
		if err := topic.Send(ctx, msg); err != nil {
			cfg.onError(name, err)
		}
	})
}

// Encode returns the text form of the canonical value of v as sent by Publisher.
//
// Unlike GetString, floats use the shortest representation that round-trips exactly.
func Encode(v *cvar.Var) string {
	switch k := v.Kind(); k {
	case cvar.KindDouble:
		return strconv.FormatFloat(v.GetDouble(), 'g', -1, 64)
	case cvar.KindFloat, cvar.KindVec2, cvar.KindVec3, cvar.KindVec4:
		vec := v.GetVector()
		parts := make([]string, k.Components())
		for i := range parts {
			parts[i] = strconv.FormatFloat(float64(vec[i]), 'g', -1, 32)
		}
		return strings.Join(parts, " ")
	default:
		return v.GetString()
	}
}

func reportErrorToStderr(name string, err error) {
	fmt.Fprintf(os.Stderr, "cvarpubsub: send failed name=%q err=%v\n", name, err)
}
