package cvarotel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

const instrumentationName = "github.com/evan-idocoding/cvarkit/rt/cvar"

const (
	// attrName is the attribute key carrying the name given to Instrument.
	attrName = attribute.Key("cvar.name")
	// attrKind is the attribute key carrying the canonical kind after the change.
	attrKind = attribute.Key("cvar.kind")
)

type config struct {
	provider metric.MeterProvider
	attrs    []attribute.KeyValue
}

// Option configures Instrument.
type Option func(*config)

// WithMeterProvider sets the meter provider. Default is otel.GetMeterProvider().
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) { c.provider = mp }
}

// WithAttributes appends attributes to every measurement.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// Instrument registers a metrics observer on v. The returned Subscription removes it.
func Instrument(v *cvar.Var, name string, opts ...Option) (cvar.Subscription, error) {
	if v == nil {
		return cvar.Subscription{}, fmt.Errorf("cvarotel: nil Var")
	}
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.provider == nil {
		cfg.provider = otel.GetMeterProvider()
	}
	meter := cfg.provider.Meter(instrumentationName)

	changes, err := meter.Int64Counter(
		"cvar.changes",
		metric.WithDescription("The number of semantic changes of a cvar (writes that notified observers)."),
	)
	if err != nil {
		return cvar.Subscription{}, fmt.Errorf("cvarotel: init 'cvar.changes' instrument: %w", err)
	}
	value, err := meter.Float64Gauge(
		"cvar.value",
		metric.WithDescription("The value of a cvar after its last change, read as a double."),
	)
	if err != nil {
		return cvar.Subscription{}, fmt.Errorf("cvarotel: init 'cvar.value' instrument: %w", err)
	}

	base := append([]attribute.KeyValue{attrName.String(name)}, cfg.attrs...)
	return v.AddObserver(cvar.ObserverFunc(func(v *cvar.Var) {
		attrs := make([]attribute.KeyValue, 0, len(base)+1)
		attrs = append(attrs, base...)
		attrs = append(attrs, attrKind.String(v.Kind().String()))
		set := metric.WithAttributeSet(attribute.NewSet(attrs...))

		ctx := context.Background()
		changes.Add(ctx, 1, set)
		value.Record(ctx, v.GetDouble(), set)
	})), nil
}
