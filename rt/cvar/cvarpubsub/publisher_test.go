package cvarpubsub

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

func newTopic(t *testing.T) (*pubsub.Topic, *pubsub.Subscription) {
	t.Helper()
	topic := mempubsub.NewTopic()
	sub := mempubsub.NewSubscription(topic, time.Minute)
	t.Cleanup(func() {
		ctx := context.Background()
		_ = sub.Shutdown(ctx)
		_ = topic.Shutdown(ctx)
	})
	return topic, sub
}

func receive(t *testing.T, sub *pubsub.Subscription) *pubsub.Message {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg, err := sub.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()
	return msg
}

func TestPublisherMessage(t *testing.T) {
	topic, sub := newTopic(t)
	v := cvar.New(cvar.WithObserver(Publisher(topic, "render.gamma")))

	v.SetDouble(0.1)
	msg := receive(t, sub)

	require.Equal(t, "0.1", string(msg.Body))
	want := map[string]string{MetadataName: "render.gamma", MetadataKind: "double"}
	if diff := cmp.Diff(want, msg.Metadata); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestMirror(t *testing.T) {
	cases := []struct {
		name string
		set  func(v *cvar.Var)
	}{
		{"int", func(v *cvar.Var) { v.SetInt(-7) }},
		{"bool", func(v *cvar.Var) { v.SetBool(true) }},
		{"float", func(v *cvar.Var) { v.SetFloat(0.1) }},
		{"double", func(v *cvar.Var) { v.SetDouble(1.0 / 3) }},
		{"vec2", func(v *cvar.Var) { v.SetVec2(1e-10, 2) }},
		{"vec3", func(v *cvar.Var) { v.SetVec3(1, 2.5, -3) }},
		{"vec4", func(v *cvar.Var) { v.SetVec4(0.25, 0.5, 0.75, 1) }},
		{"string", func(v *cvar.Var) { v.SetString("hello world") }},
		{"inf", func(v *cvar.Var) { v.SetDouble(math.Inf(-1)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topic, sub := newTopic(t)
			src := cvar.New(cvar.WithObserver(Publisher(topic, tc.name)))
			tc.set(src)

			mirror := cvar.New()
			require.NoError(t, Decode(receive(t, sub), mirror))

			require.Equal(t, src.Kind(), mirror.Kind())
			require.Equal(t, src.GetString(), mirror.GetString())
			require.Equal(t, src.GetDouble(), mirror.GetDouble())
			require.Equal(t, src.GetVector(), mirror.GetVector())
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	v := cvar.New()

	err := Decode(&pubsub.Message{Body: []byte("1")}, v)
	require.True(t, errors.Is(err, ErrInvalidMessage), "got %v", err)

	err = Decode(&pubsub.Message{Body: []byte("1"), Metadata: map[string]string{MetadataKind: "matrix"}}, v)
	require.True(t, errors.Is(err, ErrInvalidMessage), "got %v", err)

	require.Error(t, Decode(nil, v))
	require.Equal(t, cvar.KindInt, v.Kind())
}

func TestDecodeNotifiesMirrorObservers(t *testing.T) {
	mirror := cvar.New()
	n := 0
	mirror.AddObserver(cvar.ObserverFunc(func(*cvar.Var) { n++ }))

	msg := &pubsub.Message{Body: []byte("42"), Metadata: map[string]string{MetadataKind: "int"}}
	require.NoError(t, Decode(msg, mirror))
	require.NoError(t, Decode(msg, mirror))
	require.Equal(t, 1, n)
	require.Equal(t, 42, mirror.GetInt())
}

func TestPublisherSendFailure(t *testing.T) {
	topic := mempubsub.NewTopic()
	require.NoError(t, topic.Shutdown(context.Background()))

	var failures []string
	v := cvar.New(cvar.WithObserver(Publisher(topic, "x",
		WithTimeout(time.Second),
		WithErrorHandler(func(name string, err error) {
			require.Error(t, err)
			failures = append(failures, name)
		}),
	)))

	require.NotPanics(t, func() { v.SetInt(1) })
	require.Equal(t, []string{"x"}, failures)
	require.Equal(t, 1, v.GetInt())
}

func TestPublisherDefaults(t *testing.T) {
	cfg := newConfig(nil)
	require.Equal(t, time.Second, cfg.timeout)
	require.NotNil(t, cfg.ctx)
	require.NotNil(t, cfg.onError)

	cfg = newConfig([]Option{nil, WithContext(nil), WithTimeout(0)})
	require.Equal(t, context.Background(), cfg.ctx)
	require.Zero(t, cfg.timeout)
}

func TestEncode(t *testing.T) {
	v := cvar.New()
	v.SetVec3(1, 0.5, -2)
	require.Equal(t, "1 0.5 -2", Encode(v))
	v.SetBool(false)
	require.Equal(t, "FALSE", Encode(v))
	v.SetInt(12)
	require.Equal(t, "12", Encode(v))
}
