// Package cvarpubsub broadcasts cvar changes over gocloud.dev/pubsub.
//
// Publisher returns an observer that sends one message per change. Decode applies such a
// message to another Var, which makes it easy to mirror a variable across processes:
//
//	topic := mempubsub.NewTopic() // or any gocloud.dev/pubsub driver
//	v := cvar.New(cvar.WithObserver(cvarpubsub.Publisher(topic, "render.gamma")))
//
//	// elsewhere
//	msg, _ := sub.Receive(ctx)
//	_ = cvarpubsub.Decode(msg, mirror)
//	msg.Ack()
//
// Messages carry the value as text in Body (exact, shortest round-trip formatting for
// floats) and the metadata keys "name" and "kind".
//
// Sending is synchronous inside Set*, bounded by WithTimeout. A Publisher is therefore the one
// observer in this module that may block its writer; keep the timeout short (or pick a driver
// with buffered sends) when writes happen on a latency-sensitive path. Send failures never reach the
// writer: they are reported via WithErrorHandler (or stderr by default).
package cvarpubsub
