package cvarpubsub

import (
	"errors"
	"fmt"

	"gocloud.dev/pubsub"

	"github.com/evan-idocoding/cvarkit/rt/cvar"
)

// ErrInvalidMessage indicates a message without a valid kind.
var ErrInvalidMessage = errors.New("cvarpubsub: invalid message")

// Decode applies msg to into, using the kind carried in the metadata.
//
// The body is interpreted with the cvar string conversions, so a body that does not parse
// degrades the same way GetInt/GetFloat/GetVector do. into notifies its own observers.
func Decode(msg *pubsub.Message, into *cvar.Var) error {
	if msg == nil || into == nil {
		return fmt.Errorf("%w: nil message or Var", ErrInvalidMessage)
	}
	raw, ok := msg.Metadata[MetadataKind]
	if !ok {
		return fmt.Errorf("%w: missing %q metadata", ErrInvalidMessage, MetadataKind)
	}
	kind, ok := cvar.ParseKind(raw)
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidMessage, raw)
	}

	var text cvar.Var
	text.SetString(string(msg.Body))

	switch kind {
	case cvar.KindInt:
		into.SetInt(text.GetInt())
	case cvar.KindBool:
		into.SetBool(text.GetBool())
	case cvar.KindFloat:
		into.SetFloat(text.GetFloat())
	case cvar.KindDouble:
		into.SetDouble(text.GetDouble())
	case cvar.KindVec2:
		vec := text.GetVector()
		into.SetVec2(vec[0], vec[1])
	case cvar.KindVec3:
		vec := text.GetVector()
		into.SetVec3(vec[0], vec[1], vec[2])
	case cvar.KindVec4:
		vec := text.GetVector()
		into.SetVec4(vec[0], vec[1], vec[2], vec[3])
	default:
		into.SetString(text.GetString())
	}
	return nil
}
