package cvar

import "fmt"

// Var is a typed, self-converting variable.
//
// The zero value is ready to use and holds the int 0. A Var must not be copied after first use.
//
// Var is not safe for concurrent use (see package doc): Get* methods update the conversion cache.
type Var struct {
	kind Kind
	// valid marks the slots that agree with the canonical value.
	// The canonical slot is always valid, even in the zero value.
	valid slot

	i int
	b bool
	f Vector
	d float64
	s string

	observers []*observerEntry
	notifying bool

	cfg config
}

// New creates a Var holding the int 0.
func New(opts ...Option) *Var {
	v := &Var{valid: slotInt}
	for _, opt := range opts {
		if opt != nil {
			opt(&v.cfg)
		}
	}
	for _, o := range v.cfg.observers {
		v.AddObserver(o)
	}
	v.cfg.observers = nil
	return v
}

// Kind returns the canonical kind.
func (v *Var) Kind() Kind { return v.kind }

func (v *Var) SetInt(x int) {
	v.checkWrite()
	changed := v.kind != KindInt || v.i != x
	v.i = x
	v.store(KindInt, changed)
}

func (v *Var) SetBool(x bool) {
	v.checkWrite()
	changed := v.kind != KindBool || v.b != x
	v.b = x
	v.store(KindBool, changed)
}

// SetFloat stores a scalar float. Only component 0 is compared; components 1..3 are zeroed.
func (v *Var) SetFloat(x float32) {
	v.checkWrite()
	changed := v.kind != KindFloat || v.f[0] != x
	v.f = Vector{x}
	v.store(KindFloat, changed)
}

func (v *Var) SetDouble(x float64) {
	v.checkWrite()
	changed := v.kind != KindDouble || v.d != x
	v.d = x
	v.store(KindDouble, changed)
}

func (v *Var) SetVec2(x, y float32) {
	v.checkWrite()
	changed := v.kind != KindVec2 || v.f[0] != x || v.f[1] != y
	v.f = Vector{x, y}
	v.store(KindVec2, changed)
}

func (v *Var) SetVec3(x, y, z float32) {
	v.checkWrite()
	changed := v.kind != KindVec3 || v.f[0] != x || v.f[1] != y || v.f[2] != z
	v.f = Vector{x, y, z}
	v.store(KindVec3, changed)
}

func (v *Var) SetVec4(x, y, z, w float32) {
	v.checkWrite()
	changed := v.kind != KindVec4 || v.f != Vector{x, y, z, w}
	v.f = Vector{x, y, z, w}
	v.store(KindVec4, changed)
}

func (v *Var) SetString(x string) {
	v.checkWrite()
	changed := v.kind != KindString || v.s != x
	v.s = x
	v.store(KindString, changed)
}

// Set stores a typed Go value, picking the kind from its type.
//
// Supported value types:
//   - int, bool, float32, float64, string
//   - [2]float32 (vec2), [3]float32 (vec3), [4]float32 or Vector (vec4)
//
// Any other type returns ErrTypeMismatch and leaves v unchanged.
func (v *Var) Set(value any) error {
	switch x := value.(type) {
	case int:
		v.SetInt(x)
	case bool:
		v.SetBool(x)
	case float32:
		v.SetFloat(x)
	case float64:
		v.SetDouble(x)
	case string:
		v.SetString(x)
	case [2]float32:
		v.SetVec2(x[0], x[1])
	case [3]float32:
		v.SetVec3(x[0], x[1], x[2])
	case [4]float32:
		v.SetVec4(x[0], x[1], x[2], x[3])
	case Vector:
		v.SetVec4(x[0], x[1], x[2], x[3])
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrTypeMismatch, value)
	}
	return nil
}

func (v *Var) checkWrite() {
	if v.notifying {
		panic(ErrReentrantWrite)
	}
}

// store makes k canonical, drops every cached conversion and notifies if changed.
func (v *Var) store(k Kind, changed bool) {
	v.kind = k
	v.valid = k.slot()
	if changed {
		v.notify()
	}
}

func (v *Var) has(s slot) bool {
	return (v.valid|v.kind.slot())&s != 0
}

func (v *Var) converted(to Kind) {
	if v.cfg.onConvert != nil {
		v.cfg.onConvert(v.kind, to)
	}
}
