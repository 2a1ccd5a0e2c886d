package cvar

import "strings"

// Kind identifies the canonical representation held by a Var.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindFloat
	KindDouble
	KindVec2
	KindVec3
	KindVec4
	KindString
)

var kindNames = [...]string{
	KindInt:    "int",
	KindBool:   "bool",
	KindFloat:  "float",
	KindDouble: "double",
	KindVec2:   "vec2",
	KindVec3:   "vec3",
	KindVec4:   "vec4",
	KindString: "string",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsVector reports whether k is stored in the float components (float, vec2, vec3, vec4).
func (k Kind) IsVector() bool {
	switch k {
	case KindFloat, KindVec2, KindVec3, KindVec4:
		return true
	default:
		return false
	}
}

// Components returns the number of float components used by k (0 for non-float kinds).
func (k Kind) Components() int {
	switch k {
	case KindFloat:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	default:
		return 0
	}
}

// ParseKind is the inverse of Kind.String. Matching is case-insensitive.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Vector holds the four float components of a Var.
// Components not used by the current kind are zero.
type Vector [4]float32

// slot is a validity bit for one storage slot.
type slot uint8

const (
	slotInt slot = 1 << iota
	slotBool
	slotFloat // float and vector components
	slotDouble
	slotString
)

func (k Kind) slot() slot {
	switch k {
	case KindInt:
		return slotInt
	case KindBool:
		return slotBool
	case KindDouble:
		return slotDouble
	case KindString:
		return slotString
	default:
		return slotFloat
	}
}
