package cvar

import (
	"strconv"
	"strings"
)

// GetInt returns the value as an int, converting and caching it on first use after a write.
func (v *Var) GetInt() int {
	if v.has(slotInt) {
		return v.i
	}
	v.i = v.toInt()
	v.valid |= slotInt
	v.converted(KindInt)
	return v.i
}

// GetBool returns the value as a bool, converting and caching it on first use after a write.
func (v *Var) GetBool() bool {
	if v.has(slotBool) {
		return v.b
	}
	v.b = v.toBool()
	v.valid |= slotBool
	v.converted(KindBool)
	return v.b
}

// GetFloat returns the value as a float32. A conversion also caches the double representation.
func (v *Var) GetFloat() float32 {
	if v.has(slotFloat) {
		return v.f[0]
	}
	x := v.toFloat()
	v.converted(KindFloat)
	if !v.has(slotDouble) {
		v.d = float64(x)
		v.valid |= slotDouble
	}
	v.cacheFloat(x)
	return x
}

// GetDouble returns the value as a float64. A conversion also caches the float representation.
func (v *Var) GetDouble() float64 {
	if v.has(slotDouble) {
		return v.d
	}
	x := v.toDouble()
	v.converted(KindDouble)
	v.d = x
	v.valid |= slotDouble
	if !v.has(slotFloat) {
		v.cacheFloat(float32(x))
	}
	return x
}

// GetVector returns all four float components.
//
// For scalar kinds the result is (x, 0, 0, 0). For strings see the package doc: components the
// scan does not reach keep their previous content, except that a GetFloat or GetDouble made
// first pins component 0 to the scalar conversion (0 when the text has no leading number).
func (v *Var) GetVector() Vector {
	if v.has(slotFloat) {
		return v.f
	}
	v.f = v.toVector()
	v.valid |= slotFloat
	v.converted(KindVec4)
	return v.f
}

// GetString returns the value as text, converting and caching it on first use after a write.
func (v *Var) GetString() string {
	if v.has(slotString) {
		return v.s
	}
	v.s = v.toString()
	v.valid |= slotString
	v.converted(KindString)
	return v.s
}

// String implements fmt.Stringer. It is GetString.
func (v *Var) String() string { return v.GetString() }

// cacheFloat fills the float slot from a non-float canonical value. Component 0 is x; components
// 1..3 follow the vector conversion.
func (v *Var) cacheFloat(x float32) {
	vec := v.toVector()
	vec[0] = x
	v.f = vec
	v.valid |= slotFloat
}

func (v *Var) toInt() int {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindDouble:
		return truncate(v.d)
	case KindFloat, KindVec2, KindVec3, KindVec4:
		return truncate(float64(v.f[0]))
	case KindString:
		return parseLeadingInt(v.s)
	default:
		return v.i
	}
}

func (v *Var) toBool() bool {
	switch v.kind {
	case KindInt:
		return v.i > 0
	case KindDouble:
		return v.d > 0
	case KindFloat, KindVec2, KindVec3, KindVec4:
		return v.f[0] > 0
	case KindString:
		return !equalFoldASCII(v.s, "false")
	default:
		return v.b
	}
}

func (v *Var) toFloat() float32 {
	switch v.kind {
	case KindInt:
		return float32(v.i)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindDouble:
		return float32(v.d)
	case KindString:
		return float32(parseLeadingFloat(v.s))
	default:
		return v.f[0]
	}
}

func (v *Var) toDouble() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindFloat, KindVec2, KindVec3, KindVec4:
		return float64(v.f[0])
	case KindString:
		return parseLeadingFloat(v.s)
	default:
		return v.d
	}
}

func (v *Var) toVector() Vector {
	switch v.kind {
	case KindInt, KindBool, KindDouble:
		return Vector{v.toFloat()}
	case KindString:
		return scanVector(v.s, v.f)
	default:
		return v.f
	}
}

func (v *Var) toString() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindDouble:
		return formatFixed(v.d)
	case KindFloat, KindVec2, KindVec3, KindVec4:
		n := v.kind.Components()
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = formatFixed(float64(v.f[i]))
		}
		return strings.Join(parts, " ")
	default:
		return v.s
	}
}
