package cvar

import (
	"math"
	"strconv"
)

// isSpace matches the C locale white-space set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// parseLeadingInt parses an optionally signed base-10 integer at the start of s, after
// leading white space. Trailing garbage is ignored. No digits yields 0; overflow saturates.
func parseLeadingInt(s string) int {
	start := skipSpace(s, 0)
	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digits {
		return 0
	}
	// On ErrRange ParseInt returns the saturated value.
	n, _ := strconv.ParseInt(s[start:i], 10, 0)
	return int(n)
}

// parseLeadingFloat parses a decimal number at the start of s, after leading white space.
// Trailing garbage is ignored and no number yields 0.
func parseLeadingFloat(s string) float64 {
	x, _ := scanFloat(s[skipSpace(s, 0):])
	return x
}

// scanFloat parses the longest decimal number prefix of s (no leading white space allowed).
//
// Accepted: [sign] (digits [. digits] | . digits) [(e|E) [sign] digits], and the words
// inf, infinity and nan (case-insensitive). It returns the value and the number of bytes
// consumed; n == 0 means no number.
func scanFloat(s string) (x float64, n int) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	if w := matchWord(s[i:], "infinity"); w > 0 {
		return math.Inf(sign(neg)), i + w
	}
	if w := matchWord(s[i:], "inf"); w > 0 {
		return math.Inf(sign(neg)), i + w
	}
	if w := matchWord(s[i:], "nan"); w > 0 {
		return math.NaN(), i + w
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	// On ErrRange ParseFloat returns ±Inf or the nearest denormal/zero, which is what we want.
	x, _ = strconv.ParseFloat(s[:i], 64)
	return x, i
}

func sign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// matchWord returns len(word) if s starts with word (ASCII case-insensitive), else 0.
func matchWord(s, word string) int {
	if len(s) < len(word) || !equalFoldASCII(s[:len(word)], word) {
		return 0
	}
	return len(word)
}

// scanVector reads up to four white-space separated floats from s into a copy of prev.
//
// Scanning stops at the first token that is not a number; the components it did not reach keep
// their value from prev.
func scanVector(s string, prev Vector) Vector {
	out := prev
	pos := 0
	for i := range out {
		pos = skipSpace(s, pos)
		x, n := scanFloat(s[pos:])
		if n == 0 {
			break
		}
		out[i] = float32(x)
		pos += n
	}
	return out
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// truncate converts x to int toward zero. NaN is 0; values out of range saturate.
func truncate(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= float64(math.MaxInt):
		return math.MaxInt
	case x <= float64(math.MinInt):
		return math.MinInt
	default:
		return int(x)
	}
}

// formatFixed formats x with nine fractional digits. Non-finite values are spelled the way
// C's %f does: inf, -inf, nan.
func formatFixed(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(x, 'f', 9, 64)
	}
}
