package clamped

import "golang.org/x/exp/constraints"

// Number represents any numeric type (integers and floats).
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp constrains a value to the closed interval [lo, hi].
// If v is less than lo, returns lo. If v is greater than hi, returns hi.
// Otherwise returns v unchanged.
func Clamp[T constraints.Ordered](lo, hi, v T) T {
	return min(hi, max(lo, v))
}

// ClampMin constrains a value to be at least lo.
func ClampMin[T constraints.Ordered](lo, v T) T {
	return max(lo, v)
}

// ClampMax constrains a value to be at most hi.
func ClampMax[T constraints.Ordered](hi, v T) T {
	return min(hi, v)
}

// InRange reports whether v lies within [lo, hi] (inclusive).
func InRange[T constraints.Ordered](lo, hi, v T) bool {
	return v >= lo && v <= hi
}

// isFloat reports whether T is a floating point type.
func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// isSigned reports whether T can represent negative values.
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// satAdd returns a+b, substituting the nearest bound when the raw sum
// wraps around the integer range. Float sums never wrap; ±Inf falls
// through to the ordinary clamp.
func satAdd[T Number](a, b, lo, hi T) T {
	c := a + b
	switch {
	case b > 0 && c < a:
		return hi
	case b < 0 && c > a:
		return lo
	}
	return c
}

// satSub returns a-b, substituting the nearest bound on wraparound.
// Unsigned underflow shows up as c > a and saturates to lo.
func satSub[T Number](a, b, lo, hi T) T {
	c := a - b
	switch {
	case b > 0 && c > a:
		return lo
	case b < 0 && c < a:
		return hi
	}
	return c
}

// satMul returns a*b, substituting the bound matching the sign of the
// true product when the raw product wraps. Float products are returned
// as-is: finite overflow becomes ±Inf, which the ordinary clamp handles.
func satMul[T Number](a, b, lo, hi T) T {
	p := a * b
	if isFloat[T]() || a == 0 || b == 0 {
		return p
	}

	var negOne T
	negOne--

	overflow := false
	if isSigned[T]() && b == negOne {
		// Negating a wraps back to a only at the very bottom of a
		// two's complement range. Checked separately because p/b
		// would itself trap on that input.
		overflow = p == a
	} else if p/b != a {
		overflow = true
	}
	if !overflow {
		return p
	}

	if (a > 0) == (b > 0) {
		return hi
	}
	return lo
}

// satDiv returns a/b. The only integer quotient that can overflow is
// negating the bottom of a two's complement range, which saturates to
// hi. Integer division by zero panics like the bare operator.
func satDiv[T Number](a, b, lo, hi T) T {
	if !isFloat[T]() && isSigned[T]() {
		var negOne T
		negOne--
		if b == negOne && a != 0 && -a == a {
			return hi
		}
	}
	return a / b
}
