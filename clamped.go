// Package clamped provides a numeric value that is kept between a fixed
// minimum and maximum. Arithmetic on the value saturates at those bounds
// instead of overflowing, wrapping, or escaping the range.
package clamped

import "fmt"

// Value holds a number of type T together with an inclusive range
// [min, max] that the number can never leave. Every mutation clamps its
// result, so out-of-range input is a normal case, not an error.
//
// For floating point instantiations, results of ±Inf land on the nearest
// bound and NaN results are discarded, leaving the value unchanged.
// Integer division by zero panics, exactly as the bare operator does.
//
// Value is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
type Value[T Number] struct {
	value T
	min   T
	max   T
}

// New builds a Value constrained to [min, max]. A starting value outside
// the range is clamped to the nearest bound, consistent with Set, so
// construction never fails on out-of-range input. A NaN starting value
// is treated as below the range.
//
// Panics if min > max or either bound is NaN.
func New[T Number](min, value, max T) *Value[T] {
	if min != min || max != max {
		panic("clamped: bound is NaN")
	}
	if min > max {
		panic("clamped: min is greater than max")
	}

	v := &Value[T]{min: min, max: max, value: min}
	v.store(value)
	return v
}

// Value returns the current value.
func (v *Value[T]) Value() T {
	return v.value
}

// Min returns the lower bound.
func (v *Value[T]) Min() T {
	return v.min
}

// Max returns the upper bound.
func (v *Value[T]) Max() T {
	return v.max
}

// Set replaces the current value, clamping it to the nearest bound when
// it falls outside the range.
func (v *Value[T]) Set(value T) {
	v.store(value)
}

// SetMin moves the lower bound. If the current value falls below the new
// bound, it is raised to it.
//
// Panics if m is greater than the upper bound, or is NaN.
func (v *Value[T]) SetMin(m T) {
	if m != m {
		panic("clamped: bound is NaN")
	}
	if m > v.max {
		panic("clamped: min is greater than max")
	}

	v.min = m
	v.store(v.value)
}

// SetMax moves the upper bound. If the current value exceeds the new
// bound, it is lowered to it.
//
// Panics if m is smaller than the lower bound, or is NaN.
func (v *Value[T]) SetMax(m T) {
	if m != m {
		panic("clamped: bound is NaN")
	}
	if m < v.min {
		panic("clamped: max is smaller than min")
	}

	v.max = m
	v.store(v.value)
}

// InRange reports whether x would survive Set unchanged.
func (v *Value[T]) InRange(x T) bool {
	return InRange(v.min, v.max, x)
}

// Add adds rhs to the value, saturating at the bounds. The raw sum is
// guarded against integer wraparound, so an oversized rhs lands on a
// bound rather than wrapped garbage.
func (v *Value[T]) Add(rhs T) {
	v.store(satAdd(v.value, rhs, v.min, v.max))
}

// Sub subtracts rhs from the value, saturating at the bounds.
func (v *Value[T]) Sub(rhs T) {
	v.store(satSub(v.value, rhs, v.min, v.max))
}

// Mul multiplies the value by rhs, saturating at the bounds.
func (v *Value[T]) Mul(rhs T) {
	v.store(satMul(v.value, rhs, v.min, v.max))
}

// Div divides the value by rhs, saturating at the bounds. Dividing an
// integer Value by zero panics; float division follows IEEE 754, with
// ±Inf clamped to a bound and NaN discarded.
func (v *Value[T]) Div(rhs T) {
	v.store(satDiv(v.value, rhs, v.min, v.max))
}

// Percent returns the position of the value within its range, from 0 at
// the minimum to 1 at the maximum. A degenerate range (min == max)
// reports 0.
func (v *Value[T]) Percent() float64 {
	if v.min == v.max {
		return 0
	}
	return (float64(v.value) - float64(v.min)) / (float64(v.max) - float64(v.min))
}

// String implements fmt.Stringer in the form "5 [0, 10]".
func (v *Value[T]) String() string {
	return fmt.Sprintf("%v [%v, %v]", v.value, v.min, v.max)
}

// store is the one rule every mutation funnels through: NaN is dropped,
// everything else is clamped into [min, max].
func (v *Value[T]) store(x T) {
	if x != x {
		return
	}
	v.value = Clamp(v.min, v.max, x)
}
