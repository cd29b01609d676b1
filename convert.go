package satgo

import "golang.org/x/exp/constraints"

// Convert re-widths x from U to T, clamping values outside T's range to the
// nearest bound. Widening is always exact.
//
// The bounds comparison runs on a 64-bit intermediate before any
// truncation: truncating the source into the target width first can flip
// the sign or magnitude of the very value being checked, so the raw value
// must not touch the target width until it is known to fit.
func Convert[T, U constraints.Signed](x Int[U]) Int[T] {
	v := int64(x.value)
	switch {
	case v > int64(maxOf[T]()):
		return Max[T]()
	case v < int64(minOf[T]()):
		return Min[T]()
	default:
		return Int[T]{value: T(v)}
	}
}

// FromInt64 returns v clamped into the width of T. It is the
// constructor-shaped spelling of Convert from the widest admitted width.
func FromInt64[T constraints.Signed](v int64) Int[T] {
	return Convert[T](New(v))
}
