package satgo

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Int is a fixed-width signed integer with saturating arithmetic: every
// operation whose exact result falls outside [Min, Max] clamps to the
// nearest bound instead of wrapping. The zero value is 0.
//
// Int is comparable, so == and != work natively. Instances of different
// widths are related only through Convert; there is no implicit cross-width
// arithmetic.
type Int[T constraints.Signed] struct {
	value T
}

// New returns an Int holding v verbatim.
func New[T constraints.Signed](v T) Int[T] { return Int[T]{value: v} }

// Min returns the smallest representable value of the width.
func Min[T constraints.Signed]() Int[T] { return Int[T]{value: minOf[T]()} }

// Max returns the largest representable value of the width.
func Max[T constraints.Signed]() Int[T] { return Int[T]{value: maxOf[T]()} }

// Value returns the underlying native integer.
func (x Int[T]) Value() T { return x.value }

// minOf isolates the sign bit of T, which is the width's minimum value.
func minOf[T constraints.Signed]() T {
	return ^T(0) << (unsafe.Sizeof(T(0))*8 - 1)
}

func maxOf[T constraints.Signed]() T { return ^minOf[T]() }

// Add returns x + y, clamping to Max on overflow and Min on underflow.
func (x Int[T]) Add(y Int[T]) Int[T] {
	switch {
	case y.value > 0 && x.value > maxOf[T]()-y.value:
		return Max[T]()
	case y.value < 0 && x.value < minOf[T]()-y.value:
		return Min[T]()
	default:
		return Int[T]{value: x.value + y.value}
	}
}

// Sub returns x - y, clamping to Min on underflow and Max on overflow.
func (x Int[T]) Sub(y Int[T]) Int[T] {
	switch {
	case y.value > 0 && x.value < minOf[T]()+y.value:
		return Min[T]()
	case y.value < 0 && x.value > maxOf[T]()+y.value:
		return Max[T]()
	default:
		return Int[T]{value: x.value - y.value}
	}
}

// Mul returns x * y, clamping on overflow. The overflow check divides the
// bound by one operand before multiplying, so no intermediate ever exceeds
// the width. The mixed-sign checks divide by the positive operand and the
// negative-negative check divides by the negative one, so the quotient
// Min/-1 — the one division that itself wraps — can never arise.
func (x Int[T]) Mul(y Int[T]) Int[T] {
	switch {
	case x.value == 0 || y.value == 0:
		return Int[T]{value: 0}
	case x.value > 0 && y.value > 0 && x.value > maxOf[T]()/y.value:
		return Max[T]()
	case x.value > 0 && y.value < 0 && y.value < minOf[T]()/x.value:
		return Min[T]()
	case x.value < 0 && y.value > 0 && x.value < minOf[T]()/y.value:
		return Min[T]()
	case x.value < 0 && y.value < 0 && y.value < maxOf[T]()/x.value:
		return Max[T]()
	default:
		return Int[T]{value: x.value * y.value}
	}
}

// Div returns x / y. Division by zero saturates to Max rather than
// panicking, and Min/-1 (the one quotient that itself overflows) saturates
// to Max.
func (x Int[T]) Div(y Int[T]) Int[T] {
	switch {
	case y.value == 0:
		return Max[T]()
	case x.value == minOf[T]() && y.value == -1:
		return Max[T]()
	default:
		return Int[T]{value: x.value / y.value}
	}
}

// Rem returns x % y. Remainder by zero saturates to Max; Min%-1 is exactly
// 0, with no overflow involved.
func (x Int[T]) Rem(y Int[T]) Int[T] {
	switch {
	case y.value == 0:
		return Max[T]()
	case x.value == minOf[T]() && y.value == -1:
		return Int[T]{value: 0}
	default:
		return Int[T]{value: x.value % y.value}
	}
}

// Neg returns -x. Negating Min would overflow, so Min is returned
// unchanged.
func (x Int[T]) Neg() Int[T] {
	if x.value == minOf[T]() {
		return x
	}
	return Int[T]{value: -x.value}
}

// Abs returns the absolute value of x. The magnitude of Min is not
// representable, so Abs(Min) saturates to Max.
func (x Int[T]) Abs() Int[T] {
	switch {
	case x.value == minOf[T]():
		return Max[T]()
	case x.value < 0:
		return Int[T]{value: -x.value}
	default:
		return x
	}
}

// Inc increments x in place. At Max it is a no-op.
func (x *Int[T]) Inc() {
	if x.value < maxOf[T]() {
		x.value++
	}
}

// Dec decrements x in place. At Min it is a no-op.
func (x *Int[T]) Dec() {
	if x.value > minOf[T]() {
		x.value--
	}
}

// Equal reports whether x == y.
func (x Int[T]) Equal(y Int[T]) bool { return x.value == y.value }

// Less reports whether x < y.
func (x Int[T]) Less(y Int[T]) bool { return x.value < y.value }

// LessOrEqual reports whether x <= y.
func (x Int[T]) LessOrEqual(y Int[T]) bool { return x.value <= y.value }

// Greater reports whether x > y.
func (x Int[T]) Greater(y Int[T]) bool { return x.value > y.value }

// GreaterOrEqual reports whether x >= y.
func (x Int[T]) GreaterOrEqual(y Int[T]) bool { return x.value >= y.value }

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, +1 if x > y.
// Only the current values matter; saturation history does not affect
// ordering.
func (x Int[T]) Cmp(y Int[T]) int {
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return +1
	default:
		return 0
	}
}
