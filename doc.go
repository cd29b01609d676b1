// Package satgo provides fixed-width saturating signed integers for Go.
//
// Satgo wraps the native signed integer widths (8/16/32/64-bit) in a value
// type whose arithmetic clamps to the representable range instead of
// wrapping. It is built for offset, size, and index arithmetic over
// adversarial input — binary object-file fields, length prefixes, table
// offsets — where a silently wrapped value is a security bug:
//
//   - Saturating Add/Sub/Mul/Div/Rem/Neg/Abs: results clamp to [Min, Max]
//   - No error channel: division by zero saturates, it does not fail
//   - Clamped cross-width conversion: narrowing never corrupts the check
//   - Plain value semantics: comparable, copyable, zero allocation
//
// # Quick Start
//
// Arithmetic saturates instead of wrapping:
//
//	a := satgo.New[int8](100)
//	b := satgo.New[int8](100)
//	sum := a.Add(b)        // 127, not -56
//	prod := a.Mul(b)       // 127, not 16
//	q := a.Div(satgo.New[int8](0)) // 127, absorbed rather than panicking
//
// Narrowing clamps:
//
//	wide := satgo.New[int32](200)
//	narrow := satgo.Convert[int8](wide) // 127
//
// # Detecting Saturation
//
// Saturation is the only failure signal. Compare the result against the
// bounds to detect it:
//
//	if sum == satgo.Max[int8]() {
//	    // saturated, or legitimately at the bound — the type does not
//	    // distinguish the two
//	}
//
// # Value Semantics
//
// Int is an immutable value: every operation returns a new Int rather than
// mutating the receiver, except Inc and Dec, which mirror the ++/--
// operators and mutate in place (a no-op at the bound). Int is comparable,
// so == and != work natively; ordered comparisons go through Less,
// Greater, LessOrEqual, GreaterOrEqual, or Cmp.
package satgo
