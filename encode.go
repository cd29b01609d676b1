package satgo

import (
	"errors"
	"fmt"
	"strconv"
)

// String returns the decimal rendering of the underlying value.
func (x Int[T]) String() string {
	return strconv.FormatInt(int64(x.value), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (x Int[T]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Syntactically valid
// values outside the width's range saturate to the nearest bound, keeping
// the no-error-channel contract of the arithmetic; malformed input returns
// the parse error.
func (x *Int[T]) UnmarshalText(text []byte) error {
	v, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		// ParseInt reports ErrRange with the value already clamped to the
		// int64 bounds, which is exactly the saturation we want.
		if !errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("satgo: parse %q: %w", text, err)
		}
	}
	*x = FromInt64[T](v)
	return nil
}

// MarshalJSON implements json.Marshaler. The value marshals as a plain JSON
// number.
func (x Int[T]) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler, with the same saturating
// semantics as UnmarshalText. Only integer-form JSON numbers are accepted:
// decimal and exponent forms such as 3.0 or 1e2 return a parse error even
// when their value is integral.
func (x *Int[T]) UnmarshalJSON(data []byte) error {
	return x.UnmarshalText(data)
}
