package domain

import (
	"bytes"
	"encoding/json"
)

// Optional holds a value that may be undefined. Calculation results use it
// instead of NaN so that a missing value is always an explicit check.
type Optional[T any] struct {
	value T
	valid bool
}

// Some wraps a defined value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an undefined value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is defined.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// Valid reports whether the value is defined.
func (o Optional[T]) Valid() bool { return o.valid }

// OrElse returns the value, or d when undefined.
func (o Optional[T]) OrElse(d T) T {
	if !o.valid {
		return d
	}
	return o.value
}

// MarshalJSON encodes an undefined value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as undefined.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
