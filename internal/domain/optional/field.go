// Package optional provides a presence-aware field for partial updates.
//
// A Field distinguishes three states a JSON key can be in:
//
//	{}                 -> omitted      (Set=false)
//	{"email": null}    -> explicit nil (Set=true, Null=true)
//	{"email": "a@b.c"} -> value        (Set=true, Null=false)
package optional

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] { return Field[T]{Value: v, Set: true} }

// Nil returns a present field explicitly set to null.
func Nil[T any]() Field[T] { return Field[T]{Set: true, Null: true} }

// HasValue reports whether the field is present with a non-null value.
func (f Field[T]) HasValue() bool { return f.Set && !f.Null }

// Ptr returns a pointer to the value, or nil when omitted or null.
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.Value
	return &v
}

// ApplyTo overwrites *dst when the field carries a value. Null leaves *dst untouched;
// use it for columns that can never be empty.
func (f Field[T]) ApplyTo(dst *T) {
	if f.HasValue() {
		*dst = f.Value
	}
}

// ApplyToPtr overwrites *dst when the field is present: a value replaces it, null clears it.
func (f Field[T]) ApplyToPtr(dst **T) {
	if f.Set {
		*dst = f.Ptr()
	}
}

// Map transforms a present value, keeping the presence bits.
func Map[T, U any](f Field[T], fn func(T) U) Field[U] {
	out := Field[U]{Set: f.Set, Null: f.Null}
	if f.HasValue() {
		out.Value = fn(f.Value)
	}
	return out
}

// FromPtr turns a normalized pointer back into a present field: nil becomes null.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Nil[T]()
	}
	return Of(*p)
}

// UnmarshalJSON is only called by encoding/json when the key is present, null included.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		f.Value = zero
		f.Null = true
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
