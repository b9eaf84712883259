// Package codec provides compositional, type-safe bidirectional mappings
// between Go values and packmsg.Value.
//
// A Codec[T] is a pair of pure functions, Encode and Decode; combinators in
// this package build larger Codec[T] values out of smaller ones. Codecs own
// no state and are safe to share across goroutines.
package codec

import mp "github.com/unkn0wn-root/packmsg"

// Codec is a bidirectional mapping between T and mp.Value.
//
// Codec is a struct of two closures rather than an interface: every
// combinator in this package returns a Codec[T] value built from smaller
// ones, and a closure pair composes without a new named type per
// combinator.
type Codec[T any] struct {
	encode func(T) mp.Value
	decode func(mp.Value) (T, error)
}

// New builds a Codec from an encode and a decode function. Custom (below)
// is an alias used at call sites that implement the "type"-discriminator
// variant pattern, where naming the intent helps readability.
func New[T any](encode func(T) mp.Value, decode func(mp.Value) (T, error)) Codec[T] {
	return Codec[T]{encode: encode, decode: decode}
}

// Custom is New under a name that reads better at variant-pattern call
// sites: there is no built-in variant combinator, so Custom plus a "type"
// field on a Map is the documented pattern for encoding a closed union.
func Custom[T any](encode func(T) mp.Value, decode func(mp.Value) (T, error)) Codec[T] {
	return New(encode, decode)
}

// Encode converts v to its Value representation.
func (c Codec[T]) Encode(v T) mp.Value { return c.encode(v) }

// Decode converts v back to a T, or a DecodeError describing why it could not.
func (c Codec[T]) Decode(v mp.Value) (T, error) { return c.decode(v) }

// Map applies a bijective transform around an existing codec: f converts
// the wrapped codec's decoded value to B's domain, g the reverse, for
// encoding.
func Map[A, B any](c Codec[A], f func(A) B, g func(B) A) Codec[B] {
	return Codec[B]{
		encode: func(b B) mp.Value { return c.encode(g(b)) },
		decode: func(v mp.Value) (B, error) {
			a, err := c.decode(v)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(a), nil
		},
	}
}

// TryMap is Map with a fallible decode-side transform.
func TryMap[A, B any](c Codec[A], f func(A) (B, error), g func(B) A) Codec[B] {
	return Codec[B]{
		encode: func(b B) mp.Value { return c.encode(g(b)) },
		decode: func(v mp.Value) (B, error) {
			a, err := c.decode(v)
			if err != nil {
				var zero B
				return zero, err
			}
			return f(a)
		},
	}
}

// typeMismatch builds the standard "expected X, got Y" leaf error.
func typeMismatch(expected string, got mp.Value) error {
	return mp.ErrTypeMismatch{Expected: expected, Got: got.Kind().String()}
}
