package codec

import mp "github.com/unkn0wn-root/packmsg"

// OneOf tries each codec in cs in order on decode, returning the first
// success. Encode always uses cs[0]: a decoded value carries no record of
// which alternative produced it, so encoding must commit to one member of
// the family. If every alternative fails, the errors are collected into an
// AllFailedError.
func OneOf[T any](cs []Codec[T]) Codec[T] {
	return Codec[T]{
		encode: func(t T) mp.Value {
			return cs[0].encode(t)
		},
		decode: func(v mp.Value) (T, error) {
			var zero T
			errs := make([]error, 0, len(cs))
			for _, c := range cs {
				t, err := c.decode(v)
				if err == nil {
					return t, nil
				}
				errs = append(errs, err)
			}
			return zero, &mp.AllFailedError{Errors: errs}
		},
	}
}

// WithDefault makes decode failure (for any reason, including a Nil value
// inner rejects) fall back to def rather than propagate an error. Encode is
// unchanged.
func WithDefault[T any](c Codec[T], def T) Codec[T] {
	return Codec[T]{
		encode: c.encode,
		decode: func(v mp.Value) (T, error) {
			t, err := c.decode(v)
			if err != nil {
				return def, nil
			}
			return t, nil
		},
	}
}

// Succeed is a Codec that always encodes to Nil and always decodes to v,
// regardless of input. It is useful as a placeholder branch in a OneOf
// family or for fields whose value is a fixed constant.
func Succeed[T any](v T) Codec[T] {
	return Codec[T]{
		encode: func(T) mp.Value { return mp.Nil() },
		decode: func(mp.Value) (T, error) { return v, nil },
	}
}

// Fail is a Codec whose decode side always fails with msg. Encode panics,
// since a codec with no representable value should never be asked to
// produce one; it exists to round out OneOf families and tests for the
// all-alternatives-failed path.
func Fail[T any](msg string) Codec[T] {
	return Codec[T]{
		encode: func(T) mp.Value {
			panic("codec: Fail codec has no encoding: " + msg)
		},
		decode: func(mp.Value) (T, error) {
			var zero T
			return zero, mp.ErrCustom{Msg: msg}
		},
	}
}

// Lazy defers construction of the wrapped Codec until first use, and calls
// make again on every Encode/Decode rather than caching the result. This is
// the supported way to build a recursive Codec: a variant codec's branch
// can refer to itself through a Lazy indirection without causing infinite
// recursion while the Codec graph is being built.
func Lazy[T any](make func() Codec[T]) Codec[T] {
	return Codec[T]{
		encode: func(t T) mp.Value { return make().encode(t) },
		decode: func(v mp.Value) (T, error) { return make().decode(v) },
	}
}
