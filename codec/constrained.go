package codec

import (
	"fmt"

	mp "github.com/unkn0wn-root/packmsg"
)

// IntRange restricts Int to values in [min, max] inclusive. Encoding a value
// outside the range is not prevented at compile time; decode is where the
// bound is enforced, failing with OutOfRange.
func IntRange(min, max int64) Codec[int64] {
	return Codec[int64]{
		encode: Int.encode,
		decode: func(v mp.Value) (int64, error) {
			n, err := Int.decode(v)
			if err != nil {
				return 0, err
			}
			if n < min || n > max {
				return 0, mp.ErrOutOfRange{Msg: fmt.Sprintf("%d outside range [%d, %d]", n, min, max)}
			}
			return n, nil
		},
	}
}

// NonEmptyString is String restricted to reject the empty string on decode.
var NonEmptyString = Codec[string]{
	encode: String.encode,
	decode: func(v mp.Value) (string, error) {
		s, err := String.decode(v)
		if err != nil {
			return "", err
		}
		if s == "" {
			return "", mp.ErrOutOfRange{Msg: "string must not be empty"}
		}
		return s, nil
	},
}

// NonEmptyList wraps inner so that decoding an empty array fails with
// OutOfRange rather than producing an empty slice.
func NonEmptyList[T any](inner Codec[T]) Codec[[]T] {
	list := List(inner)
	return Codec[[]T]{
		encode: list.encode,
		decode: func(v mp.Value) ([]T, error) {
			items, err := list.decode(v)
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return nil, mp.ErrOutOfRange{Msg: "list must not be empty"}
			}
			return items, nil
		},
	}
}
