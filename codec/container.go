package codec

import (
	"fmt"

	mp "github.com/unkn0wn-root/packmsg"
)

// Nullable wraps inner so that Nil decodes to the zero-value pointer (nil)
// and any other value decodes through inner into a non-nil pointer.
// Encoding a nil *T produces Nil; a non-nil *T encodes via inner.
func Nullable[T any](inner Codec[T]) Codec[*T] {
	return Codec[*T]{
		encode: func(p *T) mp.Value {
			if p == nil {
				return mp.Nil()
			}
			return inner.encode(*p)
		},
		decode: func(v mp.Value) (*T, error) {
			if v.IsNil() {
				return nil, nil
			}
			t, err := inner.decode(v)
			if err != nil {
				return nil, err
			}
			return &t, nil
		},
	}
}

// List encodes a []T as an Array and decodes an Array element-by-element,
// wrapping any element failure in IndexError(i, ...).
func List[T any](inner Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		encode: func(items []T) mp.Value {
			vals := make([]mp.Value, len(items))
			for i, it := range items {
				vals[i] = inner.encode(it)
			}
			return mp.Arr(vals)
		},
		decode: func(v mp.Value) ([]T, error) {
			arr, ok := v.AsArray()
			if !ok {
				return nil, typeMismatch("Array", v)
			}
			out := make([]T, len(arr))
			for i, el := range arr {
				t, err := inner.decode(el)
				if err != nil {
					return nil, &mp.IndexError{Index: i, Inner: err}
				}
				out[i] = t
			}
			return out, nil
		},
	}
}

// StringDict encodes a map[string]V as a Map with String keys, in the
// iteration order Go gives the caller's map. Decode requires every key to
// be a String, wrapping value failures in FieldError(key, ...); a
// non-String key fails with TypeMismatch("String key", ...).
func StringDict[V any](inner Codec[V]) Codec[map[string]V] {
	return Codec[map[string]V]{
		encode: func(m map[string]V) mp.Value {
			pairs := make([]mp.KV, 0, len(m))
			for k, v := range m {
				pairs = append(pairs, mp.KV{Key: mp.Str(k), Val: inner.encode(v)})
			}
			return mp.NewMap(pairs)
		},
		decode: func(v mp.Value) (map[string]V, error) {
			pairs, ok := v.AsMap()
			if !ok {
				return nil, typeMismatch("Map", v)
			}
			out := make(map[string]V, len(pairs))
			for _, kv := range pairs {
				key, ok := kv.Key.AsString()
				if !ok {
					return nil, mp.ErrTypeMismatch{Expected: "String key", Got: kv.Key.Kind().String()}
				}
				val, err := inner.decode(kv.Val)
				if err != nil {
					return nil, &mp.FieldError{Name: key, Inner: err}
				}
				out[key] = val
			}
			return out, nil
		},
	}
}

// DictEntry is one key/value pair for Dict, used to give the encoder a
// deterministic iteration order independent of map ordering.
type DictEntry[K, V any] struct {
	Key K
	Val V
}

// Dict is the general-keyed counterpart to StringDict: both key and value
// are mapped through their own Codec, and the wire shape is a Map. Because
// Go map keys need not be directly comparable to mp.Value, Dict operates
// over a slice of entries rather than a Go map.
func Dict[K, V any](k Codec[K], v Codec[V]) Codec[[]DictEntry[K, V]] {
	return Codec[[]DictEntry[K, V]]{
		encode: func(entries []DictEntry[K, V]) mp.Value {
			pairs := make([]mp.KV, len(entries))
			for i, e := range entries {
				pairs[i] = mp.KV{Key: k.encode(e.Key), Val: v.encode(e.Val)}
			}
			return mp.NewMap(pairs)
		},
		decode: func(val mp.Value) ([]DictEntry[K, V], error) {
			pairs, ok := val.AsMap()
			if !ok {
				return nil, typeMismatch("Map", val)
			}
			out := make([]DictEntry[K, V], len(pairs))
			for i, kv := range pairs {
				key, err := k.decode(kv.Key)
				if err != nil {
					return nil, &mp.IndexError{Index: i, Inner: err}
				}
				val, err := v.decode(kv.Val)
				if err != nil {
					return nil, &mp.IndexError{Index: i, Inner: err}
				}
				out[i] = DictEntry[K, V]{Key: key, Val: val}
			}
			return out, nil
		},
	}
}

// Tuple2 encodes (A, B) as a fixed-length Array; decode requires the Array
// length to match exactly.
func Tuple2[A, B any](ca Codec[A], cb Codec[B]) Codec[struct {
	A A
	B B
}] {
	type T = struct {
		A A
		B B
	}
	return Codec[T]{
		encode: func(t T) mp.Value {
			return mp.Arr([]mp.Value{ca.encode(t.A), cb.encode(t.B)})
		},
		decode: func(v mp.Value) (T, error) {
			var zero T
			arr, ok := v.AsArray()
			if !ok {
				return zero, typeMismatch("Array", v)
			}
			if len(arr) != 2 {
				return zero, mp.ErrOutOfRange{Msg: fmt.Sprintf("expected tuple of length 2, got %d", len(arr))}
			}
			a, err := ca.decode(arr[0])
			if err != nil {
				return zero, &mp.IndexError{Index: 0, Inner: err}
			}
			b, err := cb.decode(arr[1])
			if err != nil {
				return zero, &mp.IndexError{Index: 1, Inner: err}
			}
			return T{A: a, B: b}, nil
		},
	}
}

// Tuple3 is Tuple2 extended to three elements.
func Tuple3[A, B, C any](ca Codec[A], cb Codec[B], cc Codec[C]) Codec[struct {
	A A
	B B
	C C
}] {
	type T = struct {
		A A
		B B
		C C
	}
	return Codec[T]{
		encode: func(t T) mp.Value {
			return mp.Arr([]mp.Value{ca.encode(t.A), cb.encode(t.B), cc.encode(t.C)})
		},
		decode: func(v mp.Value) (T, error) {
			var zero T
			arr, ok := v.AsArray()
			if !ok {
				return zero, typeMismatch("Array", v)
			}
			if len(arr) != 3 {
				return zero, mp.ErrOutOfRange{Msg: fmt.Sprintf("expected tuple of length 3, got %d", len(arr))}
			}
			a, err := ca.decode(arr[0])
			if err != nil {
				return zero, &mp.IndexError{Index: 0, Inner: err}
			}
			b, err := cb.decode(arr[1])
			if err != nil {
				return zero, &mp.IndexError{Index: 1, Inner: err}
			}
			c, err := cc.decode(arr[2])
			if err != nil {
				return zero, &mp.IndexError{Index: 2, Inner: err}
			}
			return T{A: a, B: b, C: c}, nil
		},
	}
}

// Tuple4 is Tuple2 extended to four elements.
func Tuple4[A, B, C, D any](ca Codec[A], cb Codec[B], cc Codec[C], cd Codec[D]) Codec[struct {
	A A
	B B
	C C
	D D
}] {
	type T = struct {
		A A
		B B
		C C
		D D
	}
	return Codec[T]{
		encode: func(t T) mp.Value {
			return mp.Arr([]mp.Value{ca.encode(t.A), cb.encode(t.B), cc.encode(t.C), cd.encode(t.D)})
		},
		decode: func(v mp.Value) (T, error) {
			var zero T
			arr, ok := v.AsArray()
			if !ok {
				return zero, typeMismatch("Array", v)
			}
			if len(arr) != 4 {
				return zero, mp.ErrOutOfRange{Msg: fmt.Sprintf("expected tuple of length 4, got %d", len(arr))}
			}
			a, err := ca.decode(arr[0])
			if err != nil {
				return zero, &mp.IndexError{Index: 0, Inner: err}
			}
			b, err := cb.decode(arr[1])
			if err != nil {
				return zero, &mp.IndexError{Index: 1, Inner: err}
			}
			c, err := cc.decode(arr[2])
			if err != nil {
				return zero, &mp.IndexError{Index: 2, Inner: err}
			}
			d, err := cd.decode(arr[3])
			if err != nil {
				return zero, &mp.IndexError{Index: 3, Inner: err}
			}
			return T{A: a, B: b, C: c, D: d}, nil
		},
	}
}
