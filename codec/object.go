package codec

import mp "github.com/unkn0wn-root/packmsg"

// Field binds a wire field name, a Codec[F] for that field's value, and an
// accessor that reads F out of the owning record type R. Field is the
// record-builder primitive ObjectN composes.
type Field[R, F any] struct {
	Name     string
	Codec    Codec[F]
	Accessor func(R) F
}

// NewField constructs a Field.
func NewField[R, F any](name string, c Codec[F], accessor func(R) F) Field[R, F] {
	return Field[R, F]{Name: name, Codec: c, Accessor: accessor}
}

func lookupField(pairs []mp.KV, name string) (mp.Value, bool) {
	for _, kv := range pairs {
		if s, ok := kv.Key.AsString(); ok && s == name {
			return kv.Val, true
		}
	}
	return mp.Value{}, false
}

// decodeNamedField looks up name in pairs (first match wins on duplicate
// keys), decodes it through c, and wraps any failure in FieldError.
func decodeNamedField[F any](pairs []mp.KV, name string, c Codec[F]) (F, error) {
	var zero F
	val, ok := lookupField(pairs, name)
	if !ok {
		return zero, mp.ErrMissingField{Name: name}
	}
	f, err := c.Decode(val)
	if err != nil {
		return zero, &mp.FieldError{Name: name, Inner: err}
	}
	return f, nil
}

// Object1 builds a Codec[R] from a constructor and 1 field binding.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object1[R any, F1 any](
	construct func(F1) R,
	f1 Field[R, F1],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1), nil
		},
	}
}

// Object2 builds a Codec[R] from a constructor and 2 field bindings.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object2[R any, F1, F2 any](
	construct func(F1, F2) R,
	f1 Field[R, F1],
	f2 Field[R, F2],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
				{Key: mp.Str(f2.Name), Val: f2.Codec.Encode(f2.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			v2, err := decodeNamedField(pairs, f2.Name, f2.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1, v2), nil
		},
	}
}

// Object3 builds a Codec[R] from a constructor and 3 field bindings.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object3[R any, F1, F2, F3 any](
	construct func(F1, F2, F3) R,
	f1 Field[R, F1],
	f2 Field[R, F2],
	f3 Field[R, F3],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
				{Key: mp.Str(f2.Name), Val: f2.Codec.Encode(f2.Accessor(r))},
				{Key: mp.Str(f3.Name), Val: f3.Codec.Encode(f3.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			v2, err := decodeNamedField(pairs, f2.Name, f2.Codec)
			if err != nil {
				return zero, err
			}
			v3, err := decodeNamedField(pairs, f3.Name, f3.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1, v2, v3), nil
		},
	}
}

// Object4 builds a Codec[R] from a constructor and 4 field bindings.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object4[R any, F1, F2, F3, F4 any](
	construct func(F1, F2, F3, F4) R,
	f1 Field[R, F1],
	f2 Field[R, F2],
	f3 Field[R, F3],
	f4 Field[R, F4],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
				{Key: mp.Str(f2.Name), Val: f2.Codec.Encode(f2.Accessor(r))},
				{Key: mp.Str(f3.Name), Val: f3.Codec.Encode(f3.Accessor(r))},
				{Key: mp.Str(f4.Name), Val: f4.Codec.Encode(f4.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			v2, err := decodeNamedField(pairs, f2.Name, f2.Codec)
			if err != nil {
				return zero, err
			}
			v3, err := decodeNamedField(pairs, f3.Name, f3.Codec)
			if err != nil {
				return zero, err
			}
			v4, err := decodeNamedField(pairs, f4.Name, f4.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1, v2, v3, v4), nil
		},
	}
}

// Object5 builds a Codec[R] from a constructor and 5 field bindings.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object5[R any, F1, F2, F3, F4, F5 any](
	construct func(F1, F2, F3, F4, F5) R,
	f1 Field[R, F1],
	f2 Field[R, F2],
	f3 Field[R, F3],
	f4 Field[R, F4],
	f5 Field[R, F5],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
				{Key: mp.Str(f2.Name), Val: f2.Codec.Encode(f2.Accessor(r))},
				{Key: mp.Str(f3.Name), Val: f3.Codec.Encode(f3.Accessor(r))},
				{Key: mp.Str(f4.Name), Val: f4.Codec.Encode(f4.Accessor(r))},
				{Key: mp.Str(f5.Name), Val: f5.Codec.Encode(f5.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			v2, err := decodeNamedField(pairs, f2.Name, f2.Codec)
			if err != nil {
				return zero, err
			}
			v3, err := decodeNamedField(pairs, f3.Name, f3.Codec)
			if err != nil {
				return zero, err
			}
			v4, err := decodeNamedField(pairs, f4.Name, f4.Codec)
			if err != nil {
				return zero, err
			}
			v5, err := decodeNamedField(pairs, f5.Name, f5.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1, v2, v3, v4, v5), nil
		},
	}
}

// Object6 builds a Codec[R] from a constructor and 6 field bindings.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object6[R any, F1, F2, F3, F4, F5, F6 any](
	construct func(F1, F2, F3, F4, F5, F6) R,
	f1 Field[R, F1],
	f2 Field[R, F2],
	f3 Field[R, F3],
	f4 Field[R, F4],
	f5 Field[R, F5],
	f6 Field[R, F6],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
				{Key: mp.Str(f2.Name), Val: f2.Codec.Encode(f2.Accessor(r))},
				{Key: mp.Str(f3.Name), Val: f3.Codec.Encode(f3.Accessor(r))},
				{Key: mp.Str(f4.Name), Val: f4.Codec.Encode(f4.Accessor(r))},
				{Key: mp.Str(f5.Name), Val: f5.Codec.Encode(f5.Accessor(r))},
				{Key: mp.Str(f6.Name), Val: f6.Codec.Encode(f6.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			v2, err := decodeNamedField(pairs, f2.Name, f2.Codec)
			if err != nil {
				return zero, err
			}
			v3, err := decodeNamedField(pairs, f3.Name, f3.Codec)
			if err != nil {
				return zero, err
			}
			v4, err := decodeNamedField(pairs, f4.Name, f4.Codec)
			if err != nil {
				return zero, err
			}
			v5, err := decodeNamedField(pairs, f5.Name, f5.Codec)
			if err != nil {
				return zero, err
			}
			v6, err := decodeNamedField(pairs, f6.Name, f6.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1, v2, v3, v4, v5, v6), nil
		},
	}
}

// Object7 builds a Codec[R] from a constructor and 7 field bindings.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object7[R any, F1, F2, F3, F4, F5, F6, F7 any](
	construct func(F1, F2, F3, F4, F5, F6, F7) R,
	f1 Field[R, F1],
	f2 Field[R, F2],
	f3 Field[R, F3],
	f4 Field[R, F4],
	f5 Field[R, F5],
	f6 Field[R, F6],
	f7 Field[R, F7],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
				{Key: mp.Str(f2.Name), Val: f2.Codec.Encode(f2.Accessor(r))},
				{Key: mp.Str(f3.Name), Val: f3.Codec.Encode(f3.Accessor(r))},
				{Key: mp.Str(f4.Name), Val: f4.Codec.Encode(f4.Accessor(r))},
				{Key: mp.Str(f5.Name), Val: f5.Codec.Encode(f5.Accessor(r))},
				{Key: mp.Str(f6.Name), Val: f6.Codec.Encode(f6.Accessor(r))},
				{Key: mp.Str(f7.Name), Val: f7.Codec.Encode(f7.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			v2, err := decodeNamedField(pairs, f2.Name, f2.Codec)
			if err != nil {
				return zero, err
			}
			v3, err := decodeNamedField(pairs, f3.Name, f3.Codec)
			if err != nil {
				return zero, err
			}
			v4, err := decodeNamedField(pairs, f4.Name, f4.Codec)
			if err != nil {
				return zero, err
			}
			v5, err := decodeNamedField(pairs, f5.Name, f5.Codec)
			if err != nil {
				return zero, err
			}
			v6, err := decodeNamedField(pairs, f6.Name, f6.Codec)
			if err != nil {
				return zero, err
			}
			v7, err := decodeNamedField(pairs, f7.Name, f7.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1, v2, v3, v4, v5, v6, v7), nil
		},
	}
}

// Object8 builds a Codec[R] from a constructor and 8 field bindings.
// Encode emits a Map with one entry per field, in declaration order; decode
// requires a Map, looks up each field by name, and assembles R via construct.
// A missing field fails with MissingField; extra unknown fields in
// the input are ignored.
func Object8[R any, F1, F2, F3, F4, F5, F6, F7, F8 any](
	construct func(F1, F2, F3, F4, F5, F6, F7, F8) R,
	f1 Field[R, F1],
	f2 Field[R, F2],
	f3 Field[R, F3],
	f4 Field[R, F4],
	f5 Field[R, F5],
	f6 Field[R, F6],
	f7 Field[R, F7],
	f8 Field[R, F8],
) Codec[R] {
	return Codec[R]{
		encode: func(r R) mp.Value {
			return mp.NewMap([]mp.KV{
				{Key: mp.Str(f1.Name), Val: f1.Codec.Encode(f1.Accessor(r))},
				{Key: mp.Str(f2.Name), Val: f2.Codec.Encode(f2.Accessor(r))},
				{Key: mp.Str(f3.Name), Val: f3.Codec.Encode(f3.Accessor(r))},
				{Key: mp.Str(f4.Name), Val: f4.Codec.Encode(f4.Accessor(r))},
				{Key: mp.Str(f5.Name), Val: f5.Codec.Encode(f5.Accessor(r))},
				{Key: mp.Str(f6.Name), Val: f6.Codec.Encode(f6.Accessor(r))},
				{Key: mp.Str(f7.Name), Val: f7.Codec.Encode(f7.Accessor(r))},
				{Key: mp.Str(f8.Name), Val: f8.Codec.Encode(f8.Accessor(r))},
			})
		},
		decode: func(v mp.Value) (R, error) {
			var zero R
			pairs, ok := v.AsMap()
			if !ok {
				return zero, typeMismatch("Map", v)
			}
			v1, err := decodeNamedField(pairs, f1.Name, f1.Codec)
			if err != nil {
				return zero, err
			}
			v2, err := decodeNamedField(pairs, f2.Name, f2.Codec)
			if err != nil {
				return zero, err
			}
			v3, err := decodeNamedField(pairs, f3.Name, f3.Codec)
			if err != nil {
				return zero, err
			}
			v4, err := decodeNamedField(pairs, f4.Name, f4.Codec)
			if err != nil {
				return zero, err
			}
			v5, err := decodeNamedField(pairs, f5.Name, f5.Codec)
			if err != nil {
				return zero, err
			}
			v6, err := decodeNamedField(pairs, f6.Name, f6.Codec)
			if err != nil {
				return zero, err
			}
			v7, err := decodeNamedField(pairs, f7.Name, f7.Codec)
			if err != nil {
				return zero, err
			}
			v8, err := decodeNamedField(pairs, f8.Name, f8.Codec)
			if err != nil {
				return zero, err
			}
			return construct(v1, v2, v3, v4, v5, v6, v7, v8), nil
		},
	}
}
