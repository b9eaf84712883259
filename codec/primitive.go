package codec

import mp "github.com/unkn0wn-root/packmsg"

// Bool is a Codec for bool, backed by the Boolean variant.
var Bool = Codec[bool]{
	encode: mp.Bool,
	decode: func(v mp.Value) (bool, error) {
		b, ok := v.AsBool()
		if !ok {
			return false, typeMismatch("Boolean", v)
		}
		return b, nil
	},
}

// Int is a Codec for int64, backed by the Integer variant.
var Int = Codec[int64]{
	encode: mp.Int,
	decode: func(v mp.Value) (int64, error) {
		n, ok := v.AsInt()
		if !ok {
			return 0, typeMismatch("Integer", v)
		}
		return n, nil
	},
}

// String is a Codec for string, backed by the String variant.
var String = Codec[string]{
	encode: mp.Str,
	decode: func(v mp.Value) (string, error) {
		s, ok := v.AsString()
		if !ok {
			return "", typeMismatch("String", v)
		}
		return s, nil
	},
}

// Binary is a Codec for []byte, backed by the Binary variant.
var Binary = Codec[[]byte]{
	encode: mp.Bin,
	decode: func(v mp.Value) ([]byte, error) {
		b, ok := v.AsBinary()
		if !ok {
			return nil, typeMismatch("Binary", v)
		}
		return b, nil
	},
}

// Float is a Codec for float64. On decode it accepts either a Float or an
// Integer, coercing the latter with float64(n), which is exact for
// magnitudes up to 2^53 and rounds to the nearest float64 beyond that.
var Float = Codec[float64]{
	encode: mp.Float,
	decode: func(v mp.Value) (float64, error) {
		if f, ok := v.AsFloat(); ok {
			return f, nil
		}
		if n, ok := v.AsInt(); ok {
			return float64(n), nil
		}
		return 0, typeMismatch("Float", v)
	},
}

// FloatStrict is like Float but rejects Integer inputs.
var FloatStrict = Codec[float64]{
	encode: mp.Float,
	decode: func(v mp.Value) (float64, error) {
		f, ok := v.AsFloat()
		if !ok {
			return 0, typeMismatch("Float", v)
		}
		return f, nil
	},
}

// RawValue is the identity Codec on mp.Value, useful for passthrough
// fields whose shape isn't known statically.
var RawValue = Codec[mp.Value]{
	encode: func(v mp.Value) mp.Value { return v },
	decode: func(v mp.Value) (mp.Value, error) { return v, nil },
}
