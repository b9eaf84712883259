package packmsg

import (
	"math"
	"unicode/utf8"

	"github.com/unkn0wn-root/packmsg/internal/wire"
)

// Unpack decodes one Value from the front of b and returns it together with
// the unconsumed suffix. Unpack accepts every valid MessagePack encoding,
// canonical or not.
func Unpack(b []byte) (Value, []byte, error) {
	return UnpackWithLimits(b, DecodeLimits{})
}

// UnpackExact decodes one Value from b and fails with ErrTrailingBytes if
// any bytes remain.
func UnpackExact(b []byte) (Value, error) {
	return UnpackExactWithLimits(b, DecodeLimits{})
}

// UnpackWithLimits is Unpack with an explicit DecodeLimits; zero fields
// fall back to the package defaults.
func UnpackWithLimits(b []byte, limits DecodeLimits) (Value, []byte, error) {
	d := decoder{limits: limits.withDefaults()}
	r := wire.NewReader(b)
	v, err := d.decodeValue(&r, 0)
	if err != nil {
		return Value{}, nil, err
	}
	return v, r.Rest(), nil
}

// UnpackExactWithLimits is UnpackExact with an explicit DecodeLimits.
func UnpackExactWithLimits(b []byte, limits DecodeLimits) (Value, error) {
	v, rest, err := UnpackWithLimits(b, limits)
	if err != nil {
		return Value{}, err
	}
	if len(rest) != 0 {
		return Value{}, ErrTrailingBytes{N: len(rest)}
	}
	return v, nil
}

type decoder struct {
	limits DecodeLimits
}

func (d decoder) decodeValue(r *wire.Reader, depth int) (Value, error) {
	if depth > d.limits.MaxDepth {
		return Value{}, ErrLimitExceeded{Kind: "depth", Limit: d.limits.MaxDepth, Got: depth}
	}
	prefix, ok := r.ReadByte()
	if !ok {
		return Value{}, ErrUnexpectedEOF{}
	}

	switch {
	case prefix <= fixintPosMax: // positive fixint
		return Int(int64(prefix)), nil
	case prefix >= 0xe0: // negative fixint
		return Int(int64(int8(prefix))), nil
	case prefix >= 0xa0 && prefix <= 0xbf: // fixstr
		return d.decodeString(r, int(prefix&0x1f))
	case prefix >= 0x90 && prefix <= 0x9f: // fixarray
		return d.decodeArray(r, int(prefix&0x0f), depth)
	case prefix >= 0x80 && prefix <= 0x8f: // fixmap
		return d.decodeMap(r, int(prefix&0x0f), depth)
	}

	switch prefix {
	case fmtNil:
		return Nil(), nil
	case fmtFalse:
		return Bool(false), nil
	case fmtTrue:
		return Bool(true), nil
	case fmtReserve:
		return Value{}, ErrReservedFormat{Byte: prefix}
	case 0xca: // float32 (accepted on decode, widened to float64)
		v, ok := r.ReadUint32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Float(float64(math.Float32frombits(v))), nil
	case fmtFloat64:
		f, ok := r.ReadFloat64()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Float(f), nil
	case fmtUint8:
		v, ok := r.ReadUint8()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Int(int64(v)), nil
	case fmtUint16:
		v, ok := r.ReadUint16()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Int(int64(v)), nil
	case fmtUint32:
		v, ok := r.ReadUint32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Int(int64(v)), nil
	case fmtUint64:
		v, ok := r.ReadUint64()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		if v > maxInt64 {
			return Value{}, ErrIntegerOverflow{}
		}
		return Int(int64(v)), nil
	case fmtInt8:
		v, ok := r.ReadInt8()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Int(int64(v)), nil
	case fmtInt16:
		v, ok := r.ReadInt16()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Int(int64(v)), nil
	case fmtInt32:
		v, ok := r.ReadInt32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Int(int64(v)), nil
	case fmtInt64:
		v, ok := r.ReadInt64()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return Int(v), nil
	case fmtBin8:
		n, ok := r.ReadUint8()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeBinary(r, int(n))
	case fmtBin16:
		n, ok := r.ReadUint16()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeBinary(r, int(n))
	case fmtBin32:
		n, ok := r.ReadUint32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeBinary(r, int(n))
	case fmtStr8:
		n, ok := r.ReadUint8()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeString(r, int(n))
	case fmtStr16:
		n, ok := r.ReadUint16()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeString(r, int(n))
	case fmtStr32:
		n, ok := r.ReadUint32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeString(r, int(n))
	case fmtArray16:
		n, ok := r.ReadUint16()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeArray(r, int(n), depth)
	case fmtArray32:
		n, ok := r.ReadUint32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeArray(r, int(n), depth)
	case fmtMap16:
		n, ok := r.ReadUint16()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeMap(r, int(n), depth)
	case fmtMap32:
		n, ok := r.ReadUint32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeMap(r, int(n), depth)
	case 0xd4, 0xd5, 0xd6, 0xd7, 0xd8: // fixext1,2,4,8,16
		sizes := map[byte]int{0xd4: 1, 0xd5: 2, 0xd6: 4, 0xd7: 8, 0xd8: 16}
		return d.decodeExtension(r, sizes[prefix])
	case fmtExt8:
		n, ok := r.ReadUint8()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeExtension(r, int(n))
	case fmtExt16:
		n, ok := r.ReadUint16()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeExtension(r, int(n))
	case fmtExt32:
		n, ok := r.ReadUint32()
		if !ok {
			return Value{}, ErrUnexpectedEOF{}
		}
		return d.decodeExtension(r, int(n))
	default:
		return Value{}, ErrInvalidFormat{Byte: prefix}
	}
}

const maxInt64 = 1<<63 - 1

func (d decoder) decodeString(r *wire.Reader, n int) (Value, error) {
	if n > d.limits.MaxStringLen {
		return Value{}, ErrLimitExceeded{Kind: "string", Limit: d.limits.MaxStringLen, Got: n}
	}
	b, ok := r.ReadN(n)
	if !ok {
		return Value{}, ErrUnexpectedEOF{}
	}
	if !utf8.Valid(b) {
		return Value{}, ErrInvalidUTF8{}
	}
	return Str(string(b)), nil
}

func (d decoder) decodeBinary(r *wire.Reader, n int) (Value, error) {
	if n > d.limits.MaxBinaryLen {
		return Value{}, ErrLimitExceeded{Kind: "binary", Limit: d.limits.MaxBinaryLen, Got: n}
	}
	b, ok := r.ReadN(n)
	if !ok {
		return Value{}, ErrUnexpectedEOF{}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Bin(cp), nil
}

func (d decoder) decodeArray(r *wire.Reader, n int, depth int) (Value, error) {
	if n > d.limits.MaxCollectionLen {
		return Value{}, ErrLimitExceeded{Kind: "collection", Limit: d.limits.MaxCollectionLen, Got: n}
	}
	items := make([]Value, n)
	for i := 0; i < n; i++ {
		v, err := d.decodeValue(r, depth+1)
		if err != nil {
			return Value{}, err
		}
		items[i] = v
	}
	return Arr(items), nil
}

func (d decoder) decodeMap(r *wire.Reader, n int, depth int) (Value, error) {
	if n > d.limits.MaxCollectionLen {
		return Value{}, ErrLimitExceeded{Kind: "collection", Limit: d.limits.MaxCollectionLen, Got: n}
	}
	pairs := make([]KV, n)
	for i := 0; i < n; i++ {
		k, err := d.decodeValue(r, depth+1)
		if err != nil {
			return Value{}, err
		}
		v, err := d.decodeValue(r, depth+1)
		if err != nil {
			return Value{}, err
		}
		pairs[i] = KV{Key: k, Val: v}
	}
	return NewMap(pairs), nil
}

func (d decoder) decodeExtension(r *wire.Reader, n int) (Value, error) {
	if n > d.limits.MaxBinaryLen {
		return Value{}, ErrLimitExceeded{Kind: "binary", Limit: d.limits.MaxBinaryLen, Got: n}
	}
	typeByte, ok := r.ReadByte()
	if !ok {
		return Value{}, ErrUnexpectedEOF{}
	}
	data, ok := r.ReadN(n)
	if !ok {
		return Value{}, ErrUnexpectedEOF{}
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return Ext(int8(typeByte), cp), nil
}
