package packmsg

import (
	"math"

	"github.com/unkn0wn-root/packmsg/internal/wire"
)

const (
	fmtNil     = 0xc0
	fmtFalse   = 0xc2
	fmtTrue    = 0xc3
	fmtUint8   = 0xcc
	fmtUint16  = 0xcd
	fmtUint32  = 0xce
	fmtUint64  = 0xcf
	fmtInt8    = 0xd0
	fmtInt16   = 0xd1
	fmtInt32   = 0xd2
	fmtInt64   = 0xd3
	fmtFloat64 = 0xcb
	fmtBin8    = 0xc4
	fmtBin16   = 0xc5
	fmtBin32   = 0xc6
	fmtStr8    = 0xd9
	fmtStr16   = 0xda
	fmtStr32   = 0xdb
	fmtArray16 = 0xdc
	fmtArray32 = 0xdd
	fmtMap16   = 0xde
	fmtMap32   = 0xdf
	fmtFixExt1 = 0xd4
	fmtExt8    = 0xc7
	fmtExt16   = 0xc8
	fmtExt32   = 0xc9
	fmtReserve = 0xc1

	fixintPosMax = 0x7f
	fixintNegMin = -32
	fixarrayMax  = 15
	fixmapMax    = 15
	fixstrMax    = 31
)

// Pack encodes v as the canonical (shortest) MessagePack byte sequence.
// Pack is deterministic: identical Values always produce identical
// output.
func Pack(v Value) ([]byte, error) {
	w := wire.NewWriter(estimateSize(v))
	if err := encodeValue(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// estimateSize is a cheap upper-bound guess used only to pre-size the
// output buffer; it need not be exact.
func estimateSize(v Value) int {
	switch v.kind {
	case KindString:
		return len(v.s) + 5
	case KindBinary:
		return len(v.bin) + 5
	case KindArray:
		n := 5
		for _, e := range v.arr {
			n += estimateSize(e)
		}
		return n
	case KindMap:
		n := 5
		for _, kv := range v.m {
			n += estimateSize(kv.Key) + estimateSize(kv.Val)
		}
		return n
	case KindExtension:
		return len(v.ext.Data) + 6
	default:
		return 9
	}
}

func encodeValue(w *wire.Writer, v Value) error {
	switch v.kind {
	case KindNil:
		w.WriteByte(fmtNil)
		return nil
	case KindBool:
		if v.b {
			w.WriteByte(fmtTrue)
		} else {
			w.WriteByte(fmtFalse)
		}
		return nil
	case KindInt:
		return encodeInt(w, v.i)
	case KindFloat:
		w.WriteByte(fmtFloat64)
		w.WriteFloat64(v.f)
		return nil
	case KindString:
		return encodeString(w, v.s)
	case KindBinary:
		return encodeBinary(w, v.bin)
	case KindArray:
		return encodeArray(w, v.arr)
	case KindMap:
		return encodeMap(w, v.m)
	case KindExtension:
		return encodeExtension(w, v.ext)
	default:
		return &EncodeError{Kind: ErrIntegerTooLarge} // unreachable: Kind is closed
	}
}

func encodeInt(w *wire.Writer, n int64) error {
	switch {
	case n >= 0 && n <= fixintPosMax:
		w.WriteByte(byte(n))
	case n >= fixintNegMin && n <= -1:
		w.WriteByte(byte(n + 256))
	case n >= 128 && n <= 255:
		w.WriteByte(fmtUint8)
		w.WriteByte(byte(n))
	case n >= -128 && n <= -33:
		w.WriteByte(fmtInt8)
		w.WriteByte(byte(n + 256))
	case n >= 256 && n <= 65535:
		w.WriteByte(fmtUint16)
		w.WriteUint16(uint16(n))
	case n >= -32768 && n <= -129:
		w.WriteByte(fmtInt16)
		w.WriteUint16(uint16(int16(n)))
	case n >= 65536 && n <= math.MaxUint32:
		w.WriteByte(fmtUint32)
		w.WriteUint32(uint32(n))
	case n >= math.MinInt32 && n <= -32769:
		w.WriteByte(fmtInt32)
		w.WriteUint32(uint32(int32(n)))
	case n > math.MaxUint32:
		w.WriteByte(fmtUint64)
		w.WriteUint64(uint64(n))
	case n < math.MinInt32:
		w.WriteByte(fmtInt64)
		w.WriteUint64(uint64(n))
	default:
		// Unreachable: every int64 value falls into one of the ranges
		// above, since Integer is a fixed-width int64. Kept as a
		// defensive fallback rather than a panic.
		return &EncodeError{Kind: ErrIntegerTooLarge, Int: n}
	}
	return nil
}

func encodeString(w *wire.Writer, s string) error {
	n := len(s)
	switch {
	case n <= fixstrMax:
		w.WriteByte(byte(0xa0 + n))
	case n <= 0xff:
		w.WriteByte(fmtStr8)
		w.WriteByte(byte(n))
	case n <= 0xffff:
		w.WriteByte(fmtStr16)
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(fmtStr32)
		w.WriteUint32(uint32(n))
	default:
		return &EncodeError{Kind: ErrStringTooLong, Len: n}
	}
	w.WriteBytes([]byte(s))
	return nil
}

func encodeBinary(w *wire.Writer, b []byte) error {
	n := len(b)
	switch {
	case n <= 0xff:
		w.WriteByte(fmtBin8)
		w.WriteByte(byte(n))
	case n <= 0xffff:
		w.WriteByte(fmtBin16)
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(fmtBin32)
		w.WriteUint32(uint32(n))
	default:
		return &EncodeError{Kind: ErrBinaryTooLong, Len: n}
	}
	w.WriteBytes(b)
	return nil
}

func encodeArray(w *wire.Writer, items []Value) error {
	n := len(items)
	switch {
	case n <= fixarrayMax:
		w.WriteByte(byte(0x90 + n))
	case n <= 0xffff:
		w.WriteByte(fmtArray16)
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(fmtArray32)
		w.WriteUint32(uint32(n))
	default:
		return &EncodeError{Kind: ErrArrayTooLong, Len: n}
	}
	for _, it := range items {
		if err := encodeValue(w, it); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(w *wire.Writer, pairs []KV) error {
	n := len(pairs)
	switch {
	case n <= fixmapMax:
		w.WriteByte(byte(0x80 + n))
	case n <= 0xffff:
		w.WriteByte(fmtMap16)
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(fmtMap32)
		w.WriteUint32(uint32(n))
	default:
		return &EncodeError{Kind: ErrMapTooLong, Len: n}
	}
	for _, kv := range pairs {
		if err := encodeValue(w, kv.Key); err != nil {
			return err
		}
		if err := encodeValue(w, kv.Val); err != nil {
			return err
		}
	}
	return nil
}

// fixextSizes are the lengths that take the compact fixext1..16 form.
// Fixext sizes take priority over the general ext8/16/32 forms.
var fixextSizes = map[int]byte{1: 0, 2: 1, 4: 2, 8: 3, 16: 4}

func encodeExtension(w *wire.Writer, ext Extension) error {
	n := len(ext.Data)
	if idx, ok := fixextSizes[n]; ok {
		w.WriteByte(fmtFixExt1 + idx)
		w.WriteByte(byte(ext.Type))
		w.WriteBytes(ext.Data)
		return nil
	}
	switch {
	case n <= 0xff:
		w.WriteByte(fmtExt8)
		w.WriteByte(byte(n))
	case n <= 0xffff:
		w.WriteByte(fmtExt16)
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(fmtExt32)
		w.WriteUint32(uint32(n))
	default:
		return &EncodeError{Kind: ErrExtensionDataTooLong, Len: n}
	}
	w.WriteByte(byte(ext.Type))
	w.WriteBytes(ext.Data)
	return nil
}
