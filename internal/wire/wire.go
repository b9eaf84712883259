// Package wire provides bounds-checked, big-endian byte-cursor primitives
// used by packmsg's encoder and decoder.
//
// Reader never panics on short input: every multi-byte read is preceded by
// a length check and returns ok=false on underrun, leaving the caller to
// produce the appropriate DecodeError. Writer pre-sizes its buffer via
// Grow to avoid reallocation on the common path.
package wire

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Reader is a forward-only cursor over a byte slice.
type Reader struct {
	b []byte
}

// NewReader wraps b in a Reader. b is not copied.
func NewReader(b []byte) Reader { return Reader{b: b} }

// Len returns the number of unread bytes.
func (r Reader) Len() int { return len(r.b) }

// Rest returns all remaining unread bytes.
func (r Reader) Rest() []byte { return r.b }

// PeekByte returns the next byte without consuming it.
func (r Reader) PeekByte() (byte, bool) {
	if len(r.b) < 1 {
		return 0, false
	}
	return r.b[0], true
}

// ReadByte consumes and returns one byte.
func (r *Reader) ReadByte() (byte, bool) {
	if len(r.b) < 1 {
		return 0, false
	}
	v := r.b[0]
	r.b = r.b[1:]
	return v, true
}

// ReadN consumes and returns the next n bytes.
func (r *Reader) ReadN(n int) ([]byte, bool) {
	if n < 0 || len(r.b) < n {
		return nil, false
	}
	v := r.b[:n]
	r.b = r.b[n:]
	return v, true
}

// ReadUint8 consumes one byte as an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, bool) {
	v, ok := r.ReadByte()
	return v, ok
}

// ReadUint16 consumes two bytes as a big-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, bool) {
	b, ok := r.ReadN(2)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint16(b), true
}

// ReadUint32 consumes four bytes as a big-endian unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, bool) {
	b, ok := r.ReadN(4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

// ReadUint64 consumes eight bytes as a big-endian unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, bool) {
	b, ok := r.ReadN(8)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint64(b), true
}

// ReadInt8 consumes one byte as a two's-complement signed 8-bit integer.
func (r *Reader) ReadInt8() (int8, bool) {
	v, ok := r.ReadUint8()
	return int8(v), ok
}

// ReadInt16 consumes two bytes as a two's-complement signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, bool) {
	v, ok := r.ReadUint16()
	return int16(v), ok
}

// ReadInt32 consumes four bytes as a two's-complement signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, bool) {
	v, ok := r.ReadUint32()
	return int32(v), ok
}

// ReadInt64 consumes eight bytes as a two's-complement signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, bool) {
	v, ok := r.ReadUint64()
	return int64(v), ok
}

// ReadFloat64 consumes eight bytes as a big-endian IEEE-754 float64.
func (r *Reader) ReadFloat64() (float64, bool) {
	v, ok := r.ReadUint64()
	if !ok {
		return 0, false
	}
	return math.Float64frombits(v), true
}

// Writer is an append-only, pre-sizable byte sink.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns a Writer with its buffer pre-grown to capacity hint.
func NewWriter(hint int) *Writer {
	w := &Writer{}
	if hint > 0 {
		w.buf.Grow(hint)
	}
	return w
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) { w.buf.WriteByte(b) }

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) { w.buf.Write(b) }

// WriteUint16 appends v as big-endian.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint32 appends v as big-endian.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64 appends v as big-endian.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteFloat64 appends v as a big-endian IEEE-754 float64.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}
