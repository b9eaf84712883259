package compress

import (
	mp "github.com/unkn0wn-root/packmsg"
	"github.com/unkn0wn-root/packmsg/codec"
)

// Packed composes a codec.Codec[T] with a Codec so values can be packed,
// compressed, and written as one buffer, and read back by reversing the
// same steps.
type Packed[T any] struct {
	inner codec.Codec[T]
	c     Codec
}

// Wrap builds a Packed around inner using c for both directions.
func Wrap[T any](inner codec.Codec[T], c Codec) Packed[T] {
	return Packed[T]{inner: inner, c: c}
}

// Pack encodes v through the wrapped codec, packs it to MessagePack, and
// compresses the result.
func (p Packed[T]) Pack(v T) ([]byte, error) {
	b, err := mp.Pack(p.inner.Encode(v))
	if err != nil {
		return nil, err
	}
	return p.c.Compress(b)
}

// Unpack reverses Pack: decompress, unpack exactly one Value, decode it
// through the wrapped codec.
func (p Packed[T]) Unpack(data []byte) (T, error) {
	var zero T
	raw, err := p.c.Decompress(data)
	if err != nil {
		return zero, err
	}
	v, err := mp.UnpackExact(raw)
	if err != nil {
		return zero, err
	}
	return p.inner.Decode(v)
}
