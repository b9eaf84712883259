package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Zstd is a Codec backed by github.com/klauspost/compress/zstd. The zero
// value is ready to use; encoder and decoder are built lazily on first use
// and reused across calls.
type Zstd struct {
	once sync.Once
	enc  *zstd.Encoder
	dec  *zstd.Decoder
	err  error
}

func (z *Zstd) init() {
	z.once.Do(func() {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			z.err = fmt.Errorf("compress: zstd encoder: %w", err)
			return
		}
		dec, err := zstd.NewReader(nil)
		if err != nil {
			z.err = fmt.Errorf("compress: zstd decoder: %w", err)
			return
		}
		z.enc, z.dec = enc, dec
	})
}

func (z *Zstd) Compress(data []byte) ([]byte, error) {
	z.init()
	if z.err != nil {
		return nil, z.err
	}
	return z.enc.EncodeAll(data, nil), nil
}

func (z *Zstd) Decompress(data []byte) ([]byte, error) {
	z.init()
	if z.err != nil {
		return nil, z.err
	}
	return z.dec.DecodeAll(data, nil)
}

var _ Codec = (*Zstd)(nil)
