// Package compress wraps a packed MessagePack value with an optional
// compression pass, for payloads where the wire size matters more than the
// cost of a compress/decompress round trip (large batches, cold storage).
package compress

// Compressor compresses an already-packed MessagePack buffer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; the same value is typically both.
type Codec interface {
	Compressor
	Decompressor
}
