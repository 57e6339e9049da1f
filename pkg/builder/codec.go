package builder

import (
	"github.com/joeydtaylor/unbase/pkg/internal/codec"
)

type Compression = codec.Compression

type Base64Encoder = codec.Base64Encoder

type Base64Decoder = codec.Base64Decoder

const (
	CompressNone   = codec.CompressNone
	CompressGzip   = codec.CompressGzip
	CompressZstd   = codec.CompressZstd
	CompressSnappy = codec.CompressSnappy
	CompressBrotli = codec.CompressBrotli
	CompressLZ4    = codec.CompressLZ4
)

// NewBase64Decoder creates the strict standard-alphabet decoder.
func NewBase64Decoder() *codec.Base64Decoder {
	return codec.NewBase64Decoder()
}

// NewBase64Encoder creates a standard-alphabet encoder.
func NewBase64Encoder() *codec.Base64Encoder {
	return codec.NewBase64Encoder()
}

// ParseCompression validates a compression name.
func ParseCompression(name string) (Compression, error) {
	return codec.ParseCompression(name)
}
