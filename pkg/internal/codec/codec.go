package codec

import (
	"errors"
	"io"

	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

var (
	// ErrMalformedEncoding reports text that is not valid padded standard base64.
	ErrMalformedEncoding = errors.New("malformed base64 payload")
	// ErrDecompression reports a decoded payload that the configured algorithm cannot inflate.
	ErrDecompression = errors.New("payload decompression failed")
	// ErrUnknownCompression reports an unsupported compression name.
	ErrUnknownCompression = errors.New("unknown compression algorithm")
)

var (
	_ types.Decoder[[]byte] = (*Base64Decoder)(nil)
	_ types.Decoder[[]byte] = (*BinaryDecoder)(nil)
	_ types.Encoder[[]byte] = (*Base64Encoder)(nil)
)

// BinaryDecoder returns everything it reads, unchanged.
type BinaryDecoder struct{}

func NewBinaryDecoder() *BinaryDecoder { return &BinaryDecoder{} }

func (*BinaryDecoder) Decode(r io.Reader) ([]byte, error) { return io.ReadAll(r) }
