package codec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Compression names an algorithm applied to a payload before it was encoded.
type Compression string

const (
	CompressNone   Compression = "none"
	CompressGzip   Compression = "gzip"
	CompressZstd   Compression = "zstd"
	CompressSnappy Compression = "snappy"
	CompressBrotli Compression = "brotli"
	CompressLZ4    Compression = "lz4"
)

// ParseCompression maps a user-supplied name onto a Compression.
// The empty string means none.
func ParseCompression(name string) (Compression, error) {
	switch n := Compression(strings.ToLower(strings.TrimSpace(name))); n {
	case "", CompressNone:
		return CompressNone, nil
	case "deflate":
		return CompressGzip, nil
	case CompressGzip, CompressZstd, CompressSnappy, CompressBrotli, CompressLZ4:
		return n, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// Decompress inflates data with the given algorithm. CompressNone returns
// data as-is.
func Decompress(algorithm Compression, data []byte) ([]byte, error) {
	if algorithm == CompressNone || algorithm == "" {
		return data, nil
	}

	var r io.Reader
	switch algorithm {
	case CompressGzip:
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecompression, algorithm, err)
		}
		defer gz.Close()
		r = gz
	case CompressZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecompression, algorithm, err)
		}
		defer zr.Close()
		r = zr
	case CompressSnappy:
		r = snappy.NewReader(bytes.NewReader(data))
	case CompressBrotli:
		r = brotli.NewReader(bytes.NewReader(data))
	case CompressLZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, string(algorithm))
	}

	var b bytes.Buffer
	if _, err := io.Copy(&b, r); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecompression, algorithm, err)
	}
	return b.Bytes(), nil
}
