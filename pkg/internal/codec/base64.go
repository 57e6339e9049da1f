package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
)

// Base64Decoder decodes padded standard-alphabet base64 text.
//
// Leading and trailing whitespace is trimmed before decoding. Any other byte
// outside the alphabet, or a bad padding length, is rejected. Embedded CR and
// LF are skipped so line-wrapped input (as produced by base64(1)) decodes.
type Base64Decoder struct {
	enc *base64.Encoding
}

func NewBase64Decoder() *Base64Decoder {
	return &Base64Decoder{enc: base64.StdEncoding}
}

// Decode reads r to EOF and decodes the trimmed text.
func (d *Base64Decoder) Decode(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.DecodeBytes(raw)
}

// DecodeBytes decodes an in-memory encoded payload.
func (d *Base64Decoder) DecodeBytes(raw []byte) ([]byte, error) {
	enc := d.enc
	if enc == nil {
		enc = base64.StdEncoding
	}

	text := bytes.TrimSpace(raw)
	out := make([]byte, enc.DecodedLen(len(text)))
	n, err := enc.Decode(out, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return out[:n], nil
}

// Base64Encoder writes the padded standard-alphabet encoding of a payload.
type Base64Encoder struct {
	// Newline appends a trailing "\n" after the encoded text.
	Newline bool
}

func NewBase64Encoder() *Base64Encoder {
	return &Base64Encoder{}
}

func (e *Base64Encoder) Encode(w io.Writer, data []byte) error {
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := enc.Write(data); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if e.Newline {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
