package types

import "io"

// ComponentMetadata identifies a pipeline or sink in log output.
type ComponentMetadata struct {
	ID   string
	Type string // e.g. PIPELINE, FILE_SINK, S3_SINK
	Name string // optional, caller supplied
}

// Option configures a component of type T at construction time.
type Option[T any] func(T)

// Decoder turns the full contents of r into a T.
type Decoder[T any] interface {
	Decode(r io.Reader) (T, error)
}

// Encoder writes the encoded form of v to w.
type Encoder[T any] interface {
	Encode(w io.Writer, v T) error
}
