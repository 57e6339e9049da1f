package pipeline

import (
	"io"

	"github.com/joeydtaylor/unbase/pkg/internal/sink"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

// WithInputPath sets the encoded input file.
func WithInputPath(path string) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetInputPath(path)
	}
}

// WithOutputPath writes the decoded payload to a local file at path.
func WithOutputPath(path string, options ...sink.FileSinkOption) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetOutput(sink.NewFileSink(path, options...))
	}
}

// WithOutput sets the primary sink.
func WithOutput(s types.PayloadSink) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetOutput(s)
	}
}

// WithMirror adds sinks that receive the payload after the primary write.
func WithMirror(s ...types.PayloadSink) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectMirror(s...)
	}
}

// WithDecoder replaces the base64 decoder.
func WithDecoder(d types.Decoder[[]byte]) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetDecoder(d)
	}
}

// WithDecompression inflates the decoded payload before writing. An unknown
// algorithm makes Run fail with ErrInvalidConfig.
func WithDecompression(algorithm string) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		_ = p.SetDecompression(algorithm)
	}
}

// WithStdout redirects the confirmation line.
func WithStdout(w io.Writer) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetStdout(w)
	}
}

// WithLogger registers loggers for the pipeline.
func WithLogger(l ...types.Logger) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectLogger(l...)
	}
}

// WithComponentMetadata sets the pipeline name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetComponentMetadata(name, id)
	}
}
