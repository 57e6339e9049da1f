package builder

import (
	"io"

	"github.com/joeydtaylor/unbase/pkg/internal/pipeline"
	"github.com/joeydtaylor/unbase/pkg/internal/sink"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

type Pipeline = types.Pipeline

type PipelineResult = types.PipelineResult

type PipelineOption = types.Option[types.Pipeline]

type StageError = pipeline.StageError

// Error kinds returned by Pipeline.Run.
var (
	ErrInputUnreadable   = pipeline.ErrInputUnreadable
	ErrMalformedEncoding = pipeline.ErrMalformedEncoding
	ErrDecompression     = pipeline.ErrDecompression
	ErrOutputUnwritable  = pipeline.ErrOutputUnwritable
	ErrMirrorFailed      = pipeline.ErrMirrorFailed
	ErrInvalidConfig     = pipeline.ErrInvalidConfig
)

func NewPipeline(options ...types.Option[types.Pipeline]) types.Pipeline {
	return pipeline.NewPipeline(options...)
}

func PipelineWithInputPath(path string) types.Option[types.Pipeline] {
	return pipeline.WithInputPath(path)
}

func PipelineWithOutputPath(path string, options ...sink.FileSinkOption) types.Option[types.Pipeline] {
	return pipeline.WithOutputPath(path, options...)
}

func PipelineWithOutput(s types.PayloadSink) types.Option[types.Pipeline] {
	return pipeline.WithOutput(s)
}

func PipelineWithMirror(s ...types.PayloadSink) types.Option[types.Pipeline] {
	return pipeline.WithMirror(s...)
}

func PipelineWithDecoder(d types.Decoder[[]byte]) types.Option[types.Pipeline] {
	return pipeline.WithDecoder(d)
}

func PipelineWithDecompression(algorithm string) types.Option[types.Pipeline] {
	return pipeline.WithDecompression(algorithm)
}

func PipelineWithStdout(w io.Writer) types.Option[types.Pipeline] {
	return pipeline.WithStdout(w)
}

func PipelineWithLogger(l ...types.Logger) types.Option[types.Pipeline] {
	return pipeline.WithLogger(l...)
}

func PipelineWithComponentMetadata(name string, id string) types.Option[types.Pipeline] {
	return pipeline.WithComponentMetadata(name, id)
}
