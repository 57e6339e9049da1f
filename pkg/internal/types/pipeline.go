package types

import (
	"context"
	"io"
)

// PipelineResult summarizes one completed decode run.
type PipelineResult struct {
	InputPath    string
	OutputPath   string
	EncodedBytes int    // bytes read from the input file, before trimming
	DecodedBytes int    // bytes written to the output
	SHA256       string // hex digest of the written payload
	Mirrors      []string
}

// Pipeline reads an encoded payload, decodes it and persists the result.
type Pipeline interface {
	Run(ctx context.Context) (PipelineResult, error)

	SetInputPath(path string)
	SetOutput(sink PayloadSink)
	ConnectMirror(...PayloadSink)
	SetDecoder(Decoder[[]byte])
	SetDecompression(algorithm string) error
	SetStdout(w io.Writer)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
