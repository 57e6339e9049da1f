package pipeline

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/joeydtaylor/unbase/pkg/internal/codec"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
	"github.com/joeydtaylor/unbase/pkg/internal/utils"
)

// Pipeline reads a base64 text file, decodes it and writes the bytes to an
// output sink, then to any mirrors. Configuration is frozen while Run executes;
// setters called during a run panic.
type Pipeline struct {
	componentMetadata types.ComponentMetadata

	configLock  sync.Mutex
	inputPath   string
	output      types.PayloadSink
	mirrors     []types.PayloadSink
	decoder     types.Decoder[[]byte]
	compression codec.Compression
	stdout      io.Writer
	configErr   error

	loggers     []types.Logger
	loggersLock sync.Mutex

	running int32
}

// NewPipeline constructs a Pipeline with defaults and applies options.
// Defaults: standard base64 decoding, no decompression, confirmation on os.Stdout.
func NewPipeline(options ...types.Option[types.Pipeline]) types.Pipeline {
	p := &Pipeline{
		decoder:     codec.NewBase64Decoder(),
		compression: codec.CompressNone,
		stdout:      os.Stdout,
		loggers:     make([]types.Logger, 0),
		mirrors:     make([]types.PayloadSink, 0),
		componentMetadata: types.ComponentMetadata{
			Type: "PIPELINE",
			ID:   utils.GenerateUniqueHash(),
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	return p
}

// Run executes one decode. See run.go.
func (p *Pipeline) Run(ctx context.Context) (types.PipelineResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return p.run(ctx)
}

var _ types.Pipeline = (*Pipeline)(nil)
