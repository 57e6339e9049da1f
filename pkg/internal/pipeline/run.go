package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeydtaylor/unbase/pkg/internal/codec"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
	"github.com/joeydtaylor/unbase/pkg/internal/utils"
	"github.com/joeydtaylor/unbase/pkg/logschema"
)

type runConfig struct {
	inputPath   string
	output      types.PayloadSink
	mirrors     []types.PayloadSink
	decoder     types.Decoder[[]byte]
	compression codec.Compression
	stdout      io.Writer
	err         error
}

func (p *Pipeline) snapshotConfig() runConfig {
	p.configLock.Lock()
	defer p.configLock.Unlock()
	return runConfig{
		inputPath:   p.inputPath,
		output:      p.output,
		mirrors:     append([]types.PayloadSink(nil), p.mirrors...),
		decoder:     p.decoder,
		compression: p.compression,
		stdout:      p.stdout,
		err:         p.configErr,
	}
}

func (p *Pipeline) run(ctx context.Context) (types.PipelineResult, error) {
	if !p.freeze() {
		return types.PipelineResult{}, ErrAlreadyRunning
	}
	defer p.thaw()

	cfg := p.snapshotConfig()
	result := types.PipelineResult{InputPath: cfg.inputPath}

	if err := validate(cfg); err != nil {
		return result, p.fail(err)
	}
	result.OutputPath = cfg.output.Location()

	if err := ctx.Err(); err != nil {
		return result, err
	}
	raw, err := readInput(cfg.inputPath)
	if err != nil {
		return result, p.fail(stageErr(StageRead, ErrInputUnreadable, cfg.inputPath, err))
	}
	result.EncodedBytes = len(raw)
	p.stageDone(StageRead, cfg.inputPath, len(raw))

	if err := ctx.Err(); err != nil {
		return result, err
	}
	payload, err := cfg.decoder.Decode(bytes.NewReader(raw))
	if err != nil {
		return result, p.fail(stageErr(StageDecode, ErrMalformedEncoding, cfg.inputPath, err))
	}
	p.stageDone(StageDecode, cfg.inputPath, len(payload))

	if cfg.compression != codec.CompressNone {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		payload, err = codec.Decompress(cfg.compression, payload)
		if err != nil {
			return result, p.fail(stageErr(StageDecompress, ErrDecompression, string(cfg.compression), err))
		}
		p.stageDone(StageDecompress, string(cfg.compression), len(payload))
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := cfg.output.Write(ctx, payload); err != nil {
		return result, p.fail(stageErr(StageWrite, ErrOutputUnwritable, result.OutputPath, err))
	}
	result.DecodedBytes = len(payload)
	result.SHA256 = utils.SHA256Hex(payload)
	p.stageDone(StageWrite, result.OutputPath, len(payload))

	for _, m := range cfg.mirrors {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		loc := m.Location()
		if err := m.Write(ctx, payload); err != nil {
			return result, p.fail(stageErr(StageMirror, ErrMirrorFailed, loc, err))
		}
		result.Mirrors = append(result.Mirrors, loc)
		p.stageDone(StageMirror, loc, len(payload))
	}

	if _, err := fmt.Fprintf(cfg.stdout, "%s created successfully: %s\n", utils.ArtifactLabel(result.OutputPath), result.OutputPath); err != nil {
		p.NotifyLoggers(types.WarnLevel, "Confirm",
			logschema.FieldComponent, p.componentMetadata,
			logschema.FieldEvent, "Confirm",
			logschema.FieldResult, logschema.ResultFailure,
			logschema.FieldError, err,
		)
	}

	p.NotifyLoggers(types.InfoLevel, "Run",
		logschema.FieldComponent, p.componentMetadata,
		logschema.FieldEvent, "Run",
		logschema.FieldResult, logschema.ResultSuccess,
		logschema.FieldPath, result.OutputPath,
		logschema.FieldBytes, result.DecodedBytes,
		"sha256", result.SHA256,
	)
	return result, nil
}

func validate(cfg runConfig) error {
	switch {
	case cfg.err != nil:
		return stageErr(StageConfig, ErrInvalidConfig, "", cfg.err)
	case cfg.inputPath == "":
		return stageErr(StageConfig, ErrInvalidConfig, "", errors.New("input path is required"))
	case cfg.output == nil:
		return stageErr(StageConfig, ErrInvalidConfig, "", errors.New("output sink is required"))
	case cfg.decoder == nil:
		return stageErr(StageConfig, ErrInvalidConfig, "", errors.New("decoder is required"))
	}
	return nil
}

// readInput loads the whole input file; the handle is closed before returning.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return codec.NewBinaryDecoder().Decode(f)
}

func (p *Pipeline) stageDone(stage Stage, path string, n int) {
	p.NotifyLoggers(types.DebugLevel, string(stage),
		logschema.FieldComponent, p.componentMetadata,
		logschema.FieldEvent, string(stage),
		logschema.FieldResult, logschema.ResultSuccess,
		logschema.FieldPath, path,
		logschema.FieldBytes, n,
	)
}

func (p *Pipeline) fail(err error) error {
	stage := ""
	var se *StageError
	if errors.As(err, &se) {
		stage = string(se.Stage)
	}
	p.NotifyLoggers(types.ErrorLevel, "Run",
		logschema.FieldComponent, p.componentMetadata,
		logschema.FieldEvent, "Run",
		logschema.FieldResult, logschema.ResultFailure,
		"stage", stage,
		logschema.FieldError, err,
	)
	return err
}
