package builder

import (
	"os"

	"github.com/joeydtaylor/unbase/pkg/internal/sink"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

type PayloadSink = types.PayloadSink

type FileSinkOption = sink.FileSinkOption

type S3SinkOption = sink.S3SinkOption

type S3SinkConfig = types.S3SinkConfig

type S3PutObjectAPI = types.S3PutObjectAPI

var ErrInsufficientSpace = sink.ErrInsufficientSpace

func NewFileSink(path string, options ...sink.FileSinkOption) *sink.FileSink {
	return sink.NewFileSink(path, options...)
}

func FileSinkWithPermissions(perm os.FileMode) sink.FileSinkOption {
	return sink.FileSinkWithPermissions(perm)
}

func FileSinkWithSpaceCheck(marginBytes uint64) sink.FileSinkOption {
	return sink.FileSinkWithSpaceCheck(marginBytes)
}

func FileSinkWithLogger(l ...types.Logger) sink.FileSinkOption {
	return sink.FileSinkWithLogger(l...)
}

func NewS3Sink(cli types.S3PutObjectAPI, cfg types.S3SinkConfig, options ...sink.S3SinkOption) *sink.S3Sink {
	return sink.NewS3Sink(cli, cfg, options...)
}

func S3SinkWithSSE(mode, kmsKeyID string) sink.S3SinkOption {
	return sink.S3SinkWithSSE(mode, kmsKeyID)
}

func S3SinkWithContentType(contentType string) sink.S3SinkOption {
	return sink.S3SinkWithContentType(contentType)
}

func S3SinkWithLogger(l ...types.Logger) sink.S3SinkOption {
	return sink.S3SinkWithLogger(l...)
}
