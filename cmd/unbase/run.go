package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joeydtaylor/unbase/pkg/builder"
)

const (
	inputPath  = "ghana_voice_ledger_base64.txt"
	outputPath = "GhanaVoiceLedger.zip"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// run performs one decode and returns the process exit code. Errors are
// printed to stderr; stdout carries only the confirmation line.
func run(ctx context.Context, stdout, stderr io.Writer) int {
	logger := builder.NewLogger(
		builder.LoggerWithLevel(builder.EnvOr("UNBASE_LOG_LEVEL", "warn")),
		builder.LoggerWithWriter(stderr),
	)
	defer func() { _ = logger.Flush() }()

	var fileOpts []builder.FileSinkOption
	fileOpts = append(fileOpts, builder.FileSinkWithLogger(logger))
	if mb := builder.EnvIntOr("UNBASE_MIN_FREE_MB", 0); mb > 0 {
		fileOpts = append(fileOpts, builder.FileSinkWithSpaceCheck(uint64(mb)<<20))
	}

	opts := []builder.PipelineOption{
		builder.PipelineWithInputPath(inputPath),
		builder.PipelineWithOutputPath(outputPath, fileOpts...),
		builder.PipelineWithDecompression(builder.EnvOr("UNBASE_DECOMPRESS", "none")),
		builder.PipelineWithStdout(stdout),
		builder.PipelineWithLogger(logger),
	}

	mirror, err := s3Mirror(ctx, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	if mirror != nil {
		opts = append(opts, builder.PipelineWithMirror(mirror))
	}

	if _, err := builder.NewPipeline(opts...).Run(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitOK
}

// s3Mirror returns nil when no bucket is configured.
func s3Mirror(ctx context.Context, logger builder.Logger) (builder.PayloadSink, error) {
	bucket := builder.EnvOr("UNBASE_S3_BUCKET", "")
	if bucket == "" {
		return nil, nil
	}

	endpoint := builder.EnvOr("UNBASE_S3_ENDPOINT", "")
	cli, err := builder.NewS3Client(ctx, builder.S3ClientConfig{
		Region:               builder.EnvOr("UNBASE_S3_REGION", "us-east-1"),
		Endpoint:             endpoint,
		ForcePathStyle:       builder.EnvBoolOr("UNBASE_S3_PATH_STYLE", endpoint != ""),
		AccessKey:            builder.EnvOr("UNBASE_S3_ACCESS_KEY", ""),
		SecretKey:            builder.EnvOr("UNBASE_S3_SECRET_KEY", ""),
		RoleARN:              builder.EnvOr("UNBASE_S3_ROLE_ARN", ""),
		SessionName:          builder.EnvOr("UNBASE_S3_SESSION_NAME", "unbase"),
		WebIdentityTokenFile: builder.EnvOr("AWS_WEB_IDENTITY_TOKEN_FILE", ""),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	key := builder.EnvOr("UNBASE_S3_KEY", filepath.Base(outputPath))
	opts := []builder.S3SinkOption{builder.S3SinkWithLogger(logger)}
	if sse := strings.ToLower(builder.EnvOr("UNBASE_S3_SSE", "")); sse != "" {
		opts = append(opts, builder.S3SinkWithSSE(sse, builder.EnvOr("UNBASE_S3_KMS_KEY_ID", "")))
	}
	return builder.NewS3Sink(cli, builder.S3SinkConfig{Bucket: bucket, Key: key}, opts...), nil
}
