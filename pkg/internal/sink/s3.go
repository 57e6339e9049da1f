package sink

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
	"github.com/joeydtaylor/unbase/pkg/internal/utils"
	"github.com/joeydtaylor/unbase/pkg/logschema"
)

// S3Sink mirrors a payload to a single S3 object.
type S3Sink struct {
	componentMetadata types.ComponentMetadata
	cli               types.S3PutObjectAPI
	cfg               types.S3SinkConfig

	loggers loggerSet
}

// S3SinkOption configures an S3Sink.
type S3SinkOption func(*S3Sink)

// NewS3Sink returns a sink that uploads to cfg.Bucket/cfg.Key through cli.
func NewS3Sink(cli types.S3PutObjectAPI, cfg types.S3SinkConfig, options ...S3SinkOption) *S3Sink {
	s := &S3Sink{
		cli: cli,
		cfg: cfg,
		componentMetadata: types.ComponentMetadata{
			Type: "S3_SINK",
			ID:   utils.GenerateUniqueHash(),
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// S3SinkWithSSE enables server-side encryption ("AES256" or "aws:kms").
func S3SinkWithSSE(mode, kmsKeyID string) S3SinkOption {
	return func(s *S3Sink) {
		s.cfg.SSEMode = mode
		s.cfg.KMSKeyID = kmsKeyID
	}
}

// S3SinkWithContentType overrides the content type derived from the key.
func S3SinkWithContentType(contentType string) S3SinkOption {
	return func(s *S3Sink) {
		s.cfg.ContentType = contentType
	}
}

// S3SinkWithLogger registers loggers for the sink.
func S3SinkWithLogger(l ...types.Logger) S3SinkOption {
	return func(s *S3Sink) {
		s.ConnectLogger(l...)
	}
}

func (s *S3Sink) validate() error {
	if s.cli == nil {
		return fmt.Errorf("%w: s3 client is required", ErrInvalidConfig)
	}
	if s.cfg.Bucket == "" {
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if s.cfg.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidConfig)
	}
	switch strings.ToLower(s.cfg.SSEMode) {
	case "", "aes256":
	case "aws:kms":
		if s.cfg.KMSKeyID == "" {
			return fmt.Errorf("%w: aws:kms requires a KMS key id", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported SSE mode %q", ErrInvalidConfig, s.cfg.SSEMode)
	}
	return nil
}

// Write uploads data as one PutObject call.
func (s *S3Sink) Write(ctx context.Context, data []byte) error {
	if err := s.validate(); err != nil {
		return err
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(s.cfg.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(s.contentType()),
	}
	switch strings.ToLower(s.cfg.SSEMode) {
	case "aes256":
		in.ServerSideEncryption = s3types.ServerSideEncryptionAes256
	case "aws:kms":
		in.ServerSideEncryption = s3types.ServerSideEncryptionAwsKms
		in.SSEKMSKeyId = aws.String(s.cfg.KMSKeyID)
	}

	if _, err := s.cli.PutObject(ctx, in); err != nil {
		s.loggers.notify(types.ErrorLevel, "PutObject",
			logschema.FieldComponent, s.componentMetadata,
			logschema.FieldEvent, "PutObject",
			logschema.FieldResult, logschema.ResultFailure,
			logschema.FieldPath, s.Location(),
			logschema.FieldError, err,
		)
		return err
	}

	s.loggers.notify(types.InfoLevel, "PutObject",
		logschema.FieldComponent, s.componentMetadata,
		logschema.FieldEvent, "PutObject",
		logschema.FieldResult, logschema.ResultSuccess,
		logschema.FieldPath, s.Location(),
		logschema.FieldBytes, len(data),
	)
	return nil
}

func (s *S3Sink) contentType() string {
	if s.cfg.ContentType != "" {
		return s.cfg.ContentType
	}
	switch ext := strings.ToLower(path.Ext(s.cfg.Key)); ext {
	case ".zip":
		return "application/zip"
	case "":
		return "application/octet-stream"
	default:
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
		return "application/octet-stream"
	}
}

// Location returns the object URI.
func (s *S3Sink) Location() string {
	return "s3://" + s.cfg.Bucket + "/" + strings.TrimPrefix(s.cfg.Key, "/")
}

// ConnectLogger registers loggers for the sink.
func (s *S3Sink) ConnectLogger(l ...types.Logger) { s.loggers.connect(l...) }

// GetComponentMetadata returns the sink metadata.
func (s *S3Sink) GetComponentMetadata() types.ComponentMetadata { return s.componentMetadata }

// SetComponentMetadata sets the sink name and ID.
func (s *S3Sink) SetComponentMetadata(name string, id string) {
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}

var (
	_ types.PayloadSink = (*FileSink)(nil)
	_ types.PayloadSink = (*S3Sink)(nil)
)
