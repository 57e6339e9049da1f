package types

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3PutObjectAPI is the subset of *s3.Client used by the S3 sink.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3SinkConfig describes where and how a payload is mirrored to S3.
type S3SinkConfig struct {
	Bucket      string // required
	Key         string // required
	ContentType string // derived from the key extension when empty

	// Server-side encryption
	SSEMode  string // "" | "AES256" | "aws:kms"
	KMSKeyID string // used when SSEMode=="aws:kms"
}
