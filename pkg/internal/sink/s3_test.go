package sink_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/joeydtaylor/unbase/pkg/internal/sink"
	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

type fakeS3 struct {
	calls []*s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls = append(f.calls, in)
	if in.Body != nil {
		b, err := io.ReadAll(in.Body)
		if err != nil {
			return nil, err
		}
		f.body = b
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Sink_PutsPayload(t *testing.T) {
	cli := &fakeS3{}
	s := sink.NewS3Sink(cli, types.S3SinkConfig{Bucket: "ledger", Key: "exports/GhanaVoiceLedger.zip"})

	if err := s.Write(context.Background(), []byte("PK\x03\x04")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if len(cli.calls) != 1 {
		t.Fatalf("expected 1 PutObject, got %d", len(cli.calls))
	}
	in := cli.calls[0]
	if aws.ToString(in.Bucket) != "ledger" || aws.ToString(in.Key) != "exports/GhanaVoiceLedger.zip" {
		t.Fatalf("unexpected target %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != "application/zip" {
		t.Fatalf("unexpected content type %q", aws.ToString(in.ContentType))
	}
	if aws.ToInt64(in.ContentLength) != 4 || string(cli.body) != "PK\x03\x04" {
		t.Fatalf("unexpected body %q (len %d)", cli.body, aws.ToInt64(in.ContentLength))
	}
	if in.ServerSideEncryption != "" {
		t.Fatalf("expected no SSE, got %q", in.ServerSideEncryption)
	}
	if s.Location() != "s3://ledger/exports/GhanaVoiceLedger.zip" {
		t.Fatalf("unexpected location %q", s.Location())
	}
}

func TestS3Sink_SSE(t *testing.T) {
	cli := &fakeS3{}
	s := sink.NewS3Sink(cli, types.S3SinkConfig{Bucket: "b", Key: "k.bin"},
		sink.S3SinkWithSSE("aws:kms", "alias/ledger"),
		sink.S3SinkWithContentType("application/x-ledger"),
	)
	if err := s.Write(context.Background(), []byte("x")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	in := cli.calls[0]
	if in.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms {
		t.Fatalf("expected aws:kms, got %q", in.ServerSideEncryption)
	}
	if aws.ToString(in.SSEKMSKeyId) != "alias/ledger" {
		t.Fatalf("unexpected kms key %q", aws.ToString(in.SSEKMSKeyId))
	}
	if aws.ToString(in.ContentType) != "application/x-ledger" {
		t.Fatalf("unexpected content type %q", aws.ToString(in.ContentType))
	}

	cli = &fakeS3{}
	s = sink.NewS3Sink(cli, types.S3SinkConfig{Bucket: "b", Key: "k"}, sink.S3SinkWithSSE("AES256", ""))
	if err := s.Write(context.Background(), []byte("x")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if cli.calls[0].ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256, got %q", cli.calls[0].ServerSideEncryption)
	}
	if aws.ToString(cli.calls[0].ContentType) != "application/octet-stream" {
		t.Fatalf("unexpected content type %q", aws.ToString(cli.calls[0].ContentType))
	}
}

func TestS3Sink_InvalidConfig(t *testing.T) {
	cases := map[string]*sink.S3Sink{
		"nil client": sink.NewS3Sink(nil, types.S3SinkConfig{Bucket: "b", Key: "k"}),
		"no bucket":  sink.NewS3Sink(&fakeS3{}, types.S3SinkConfig{Key: "k"}),
		"no key":     sink.NewS3Sink(&fakeS3{}, types.S3SinkConfig{Bucket: "b"}),
		"kms no key": sink.NewS3Sink(&fakeS3{}, types.S3SinkConfig{Bucket: "b", Key: "k", SSEMode: "aws:kms"}),
		"bad sse":    sink.NewS3Sink(&fakeS3{}, types.S3SinkConfig{Bucket: "b", Key: "k", SSEMode: "rot13"}),
	}
	for name, s := range cases {
		if err := s.Write(context.Background(), []byte("x")); !errors.Is(err, sink.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestS3Sink_PropagatesPutError(t *testing.T) {
	boom := errors.New("access denied")
	s := sink.NewS3Sink(&fakeS3{err: boom}, types.S3SinkConfig{Bucket: "b", Key: "k"})
	if err := s.Write(context.Background(), []byte("x")); !errors.Is(err, boom) {
		t.Fatalf("expected put error, got %v", err)
	}
}
