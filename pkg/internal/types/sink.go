package types

import "context"

// PayloadSink persists a complete decoded payload to a single destination.
// Write is called once per run with the full payload.
type PayloadSink interface {
	Write(ctx context.Context, data []byte) error
	// Location names the destination, e.g. a file path or s3://bucket/key.
	Location() string
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
