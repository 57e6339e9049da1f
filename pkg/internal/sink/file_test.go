package sink_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/joeydtaylor/unbase/pkg/internal/sink"
)

func TestFileSink_CreatesAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "GhanaVoiceLedger.zip")
	s := sink.NewFileSink(path)

	if err := s.Write(context.Background(), []byte("hello")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("unexpected contents %q", got)
	}
	if s.Location() != path {
		t.Fatalf("unexpected location %q", s.Location())
	}
}

func TestFileSink_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 64), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := sink.NewFileSink(path)
	if err := s.Write(context.Background(), []byte("short")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "short" {
		t.Fatalf("expected truncated contents, got %q", got)
	}
}

func TestFileSink_EmptyPayloadCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.zip")
	if err := sink.NewFileSink(path).Write(context.Background(), nil); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected zero bytes, got %d", info.Size())
	}
}

func TestFileSink_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}
	path := filepath.Join(t.TempDir(), "private.bin")
	s := sink.NewFileSink(path, sink.FileSinkWithPermissions(0o600))
	if err := s.Write(context.Background(), []byte("x")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600, got %v", info.Mode().Perm())
	}
}

func TestFileSink_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.zip")
	if err := sink.NewFileSink(path).Write(context.Background(), []byte("x")); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}

func TestFileSink_EmptyPath(t *testing.T) {
	if err := sink.NewFileSink("").Write(context.Background(), []byte("x")); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestFileSink_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sink.NewFileSink(path).Write(ctx, []byte("x")); err == nil {
		t.Fatalf("expected context error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file after canceled write, stat err=%v", err)
	}
}

func TestFileSink_SpaceCheckPassesOnRealVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	s := sink.NewFileSink(path, sink.FileSinkWithSpaceCheck(0))
	if err := s.Write(context.Background(), []byte("hello")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
}

func TestFileSink_Metadata(t *testing.T) {
	s := sink.NewFileSink("x")
	if s.GetComponentMetadata().Type != "FILE_SINK" {
		t.Fatalf("unexpected type %q", s.GetComponentMetadata().Type)
	}
	s.SetComponentMetadata("output", "file-1")
	meta := s.GetComponentMetadata()
	if meta.Name != "output" || meta.ID != "file-1" || meta.Type != "FILE_SINK" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
}
