package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func setup(t *testing.T, input *string) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("UNBASE_S3_BUCKET", "")
	t.Setenv("UNBASE_DECOMPRESS", "")
	t.Setenv("UNBASE_MIN_FREE_MB", "")
	t.Setenv("UNBASE_LOG_LEVEL", "")
	if input != nil {
		if err := os.WriteFile(inputPath, []byte(*input), 0o644); err != nil {
			t.Fatalf("write input: %v", err)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestRun_DecodesFixedPaths(t *testing.T) {
	setup(t, strPtr("aGVsbG8=\n"))

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr = %q", code, stderr.String())
	}

	got, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("output = %q, want hello", got)
	}
	if want := "ZIP file created successfully: GhanaVoiceLedger.zip\n"; stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr at warn level: %q", stderr.String())
	}
}

func TestRun_MissingInput(t *testing.T) {
	setup(t, nil)

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), &stdout, &stderr); code != exitFailure {
		t.Fatalf("exit = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr.String(), inputPath) {
		t.Fatalf("stderr %q does not name the input", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout = %q, want empty", stdout.String())
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Fatalf("output should not exist, stat err = %v", err)
	}
}

func TestRun_MalformedInput(t *testing.T) {
	setup(t, strPtr("aGVsbG8=!"))

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), &stdout, &stderr); code != exitFailure {
		t.Fatalf("exit = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr.String(), "malformed") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Fatalf("output should not exist, stat err = %v", err)
	}
}

func TestRun_UnknownDecompression(t *testing.T) {
	setup(t, strPtr("aGVsbG8="))
	t.Setenv("UNBASE_DECOMPRESS", "rar")

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), &stdout, &stderr); code != exitFailure {
		t.Fatalf("exit = %d, want %d", code, exitFailure)
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Fatalf("output should not exist, stat err = %v", err)
	}
}

func TestRun_InfoLogsGoToStderr(t *testing.T) {
	setup(t, strPtr("aGVsbG8="))
	t.Setenv("UNBASE_LOG_LEVEL", "info")

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr = %q", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), `"log_schema"`) {
		t.Fatalf("expected structured log on stderr, got %q", stderr.String())
	}
	if strings.Count(stdout.String(), "\n") != 1 {
		t.Fatalf("stdout should hold one line, got %q", stdout.String())
	}
}
