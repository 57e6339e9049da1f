package pipeline

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by Run wraps exactly one of these.
var (
	ErrInputUnreadable   = errors.New("input unreadable")
	ErrMalformedEncoding = errors.New("malformed encoding")
	ErrDecompression     = errors.New("decompression failed")
	ErrOutputUnwritable  = errors.New("output unwritable")
	ErrMirrorFailed      = errors.New("mirror failed")
	ErrInvalidConfig     = errors.New("invalid pipeline configuration")
	ErrAlreadyRunning    = errors.New("pipeline already running")
)

// Stage names a step of a run.
type Stage string

const (
	StageConfig     Stage = "config"
	StageRead       Stage = "read"
	StageDecode     Stage = "decode"
	StageDecompress Stage = "decompress"
	StageWrite      Stage = "write"
	StageMirror     Stage = "mirror"
)

// StageError reports the stage that failed, its error kind, the path or
// location involved, and the underlying cause.
type StageError struct {
	Stage Stage
	Kind  error
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s", e.Stage, e.Kind)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *StageError) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func stageErr(stage Stage, kind error, path string, err error) error {
	return &StageError{Stage: stage, Kind: kind, Path: path, Err: err}
}
