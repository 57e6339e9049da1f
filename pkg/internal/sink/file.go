package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/unbase/pkg/internal/types"
	"github.com/joeydtaylor/unbase/pkg/internal/utils"
	"github.com/joeydtaylor/unbase/pkg/logschema"
)

// FileSink writes a payload to a local file, creating or truncating it.
type FileSink struct {
	componentMetadata types.ComponentMetadata
	path              string
	perm              os.FileMode

	spaceCheck  bool
	spaceMargin uint64
	usage       usageFunc

	loggers loggerSet
}

// FileSinkOption configures a FileSink.
type FileSinkOption func(*FileSink)

// NewFileSink returns a sink that writes to path with mode 0644.
func NewFileSink(path string, options ...FileSinkOption) *FileSink {
	s := &FileSink{
		path:  path,
		perm:  0o644,
		usage: defaultUsage,
		componentMetadata: types.ComponentMetadata{
			Type: "FILE_SINK",
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

// FileSinkWithPermissions sets the mode used when the file is created.
func FileSinkWithPermissions(perm os.FileMode) FileSinkOption {
	return func(s *FileSink) {
		s.perm = perm
	}
}

// FileSinkWithSpaceCheck verifies before opening the file that the output
// volume has room for the payload plus marginBytes.
func FileSinkWithSpaceCheck(marginBytes uint64) FileSinkOption {
	return func(s *FileSink) {
		s.spaceCheck = true
		s.spaceMargin = marginBytes
	}
}

// FileSinkWithLogger registers loggers for the sink.
func FileSinkWithLogger(l ...types.Logger) FileSinkOption {
	return func(s *FileSink) {
		s.ConnectLogger(l...)
	}
}

// Write replaces the file contents with data in a single write. The handle is
// closed on every path and a close failure is reported. A partially written
// file is left in place.
func (s *FileSink) Write(ctx context.Context, data []byte) error {
	if s.path == "" {
		return fmt.Errorf("%w: file sink path is empty", ErrInvalidConfig)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.spaceCheck {
		if err := s.preflight(uint64(len(data))); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.perm)
	if err != nil {
		return err
	}
	n, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return cerr
	}

	s.loggers.notify(types.DebugLevel, "Write",
		logschema.FieldComponent, s.componentMetadata,
		logschema.FieldEvent, "Write",
		logschema.FieldResult, logschema.ResultSuccess,
		logschema.FieldPath, s.path,
		logschema.FieldBytes, n,
	)
	return nil
}

func (s *FileSink) preflight(need uint64) error {
	dir := filepath.Dir(s.path)
	free, err := checkFreeSpace(s.usage, dir, need, s.spaceMargin)
	if errors.Is(err, ErrInsufficientSpace) {
		return err
	}
	if err != nil {
		s.loggers.notify(types.WarnLevel, "SpaceCheck",
			logschema.FieldComponent, s.componentMetadata,
			logschema.FieldEvent, "SpaceCheck",
			logschema.FieldResult, logschema.ResultSkipped,
			logschema.FieldPath, dir,
			logschema.FieldError, err,
		)
		return nil
	}
	s.loggers.notify(types.DebugLevel, "SpaceCheck",
		logschema.FieldComponent, s.componentMetadata,
		logschema.FieldEvent, "SpaceCheck",
		logschema.FieldResult, logschema.ResultSuccess,
		logschema.FieldPath, dir,
		"free", free,
	)
	return nil
}

// Location returns the output path.
func (s *FileSink) Location() string { return s.path }

// ConnectLogger registers loggers for the sink.
func (s *FileSink) ConnectLogger(l ...types.Logger) { s.loggers.connect(l...) }

// GetComponentMetadata returns the sink metadata.
func (s *FileSink) GetComponentMetadata() types.ComponentMetadata { return s.componentMetadata }

// SetComponentMetadata sets the sink name and ID.
func (s *FileSink) SetComponentMetadata(name string, id string) {
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}
