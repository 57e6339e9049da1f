package sink

import (
	"sync"

	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

type recordingLogger struct {
	mu     sync.Mutex
	level  types.LogLevel
	events map[types.LogLevel][]string
}

func (l *recordingLogger) record(level types.LogLevel, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.events == nil {
		l.events = make(map[types.LogLevel][]string)
	}
	l.events[level] = append(l.events[level], msg)
}

func (l *recordingLogger) count(level types.LogLevel) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events[level])
}

func (l *recordingLogger) GetLevel() types.LogLevel               { return l.level }
func (l *recordingLogger) SetLevel(level types.LogLevel)          { l.level = level }
func (l *recordingLogger) Debug(msg string, _ ...interface{})     { l.record(types.DebugLevel, msg) }
func (l *recordingLogger) Info(msg string, _ ...interface{})      { l.record(types.InfoLevel, msg) }
func (l *recordingLogger) Warn(msg string, _ ...interface{})      { l.record(types.WarnLevel, msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{})     { l.record(types.ErrorLevel, msg) }
func (l *recordingLogger) DPanic(msg string, _ ...interface{})    { l.record(types.DPanicLevel, msg) }
func (l *recordingLogger) Panic(msg string, _ ...interface{})     { l.record(types.PanicLevel, msg) }
func (l *recordingLogger) Fatal(msg string, _ ...interface{})     { l.record(types.FatalLevel, msg) }
func (l *recordingLogger) Flush() error                           { return nil }
func (l *recordingLogger) AddSink(string, types.SinkConfig) error { return nil }
func (l *recordingLogger) RemoveSink(string) error                { return nil }
func (l *recordingLogger) ListSinks() ([]string, error)           { return nil, nil }
