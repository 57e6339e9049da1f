package pipeline_test

import (
	"context"
	"sync"

	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

type memorySink struct {
	location string
	data     []byte
	err      error
}

func (m *memorySink) Write(_ context.Context, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data = append([]byte{}, data...)
	return nil
}
func (m *memorySink) Location() string              { return m.location }
func (m *memorySink) ConnectLogger(...types.Logger) {}
func (m *memorySink) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{Type: "MEMORY_SINK", ID: m.location}
}
func (m *memorySink) SetComponentMetadata(string, string) {}

type blockingSink struct {
	memorySink
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSink) Write(ctx context.Context, data []byte) error {
	close(b.entered)
	<-b.release
	return b.memorySink.Write(ctx, data)
}

type countingLogger struct {
	mu     sync.Mutex
	level  types.LogLevel
	counts map[types.LogLevel]int
}

func (l *countingLogger) inc(level types.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts == nil {
		l.counts = make(map[types.LogLevel]int)
	}
	l.counts[level]++
}

func (l *countingLogger) count(level types.LogLevel) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[level]
}

func (l *countingLogger) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.counts {
		n += c
	}
	return n
}

func (l *countingLogger) GetLevel() types.LogLevel               { return l.level }
func (l *countingLogger) SetLevel(level types.LogLevel)          { l.level = level }
func (l *countingLogger) Debug(string, ...interface{})           { l.inc(types.DebugLevel) }
func (l *countingLogger) Info(string, ...interface{})            { l.inc(types.InfoLevel) }
func (l *countingLogger) Warn(string, ...interface{})            { l.inc(types.WarnLevel) }
func (l *countingLogger) Error(string, ...interface{})           { l.inc(types.ErrorLevel) }
func (l *countingLogger) DPanic(string, ...interface{})          { l.inc(types.DPanicLevel) }
func (l *countingLogger) Panic(string, ...interface{})           { l.inc(types.PanicLevel) }
func (l *countingLogger) Fatal(string, ...interface{})           { l.inc(types.FatalLevel) }
func (l *countingLogger) Flush() error                           { return nil }
func (l *countingLogger) AddSink(string, types.SinkConfig) error { return nil }
func (l *countingLogger) RemoveSink(string) error                { return nil }
func (l *countingLogger) ListSinks() ([]string, error)           { return nil, nil }
