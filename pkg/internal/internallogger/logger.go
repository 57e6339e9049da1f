package internallogger

import (
	"os"
	"sync"

	"github.com/joeydtaylor/unbase/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption configures a ZapLoggerAdapter before its cores are built.
type LoggerOption func(*loggerSettings)

type loggerSettings struct {
	level       zapcore.Level
	development bool
	callerOn    bool
	callerDepth int
	fields      map[string]interface{}
	writer      zapcore.WriteSyncer
}

// ZapLoggerAdapter implements types.Logger on top of zap.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	callerOn    bool
	callerDepth int
	development bool
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
// Without options it logs JSON at info level to stdout.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	settings := loggerSettings{
		level:       zapcore.InfoLevel,
		callerOn:    true,
		callerDepth: 3, // Log -> level method -> NotifyLoggers -> component
		fields:      map[string]interface{}{logschema.FieldSchema: logschema.SchemaID},
		writer:      zapcore.Lock(os.Stdout),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(&settings)
	}

	z := &ZapLoggerAdapter{
		atomicLevel: zap.NewAtomicLevelAt(settings.level),
		encConfig:   encoderConfig(),
		baseFields:  fieldsFromMap(settings.fields),
		callerOn:    settings.callerOn,
		callerDepth: settings.callerDepth,
		development: settings.development,
		sinks:       make(map[string]sinkEntry),
	}
	z.baseCore = zapcore.NewCore(z.newEncoder(), settings.writer, z.atomicLevel)

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()
	return z
}
