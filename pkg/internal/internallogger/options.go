package internallogger

import (
	"io"

	"github.com/joeydtaylor/unbase/pkg/logschema"
	"go.uber.org/zap/zapcore"
)

// LoggerWithLevel configures the logger to use the specified log level.
// Unknown level names fall back to info.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(s *loggerSettings) {
		s.level = ConvertLevel(parseLogLevel(levelStr))
	}
}

// LoggerWithDevelopment enables or disables development mode (DPanic panics).
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(s *loggerSettings) {
		s.development = dev
	}
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(s *loggerSettings) {
		for key, value := range fields {
			if key == "" {
				continue
			}
			s.fields[key] = value
		}
	}
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return func(s *loggerSettings) {
		s.fields[logschema.FieldSchema] = schema
	}
}

// LoggerWithWriter replaces the default stdout destination of the base core.
func LoggerWithWriter(w io.Writer) LoggerOption {
	return func(s *loggerSettings) {
		if w == nil {
			return
		}
		s.writer = zapcore.Lock(zapcore.AddSync(w))
	}
}

// LoggerWithCaller toggles the caller field.
func LoggerWithCaller(on bool) LoggerOption {
	return func(s *loggerSettings) {
		s.callerOn = on
	}
}

// ZapAdapterWithCallerSkip sets the number of extra caller frames to skip.
func ZapAdapterWithCallerSkip(skip int) LoggerOption {
	return func(s *loggerSettings) {
		s.callerDepth += skip
	}
}
