package internallogger

import (
	"errors"
	"syscall"

	"github.com/joeydtaylor/unbase/pkg/internal/types"
	"go.uber.org/zap"
)

func (z *ZapLoggerAdapter) current() *zap.Logger {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.logger
}

// Log emits an entry at level. Keys must be strings; non-string keys and a
// trailing orphan value are dropped.
func (z *ZapLoggerAdapter) Log(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	logger := z.current()
	if logger == nil {
		return
	}
	if ce := logger.Check(ConvertLevel(level), msg); ce != nil {
		ce.Write(toFields(keysAndValues)...)
	}
}

func toFields(keysAndValues []interface{}) []zap.Field {
	n := len(keysAndValues) &^ 1
	fields := make([]zap.Field, 0, n/2)
	for i := 0; i < n; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, toField(key, keysAndValues[i+1]))
	}
	return fields
}

func toField(key string, value interface{}) zap.Field {
	switch v := value.(type) {
	case types.ComponentMetadata:
		return zap.Any(key, metadataMap(v))
	case *types.ComponentMetadata:
		if v == nil {
			return zap.Skip()
		}
		return zap.Any(key, metadataMap(*v))
	case error:
		return zap.NamedError(key, v)
	default:
		return zap.Any(key, v)
	}
}

func metadataMap(meta types.ComponentMetadata) map[string]string {
	m := map[string]string{"id": meta.ID, "type": meta.Type}
	if meta.Name != "" {
		m["name"] = meta.Name
	}
	return m
}

func (z *ZapLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.Log(types.DebugLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.Log(types.InfoLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.Log(types.WarnLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.Log(types.ErrorLevel, msg, keysAndValues...)
}

// DPanic panics only in development mode.
func (z *ZapLoggerAdapter) DPanic(msg string, keysAndValues ...interface{}) {
	z.Log(types.DPanicLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Panic(msg string, keysAndValues ...interface{}) {
	z.Log(types.PanicLevel, msg, keysAndValues...)
}

// Fatal logs and then exits the process.
func (z *ZapLoggerAdapter) Fatal(msg string, keysAndValues ...interface{}) {
	z.Log(types.FatalLevel, msg, keysAndValues...)
}

// GetLevel returns the minimum level shared by every sink.
func (z *ZapLoggerAdapter) GetLevel() types.LogLevel {
	return convertZapLevel(z.atomicLevel.Level())
}

// SetLevel updates the minimum level shared by every sink.
func (z *ZapLoggerAdapter) SetLevel(level types.LogLevel) {
	z.atomicLevel.SetLevel(ConvertLevel(level))
}

// Flush syncs every sink. Terminals and pipes cannot be fsynced; those
// errors are ignored.
func (z *ZapLoggerAdapter) Flush() error {
	logger := z.current()
	if logger == nil {
		return nil
	}
	err := logger.Sync()
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return nil
	}
	return err
}
