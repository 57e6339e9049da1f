package internallogger

import (
	"strings"

	"github.com/joeydtaylor/unbase/pkg/internal/types"
	"go.uber.org/zap/zapcore"
)

// levelTable pairs each unbase level with its name and zap level.
var levelTable = []struct {
	level types.LogLevel
	name  string
	zap   zapcore.Level
}{
	{types.DebugLevel, "debug", zapcore.DebugLevel},
	{types.InfoLevel, "info", zapcore.InfoLevel},
	{types.WarnLevel, "warn", zapcore.WarnLevel},
	{types.ErrorLevel, "error", zapcore.ErrorLevel},
	{types.DPanicLevel, "dpanic", zapcore.DPanicLevel},
	{types.PanicLevel, "panic", zapcore.PanicLevel},
	{types.FatalLevel, "fatal", zapcore.FatalLevel},
}

// parseLogLevel maps a level name to a LogLevel; unknown names mean info.
func parseLogLevel(levelStr string) types.LogLevel {
	name := strings.ToLower(strings.TrimSpace(levelStr))
	if name == "warning" {
		name = "warn"
	}
	for _, row := range levelTable {
		if row.name == name {
			return row.level
		}
	}
	return types.InfoLevel
}

// ConvertLevel converts a types.LogLevel to a zap level.
func ConvertLevel(level types.LogLevel) zapcore.Level {
	for _, row := range levelTable {
		if row.level == level {
			return row.zap
		}
	}
	return zapcore.InfoLevel
}

func convertZapLevel(level zapcore.Level) types.LogLevel {
	for _, row := range levelTable {
		if row.zap == level {
			return row.level
		}
	}
	return types.InfoLevel
}
