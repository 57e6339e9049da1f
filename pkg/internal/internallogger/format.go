package internallogger

import (
	"time"

	"github.com/joeydtaylor/unbase/pkg/logschema"
	"go.uber.org/zap/zapcore"
)

// encoderConfig maps zap's keys onto the unbase log schema. Timestamps are
// always UTC so logs from different hosts sort together.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        logschema.FieldTimestamp,
		LevelKey:       logschema.FieldLevel,
		NameKey:        logschema.FieldLogger,
		CallerKey:      logschema.FieldCaller,
		MessageKey:     logschema.FieldMessage,
		StacktraceKey:  logschema.FieldStack,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     utcTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// newEncoder returns a JSON encoder for every sink; sinks never mix formats.
func (z *ZapLoggerAdapter) newEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(z.encConfig)
}

func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}
