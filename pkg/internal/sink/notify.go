package sink

import (
	"sync"

	"github.com/joeydtaylor/unbase/pkg/internal/types"
)

// loggerSet is shared by every sink for fan-out logging.
type loggerSet struct {
	mu      sync.Mutex
	loggers []types.Logger
}

func (s *loggerSet) connect(loggers ...types.Logger) {
	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}

	s.mu.Lock()
	s.loggers = append(s.loggers, loggers[:n]...)
	s.mu.Unlock()
}

func (s *loggerSet) snapshot() []types.Logger {
	s.mu.Lock()
	loggers := append([]types.Logger(nil), s.loggers...)
	s.mu.Unlock()
	return loggers
}

func (s *loggerSet) notify(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range s.snapshot() {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
