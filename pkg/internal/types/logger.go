package types

// LogLevel orders log severities; higher is more severe.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	DPanicLevel // panics in development mode only
	PanicLevel
	FatalLevel
)

// SinkType names an extra log destination.
type SinkType string

const (
	FileSink   SinkType = "file" // Config["path"] is required
	StdoutSink SinkType = "stdout"
	StderrSink SinkType = "stderr"
)

// SinkConfig describes a log sink added with Logger.AddSink.
type SinkConfig struct {
	Type   string
	Config map[string]interface{}
}

// Logger is the structured logger every component reports through.
// keysAndValues alternate string keys and values.
type Logger interface {
	GetLevel() LogLevel
	SetLevel(LogLevel)

	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	DPanic(msg string, keysAndValues ...interface{})
	Panic(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})

	// Flush syncs buffered output.
	Flush() error

	AddSink(identifier string, config SinkConfig) error
	RemoveSink(identifier string) error
	ListSinks() ([]string, error)
}
