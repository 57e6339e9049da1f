package logschema

// Log schema constants for unbase structured logs.
const (
	SchemaID    = "unbase.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldPath      = "path"
	FieldBytes     = "bytes"
)

// Result values used with FieldResult.
const (
	ResultSuccess = "SUCCESS"
	ResultFailure = "FAILURE"
	ResultSkipped = "SKIPPED"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
