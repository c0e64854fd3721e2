package log

import "ledger/internal/core"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldDate      = "date"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldCount     = "count"
	FieldMessageID = "message_id"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpAppend     = "append"
	OpLoad       = "load"
	OpQuery      = "query"
	OpReport     = "report"
	OpPublish    = "publish"
	OpMirror     = "mirror"
	OpInitialize = "initialize"
	OpShutdown   = "shutdown"
	OpStartup    = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithTransaction adds transaction fields. Descriptions are not logged.
func (f LogFields) WithTransaction(t core.Transaction) LogFields {
	f[FieldDate] = t.Date.String()
	f[FieldAmount] = t.Amount.String()
	f[FieldCategory] = t.Category.String()
	return f
}

// WithRange adds the bounds of a date range query
func (f LogFields) WithRange(start, end core.Date) LogFields {
	f[FieldStartDate] = start.String()
	f[FieldEndDate] = end.String()
	return f
}

// With adds an arbitrary field
func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
