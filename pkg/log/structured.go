package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mateim4/archer-capacity-planner/pkg/requestid"
)

// StructuredLogger wraps the global zap logger with a small operation
// tracing vocabulary: an operation is opened with a set of input fields,
// optionally annotated with steps, and closed with Success or Error. The
// request id travels along automatically when WithContext is used.
type StructuredLogger struct {
	logger *zap.Logger
}

// NewDebugLogger returns a StructuredLogger named after the component.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{logger: zap.L().Named(name)}
}

// WithContext attaches the request id from ctx, when present, to every
// subsequent log line.
func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	if requestID := requestid.FromContext(ctx); requestID != "" {
		return &StructuredLogger{logger: l.logger.With(zap.String("request_id", requestID))}
	}
	return l
}

// Operation starts building an operation trace.
func (l *StructuredLogger) Operation(name string) *OperationBuilder {
	return &OperationBuilder{
		logger: l.logger,
		name:   name,
	}
}

// OperationBuilder accumulates the input fields of an operation before the
// trace is built.
type OperationBuilder struct {
	logger *zap.Logger
	name   string
	fields []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithBool(key string, value bool) *OperationBuilder {
	b.fields = append(b.fields, zap.Bool(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

// Build logs the operation start at debug level and returns the tracer
// used to record steps and the final outcome.
func (b *OperationBuilder) Build() *OperationTracer {
	logger := b.logger.With(append([]zap.Field{zap.String("operation", b.name)}, b.fields...)...)
	logger.Debug("operation started")
	return &OperationTracer{
		logger: logger,
		start:  time.Now(),
	}
}

// OperationTracer records the lifecycle of one running operation.
type OperationTracer struct {
	logger *zap.Logger
	start  time.Time
}

// Step records an intermediate milestone within the operation.
func (t *OperationTracer) Step(name string) *EventBuilder {
	return &EventBuilder{
		logger:  t.logger.With(zap.String("step", name)),
		message: "operation step",
		level:   zapcore.DebugLevel,
	}
}

// Success closes the operation as completed.
func (t *OperationTracer) Success() *EventBuilder {
	return &EventBuilder{
		logger:  t.logger.With(zap.Duration("duration", time.Since(t.start))),
		message: "operation completed",
		level:   zapcore.InfoLevel,
	}
}

// Error closes the operation as failed.
func (t *OperationTracer) Error(err error) *EventBuilder {
	return &EventBuilder{
		logger:  t.logger.With(zap.Error(err), zap.Duration("duration", time.Since(t.start))),
		message: "operation failed",
		level:   zapcore.ErrorLevel,
	}
}

// EventBuilder accumulates fields for a single trace line until Log is
// called.
type EventBuilder struct {
	logger  *zap.Logger
	message string
	level   zapcore.Level
	fields  []zap.Field
}

func (e *EventBuilder) WithString(key, value string) *EventBuilder {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *EventBuilder) WithInt(key string, value int) *EventBuilder {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *EventBuilder) WithFloat(key string, value float64) *EventBuilder {
	e.fields = append(e.fields, zap.Float64(key, value))
	return e
}

func (e *EventBuilder) WithBool(key string, value bool) *EventBuilder {
	e.fields = append(e.fields, zap.Bool(key, value))
	return e
}

func (e *EventBuilder) WithUUID(key string, value uuid.UUID) *EventBuilder {
	e.fields = append(e.fields, zap.String(key, value.String()))
	return e
}

// Log emits the buffered trace line.
func (e *EventBuilder) Log() {
	switch e.level {
	case zapcore.ErrorLevel:
		e.logger.Error(e.message, e.fields...)
	case zapcore.InfoLevel:
		e.logger.Info(e.message, e.fields...)
	default:
		e.logger.Debug(e.message, e.fields...)
	}
}
