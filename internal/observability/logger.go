package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It discards everything until InitLogger
// runs, so packages can log safely from tests.
var Logger = zap.NewNop()

// InitLogger replaces Logger with a JSON production logger, or a console
// development logger when development is set.
func InitLogger(development bool) error {
	build := zap.NewProduction
	if development {
		build = zap.NewDevelopment
	}

	l, err := build()
	if err != nil {
		return err
	}
	Logger = l.With(zap.String("service", ServiceName()))
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger carrying the trace_id and span_id of
// the active span in ctx.
//
// ctx itself is attached as a zap.Any("context", ctx) field: the otelzap core
// uses a context.Context valued field as the context of the emitted OTLP log
// record, which fills the record's native TraceID/SpanID. The string fields
// keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
