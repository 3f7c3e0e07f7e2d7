package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordError(t *testing.T) {
	counter, err := otel.Meter("test").Int64Counter("cgpa.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	tests := []struct {
		name   string
		msg    string
		status int
	}{
		{name: "bad body", msg: "invalid request body", status: http.StatusBadRequest},
		{name: "out of range", msg: "sgpa1 must be between 0 and 10", status: http.StatusBadRequest},
		{name: "store down", msg: "store unavailable", status: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			ctx := ContextWithRequestID(context.Background(), "req-1")
			w := httptest.NewRecorder()

			RecordError(ctx, trace.SpanFromContext(ctx), zap.New(core), counter,
				"calculate_cgpa", tc.msg, errors.New("cause"), tc.status, w)

			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected Content-Type application/json, got %q", ct)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response body: %v", err)
			}
			if len(body) != 1 || body["error"] != tc.msg {
				t.Fatalf("expected only error %q in body, got %v", tc.msg, body)
			}

			entries := logs.FilterMessage(tc.msg).All()
			if len(entries) != 1 {
				t.Fatalf("expected one log entry, got %d", len(entries))
			}
			fields := entries[0].ContextMap()
			if fields["request_id"] != "req-1" || fields["operation"] != "calculate_cgpa" {
				t.Fatalf("unexpected log fields %v", fields)
			}
		})
	}
}
