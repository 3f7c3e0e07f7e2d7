package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"
	"time"

	"cgpa-calculator/internal/observability"
	"cgpa-calculator/internal/store"

	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

const opName = "calculate_cgpa"

// maxBodyBytes caps the request body of the calculation endpoint.
const maxBodyBytes = 16 << 10

// Messages returned after a record was persisted.
const (
	MsgSaved   = "Data saved successfully"
	MsgUpdated = "Data updated successfully"
)

// Repository persists one record per student.
type Repository interface {
	FindByStudent(ctx context.Context, roll, number string) (store.Record, error)
	Insert(ctx context.Context, rec *store.Record) error
	Update(ctx context.Context, rec *store.Record) error
}

// Handler serves the CGPA calculation endpoint.
type Handler struct {
	repo   Repository
	policy *bluemonday.Policy
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo:   repo,
		policy: bluemonday.StrictPolicy(),
	}
}

// saveOutcome describes what happened to the student's record.
type saveOutcome string

const (
	outcomeInserted saveOutcome = "inserted"
	outcomeUpdated  saveOutcome = "updated"
	outcomeConflict saveOutcome = "conflict"
	outcomeSkipped  saveOutcome = "skipped"
	outcomeFailed   saveOutcome = "failed"
)

// CalculateCGPA handles POST /calculate_cgpa: it computes the weighted CGPA
// and stores it for the student. A student that already has a record gets
// exists=true back unless the request confirms the overwrite.
func (h *Handler) CalculateCGPA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.cgpa",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CGPARequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			observability.RecordError(ctx, span, logger, errorCounter, opName, "request body too large", err, http.StatusRequestEntityTooLarge, w)
			return
		}
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := validateRequest(req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	req.Name = h.clean(req.Name)
	req.Roll = h.clean(req.Roll)
	req.Number = h.clean(req.Number)

	span.SetAttributes(
		attribute.Float64("cgpa.sgpa1", req.SGPA1),
		attribute.Float64("cgpa.sgpa2", req.SGPA2),
		attribute.Float64("cgpa.credit1", req.Credit1),
		attribute.Float64("cgpa.credit2", req.Credit2),
		attribute.Int("cgpa.semester", int(req.Semester)),
	)

	start := time.Now()
	cgpa := WeightedCGPA(req.SGPA1, req.Credit1, req.SGPA2, req.Credit2)

	resp := CGPAResponse{CGPA: FormatCGPA(cgpa)}
	outcome, storedName := h.save(ctx, logger, req, cgpa)
	switch outcome {
	case outcomeInserted:
		resp.Message = MsgSaved
	case outcomeUpdated:
		resp.Message = MsgUpdated
	case outcomeConflict:
		resp.Exists = true
		resp.Name = storedName
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	cgpaGauge.Record(ctx, cgpa, attrs)
	recordCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("cgpa", cgpa),
		attribute.String("record.outcome", string(outcome)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("cgpa.result", cgpa))
	span.SetStatus(codes.Ok, "")

	logger.Info("cgpa calculated",
		zap.String("roll", req.Roll),
		zap.String("number", req.Number),
		zap.Int("semester", int(req.Semester)),
		zap.Float64("cgpa", cgpa),
		zap.String("outcome", string(outcome)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// save stores the calculation. Persistence is best effort: a failure is
// logged and counted but the CGPA is still returned to the caller.
func (h *Handler) save(ctx context.Context, logger *zap.Logger, req CGPARequest, cgpa float64) (saveOutcome, string) {
	if req.Roll == "" || req.Number == "" {
		return outcomeSkipped, ""
	}

	ctx, span := tracer.Start(ctx, "calculator.cgpa.save")
	defer span.End()

	rec := store.Record{
		Name:     req.Name,
		Roll:     req.Roll,
		Number:   req.Number,
		Semester: int(req.Semester),
		SGPA1:    req.SGPA1,
		SGPA2:    req.SGPA2,
		CGPA:     cgpa,
	}

	existing, err := h.repo.FindByStudent(ctx, req.Roll, req.Number)
	if errors.Is(err, store.ErrNotFound) {
		err = h.repo.Insert(ctx, &rec)
		if err == nil {
			span.SetAttributes(attribute.Int64("record.id", rec.ID))
			return outcomeInserted, ""
		}
		if !errors.Is(err, store.ErrDuplicate) {
			h.saveFailed(ctx, span, logger, err)
			return outcomeFailed, ""
		}
		// A concurrent request created the record first.
		existing, err = h.repo.FindByStudent(ctx, req.Roll, req.Number)
	}
	if err != nil {
		h.saveFailed(ctx, span, logger, err)
		return outcomeFailed, ""
	}

	if req.Confirmation != ConfirmOverwrite {
		span.AddEvent("record.exists", trace.WithAttributes(attribute.Int64("record.id", existing.ID)))
		return outcomeConflict, existing.Name
	}

	if err := h.repo.Update(ctx, &rec); err != nil {
		h.saveFailed(ctx, span, logger, err)
		return outcomeFailed, ""
	}
	span.SetAttributes(attribute.Int64("record.id", rec.ID))
	return outcomeUpdated, ""
}

func (h *Handler) saveFailed(ctx context.Context, span trace.Span, logger *zap.Logger, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "saving record")
	errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "save_record")))
	logger.Error("saving student record failed",
		zap.Error(err),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)
}

// maxEntityPasses bounds how many layers of entity encoding are undone
// before sanitizing.
const maxEntityPasses = 8

// clean strips markup from user supplied text and returns it as plain text.
// Entities are decoded before sanitizing so encoded tags are stripped too.
func (h *Handler) clean(s string) string {
	for i := 0; i < maxEntityPasses; i++ {
		u := html.UnescapeString(s)
		if u == s {
			break
		}
		s = u
	}
	return strings.TrimSpace(html.UnescapeString(h.policy.Sanitize(s)))
}
