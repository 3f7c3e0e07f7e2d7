package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	calcCounter   metric.Int64Counter
	calcHistogram metric.Float64Histogram
	errorCounter  metric.Int64Counter
	recordCounter metric.Int64Counter
	cgpaGauge     metric.Float64Gauge
)

// InitMetrics registers the OTel instruments of the CGPA domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	calcCounter, err = meter.Int64Counter("cgpa.calculations.total",
		metric.WithDescription("Total number of CGPA calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculation counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("cgpa.calculation.duration",
		metric.WithDescription("Duration of CGPA calculations including persistence, in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 10, 50, 100, 500),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("cgpa.errors.total",
		metric.WithDescription("Total number of failed CGPA requests and persistence errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	recordCounter, err = meter.Int64Counter("cgpa.records.total",
		metric.WithDescription("Student records by persistence outcome"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return fmt.Errorf("creating record counter: %w", err)
	}

	cgpaGauge, err = meter.Float64Gauge("cgpa.last_result",
		metric.WithDescription("The most recently calculated CGPA"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating cgpa gauge: %w", err)
	}

	return nil
}
