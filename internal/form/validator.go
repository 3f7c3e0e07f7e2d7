package form

import (
	"math"
	"strconv"
	"strings"
)

// Messages written into a score field's error region.
const (
	MsgNotANumber = "Enter a valid number"
	MsgAboveRange = "SGPA must be ≤ 10.00"
	MsgNegative   = "SGPA cannot be negative"

	MsgCreditAboveRange = "Credit must be ≤ 1000"
)

// MaxSGPA is the upper bound of a semester grade point average.
const MaxSGPA = 10.0

// MaxCredit is the largest credit weight the endpoint accepts.
const MaxCredit = 1000.0

// Outcome classifies a single score field.
type Outcome int

const (
	OutcomeEmpty Outcome = iota
	OutcomeValid
	OutcomeNotANumber
	OutcomeAboveRange
	OutcomeNegative
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeValid:
		return "valid"
	case OutcomeNotANumber:
		return "not_a_number"
	case OutcomeAboveRange:
		return "above_range"
	case OutcomeNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Result is the outcome of validating one raw score value.
type Result struct {
	Outcome Outcome
	Value   float64
	Message string
}

// Acceptable reports whether the field should show no error. An empty field
// is acceptable but cannot be used in a calculation.
func (r Result) Acceptable() bool {
	return r.Outcome == OutcomeEmpty || r.Outcome == OutcomeValid
}

// Usable reports whether the value can be sent for calculation.
func (r Result) Usable() bool {
	return r.Outcome == OutcomeValid
}

// ValidateSGPA classifies a raw SGPA input.
func ValidateSGPA(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{Outcome: OutcomeEmpty}
	}

	v, ok := parseNumber(raw)
	if !ok {
		return Result{Outcome: OutcomeNotANumber, Message: MsgNotANumber}
	}

	switch {
	case v > MaxSGPA:
		return Result{Outcome: OutcomeAboveRange, Value: v, Message: MsgAboveRange}
	case v < 0:
		return Result{Outcome: OutcomeNegative, Value: v, Message: MsgNegative}
	}

	return Result{Outcome: OutcomeValid, Value: v}
}

// parseNumber accepts finite decimal numbers only; "NaN" and "Inf" literals
// are rejected even though strconv understands them.
func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ValidCredit reports whether raw is a usable credit value: a number no
// larger than MaxCredit.
func ValidCredit(raw string) bool {
	v, ok := parseNumber(raw)
	return ok && v <= MaxCredit
}

// creditOrDefault returns the parsed credit value, or 1 when it is missing
// or not a valid credit.
func creditOrDefault(raw string) float64 {
	if !ValidCredit(raw) {
		return 1
	}
	v, _ := parseNumber(raw)
	return v
}
