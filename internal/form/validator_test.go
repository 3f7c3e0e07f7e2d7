package form

import (
	"fmt"
	"testing"
)

func TestValidateSGPA(t *testing.T) {
	tests := []struct {
		raw     string
		outcome Outcome
		msg     string
		value   float64
	}{
		{raw: "", outcome: OutcomeEmpty},
		{raw: "   ", outcome: OutcomeEmpty},
		{raw: "abc", outcome: OutcomeNotANumber, msg: MsgNotANumber},
		{raw: "NaN", outcome: OutcomeNotANumber, msg: MsgNotANumber},
		{raw: "Inf", outcome: OutcomeNotANumber, msg: MsgNotANumber},
		{raw: "8.5x", outcome: OutcomeNotANumber, msg: MsgNotANumber},
		{raw: "11", outcome: OutcomeAboveRange, msg: MsgAboveRange, value: 11},
		{raw: "10.01", outcome: OutcomeAboveRange, msg: MsgAboveRange, value: 10.01},
		{raw: "-0.5", outcome: OutcomeNegative, msg: MsgNegative, value: -0.5},
		{raw: "0", outcome: OutcomeValid},
		{raw: "10", outcome: OutcomeValid, value: 10},
		{raw: " 8.5 ", outcome: OutcomeValid, value: 8.5},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q", tc.raw), func(t *testing.T) {
			got := ValidateSGPA(tc.raw)
			if got.Outcome != tc.outcome {
				t.Fatalf("expected outcome %s, got %s", tc.outcome, got.Outcome)
			}
			if got.Message != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, got.Message)
			}
			if got.Value != tc.value {
				t.Fatalf("expected value %g, got %g", tc.value, got.Value)
			}
		})
	}
}

func TestValidateSGPARangeProperty(t *testing.T) {
	for i := -300; i <= 300; i++ {
		v := float64(i) / 20
		got := ValidateSGPA(fmt.Sprintf("%g", v))

		switch {
		case v > 10:
			if got.Outcome != OutcomeAboveRange || got.Message != MsgAboveRange {
				t.Fatalf("%g: expected above range, got %s %q", v, got.Outcome, got.Message)
			}
		case v < 0:
			if got.Outcome != OutcomeNegative || got.Message != MsgNegative {
				t.Fatalf("%g: expected negative, got %s %q", v, got.Outcome, got.Message)
			}
		default:
			if !got.Usable() || got.Message != "" {
				t.Fatalf("%g: expected valid with no message, got %s %q", v, got.Outcome, got.Message)
			}
		}
	}
}

func TestCreditOrDefault(t *testing.T) {
	tests := map[string]float64{
		"":      1,
		"x":     1,
		"20":    20,
		"3.5":   3.5,
		"1000":  1000,
		"1e308": 1,
	}
	for raw, want := range tests {
		if got := creditOrDefault(raw); got != want {
			t.Fatalf("credit %q: expected %g, got %g", raw, want, got)
		}
	}
}
