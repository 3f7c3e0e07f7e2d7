package calculator

import (
	"fmt"
	"math"
	"strconv"
)

// MaxSGPA is the highest valid semester grade point average.
const MaxSGPA = 10.0

// MaxCredit bounds a semester's credit weight.
const MaxCredit = 1000.0

// WeightedCGPA returns the credit-weighted mean of two SGPAs. Credits that
// are zero or negative count as 1.
func WeightedCGPA(sgpa1, credit1, sgpa2, credit2 float64) float64 {
	if credit1 <= 0 {
		credit1 = 1
	}
	if credit2 <= 0 {
		credit2 = 1
	}
	return (sgpa1*credit1 + sgpa2*credit2) / (credit1 + credit2)
}

// FormatCGPA renders a CGPA with two decimals.
func FormatCGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func validateRequest(req CGPARequest) error {
	scores := []struct {
		name  string
		value float64
	}{{"sgpa1", req.SGPA1}, {"sgpa2", req.SGPA2}}

	for _, s := range scores {
		if math.IsNaN(s.value) || s.value < 0 || s.value > MaxSGPA {
			return fmt.Errorf("%s must be between 0 and %g", s.name, MaxSGPA)
		}
	}

	for _, c := range []float64{req.Credit1, req.Credit2} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("credits must be finite numbers")
		}
		if c > MaxCredit {
			return fmt.Errorf("credits must be at most %g", MaxCredit)
		}
	}
	return nil
}
