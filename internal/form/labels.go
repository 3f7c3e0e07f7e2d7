package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Credit defaults pre-filled when semester 3 is selected.
const (
	semesterWithDefaults = 3
	defaultCredit1       = "20"
	defaultCredit2       = "24"
)

// SemesterLabels are the captions of the two score/credit rows for a
// selected semester.
type SemesterLabels struct {
	SGPA1   string
	SGPA2   string
	Credit1 string
	Credit2 string
}

// LabelsFor returns the captions for semester n: the first row refers to
// semester n-2, the second to n-1.
func LabelsFor(n int) SemesterLabels {
	prev1, prev2 := n-2, n-1
	return SemesterLabels{
		SGPA1:   fmt.Sprintf("SGPA (Semester-%d)", prev1),
		SGPA2:   fmt.Sprintf("SGPA (Semester-%d)", prev2),
		Credit1: fmt.Sprintf("Credit (Semester-%d)", prev1),
		Credit2: fmt.Sprintf("Credit (Semester-%d)", prev2),
	}
}

// SyncLabels relabels the score and credit rows after the semester
// selection, pre-fills credits for semester 3 and re-evaluates the submit
// gate. Non-integer selections leave the surface untouched.
func (c *Controller) SyncLabels() {
	n, err := strconv.Atoi(strings.TrimSpace(c.surface.Value(SemesterSelect)))
	if err != nil {
		return
	}

	labels := LabelsFor(n)
	c.surface.SetText(SGPA1Label, labels.SGPA1)
	c.surface.SetText(SGPA2Label, labels.SGPA2)
	c.surface.SetText(Credit1Label, labels.Credit1)
	c.surface.SetText(Credit2Label, labels.Credit2)

	if n == semesterWithDefaults {
		c.surface.SetValue(Credit1, defaultCredit1)
		c.surface.SetValue(Credit2, defaultCredit2)
	}

	c.UpdateButtonState()
}
