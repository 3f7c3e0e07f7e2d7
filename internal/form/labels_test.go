package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLabelsFor(t *testing.T) {
	want := SemesterLabels{
		SGPA1:   "SGPA (Semester-3)",
		SGPA2:   "SGPA (Semester-4)",
		Credit1: "Credit (Semester-3)",
		Credit2: "Credit (Semester-4)",
	}
	if diff := cmp.Diff(want, LabelsFor(5)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSyncLabelsSemesterThreePrefillsCredits(t *testing.T) {
	c, s, _ := newTestController(t, &fakeCalculator{})
	fillIdentity(s)
	s.SetValue(SGPA1, "8")
	s.SetValue(SGPA2, "9")
	s.SetValue(SemesterSelect, "3")

	c.HandleChange(SemesterSelect)

	if got := s.Text(SGPA1Label); got != "SGPA (Semester-1)" {
		t.Fatalf("expected sgpa1 label %q, got %q", "SGPA (Semester-1)", got)
	}
	if got := s.Text(Credit2Label); got != "Credit (Semester-2)" {
		t.Fatalf("expected credit2 label %q, got %q", "Credit (Semester-2)", got)
	}
	if s.Value(Credit1) != "20" || s.Value(Credit2) != "24" {
		t.Fatalf("expected credits 20/24, got %q/%q", s.Value(Credit1), s.Value(Credit2))
	}

	// The pre-filled credits complete the form.
	if _, disabled := s.Attr(SubmitButton, "disabled"); disabled {
		t.Fatal("expected submit control to be enabled after credits were pre-filled")
	}
}

func TestSyncLabelsOtherSemesterKeepsCredits(t *testing.T) {
	c, s, _ := newTestController(t, &fakeCalculator{})
	s.SetValue(Credit1, "18")
	s.SetValue(SemesterSelect, "6")

	c.SyncLabels()

	if got := s.Value(Credit1); got != "18" {
		t.Fatalf("expected credit1 to stay %q, got %q", "18", got)
	}
	if got := s.Text(SGPA2Label); got != "SGPA (Semester-5)" {
		t.Fatalf("expected sgpa2 label %q, got %q", "SGPA (Semester-5)", got)
	}
}

func TestSyncLabelsIgnoresNonIntegerSelection(t *testing.T) {
	c, s, _ := newTestController(t, &fakeCalculator{})
	s.SetText(SGPA1Label, "SGPA")
	s.SetValue(SemesterSelect, "choose")

	c.SyncLabels()

	if got := s.Text(SGPA1Label); got != "SGPA" {
		t.Fatalf("expected label to be untouched, got %q", got)
	}
}
