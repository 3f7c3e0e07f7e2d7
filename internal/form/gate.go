package form

import "strings"

// Tooltips for the submit control.
const (
	TitleReady   = "Ready to calculate"
	TitleBlocked = "Please fill all details correctly"
)

// State is a snapshot of the form's raw input values.
type State struct {
	Name     string
	Roll     string
	Number   string
	Semester string
	SGPA1    string
	SGPA2    string
	Credit1  string
	Credit2  string
}

// ReadState collects the current, trimmed input values from the surface.
func ReadState(s Surface) State {
	v := func(id ElementID) string { return strings.TrimSpace(s.Value(id)) }
	return State{
		Name:     v(StudentName),
		Roll:     v(Roll),
		Number:   v(StudentNumber),
		Semester: v(SemesterSelect),
		SGPA1:    v(SGPA1),
		SGPA2:    v(SGPA2),
		Credit1:  v(Credit1),
		Credit2:  v(Credit2),
	}
}

// CanSubmit reports whether every required field satisfies its constraint:
// identity fields present, both scores numeric within [0,10] and both
// credits numeric.
func CanSubmit(st State) bool {
	if blank(st.Name) || blank(st.Roll) || blank(st.Number) {
		return false
	}

	for _, raw := range []string{st.SGPA1, st.SGPA2} {
		if !ValidateSGPA(raw).Usable() {
			return false
		}
	}

	for _, raw := range []string{st.Credit1, st.Credit2} {
		if !ValidCredit(raw) {
			return false
		}
	}

	return true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
