package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("student record not found")

// ErrDuplicate is returned by Insert when the student already has a record.
var ErrDuplicate = errors.New("student record already exists")

// Record is one saved CGPA calculation. A student is identified by the
// (Roll, Number) pair.
type Record struct {
	ID        int64
	Name      string
	Roll      string
	Number    string
	Semester  int
	SGPA1     float64
	SGPA2     float64
	CGPA      float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
