package calculator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ConfirmOverwrite is the confirmation value that allows an existing record
// to be replaced.
const ConfirmOverwrite = "Yes"

// CGPARequest is the JSON body for POST /calculate_cgpa.
type CGPARequest struct {
	SGPA1        float64  `json:"sgpa1"`
	SGPA2        float64  `json:"sgpa2"`
	Credit1      float64  `json:"credit1"`
	Credit2      float64  `json:"credit2"`
	Name         string   `json:"name"`
	Roll         string   `json:"roll"`
	Number       string   `json:"number"`
	Semester     Semester `json:"semester"`
	Confirmation string   `json:"confirmation,omitempty"`
}

// CGPAResponse is the JSON response for POST /calculate_cgpa. Exists is set
// instead of saving when the student already has a record and the request
// carried no confirmation.
type CGPAResponse struct {
	CGPA    string `json:"cgpa"`
	Message string `json:"message,omitempty"`
	Exists  bool   `json:"exists,omitempty"`
	Name    string `json:"name,omitempty"`
}

// Semester accepts either a JSON number or a numeric string, since form
// selects submit their value as text.
type Semester int

func (s *Semester) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
		if raw == "" {
			*s = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("semester must be an integer, got %s", data)
	}
	*s = Semester(n)
	return nil
}
