package domain

// Failure represents a failed assertion within a test case, flattened for
// storage and the failures viewer.
type Failure struct {
	Suite    string `json:"suite"`
	CaseName string `json:"case_name"`
	Check    string `json:"check"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
