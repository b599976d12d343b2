package domain

// RunRecord is one row of the recorded run history.
type RunRecord struct {
	ID              int64
	Timestamp       string
	TotalCases      int
	PassedCases     int
	FailedCases     int
	DurationSeconds float64
	Workers         int
}
