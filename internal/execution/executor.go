package execution

import (
	"utr/internal/domain"
	"utr/internal/suite"
)

// Executor runs suites and returns the run report.
type Executor interface {
	Execute(suites []*suite.Suite) (*domain.RunReport, error)
}
