package cli

import "utr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers      int
	SuiteFilter  string
	NameFilter   string
	Cases        bool
	FailFast     bool
	OnlyFailed   bool
	Record       bool
	OpenFailures bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:      f.Workers,
		SuiteFilter:  f.SuiteFilter,
		NameFilter:   f.NameFilter,
		Cases:        f.Cases,
		FailFast:     f.FailFast,
		OnlyFailed:   f.OnlyFailed,
		Record:       f.Record,
		OpenFailures: f.OpenFailures,
	}
}
