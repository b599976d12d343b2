package config

import "path/filepath"

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Workers int

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Workers:        DefaultWorkers,
		Flags:          Flags{Workers: DefaultWorkers},
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}

	return cfg
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
