package config

import (
	"fmt"
	"os"
)

// Config holds the runtime options of one session. Nothing here is read
// from or written to disk.
type Config struct {
	// HomeDir anchors root directory input.
	HomeDir string
	// WorkDir is the process working directory at startup.
	WorkDir string

	Verbose bool
	Quiet   bool
	NoColor bool
	Plain   bool
}

// Load resolves the home and working directories. When no home directory
// can be determined the working directory stands in for it.
func Load() (*Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = workDir
	}

	return &Config{
		HomeDir: homeDir,
		WorkDir: workDir,
	}, nil
}
