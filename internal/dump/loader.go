package dump

import (
	"fmt"
	"os"
)

// Loader handles loading register dump files from disk.
type Loader struct{}

// NewLoader creates a new register dump loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens and parses a register dump file.
func (l *Loader) Load(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	entries, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}
