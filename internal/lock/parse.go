package lock

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a .podws.lock.yaml file.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the sandbox record path
	if err != nil {
		return nil, fmt.Errorf("reading integration record: %w", err)
	}
	return Parse(data)
}

// Parse parses .podws.lock.yaml content.
func Parse(data []byte) (*Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing integration record YAML: %w", err)
	}
	return &r, nil
}

// Save writes the record, creating the sandbox directory if needed.
func Save(path string, r *Record) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling integration record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // sandbox needs to be world-readable
		return fmt.Errorf("creating sandbox directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // record needs to be readable
		return fmt.Errorf("writing integration record: %w", err)
	}
	return nil
}
