package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog from a YAML file and validates it. Configuration
// problems are fatal here, at load time; the engine never scores against an
// unvalidated catalog.
func Load(path string) (*Catalog, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(blob)
}

// Parse decodes and validates a YAML catalog document. When decoding
// succeeds but validation fails, the decoded catalog is returned alongside
// the *ValidationError: degraded-mode callers still need its shape (the
// dimension list in particular) to build the neutral fallback result.
func Parse(blob []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(blob, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return &c, err
	}
	return &c, nil
}
