package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the file at path and unmarshals it into a fresh
// *StructuredConfig using the `json` tags declared on the config structs.
//
// The JSON file is the lowest-priority source; values already supplied by
// environment variables or flags are never overwritten by it.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return cfg, nil
}
