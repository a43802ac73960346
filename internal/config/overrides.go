package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

// LoadOverrides reads one override layer: a JSON array of {op, path, value}
// entries as the calling services persist them. An empty path is an empty
// layer.
func LoadOverrides(path string) ([]ruleset.Override, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading overrides: %w", err)
	}

	var overrides []ruleset.Override
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("loading overrides %s: %w", path, err)
	}
	return overrides, nil
}
