package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

// LoadTunables layers a YAML file onto the engine defaults, so a project can
// pin just the constants it cares about. An empty path keeps the defaults.
func LoadTunables(path string) (ruleset.Tunables, error) {
	tun := ruleset.DefaultTunables()
	if path == "" {
		return tun, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ruleset.Tunables{}, fmt.Errorf("loading tunables: %w", err)
	}
	if err := yaml.Unmarshal(data, &tun); err != nil {
		return ruleset.Tunables{}, fmt.Errorf("loading tunables %s: %w", path, err)
	}
	return tun, nil
}
