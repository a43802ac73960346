package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

type ProjectConfig struct {
	Project     string               `yaml:"project"`
	Version     int                  `yaml:"version"`
	Lane        string               `yaml:"lane"`
	DraftDir    string               `yaml:"draft_dir"`
	Influencers []ruleset.Influencer `yaml:"influencers"`
	Overrides   OverrideFiles        `yaml:"overrides"`
	Tunables    string               `yaml:"tunables"`
}

type OverrideFiles struct {
	Project string `yaml:"project"`
	Run     string `yaml:"run"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg.resolvePaths(filepath.Dir(path))
	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if _, err := ruleset.ParseLane(cfg.Lane); err != nil {
		return err
	}

	for i, influencer := range cfg.Influencers {
		if strings.TrimSpace(influencer.Title) == "" {
			return fmt.Errorf("influencer %d title is required", i)
		}
		if influencer.Weight < 0 {
			return fmt.Errorf("influencer %q weight must be non-negative", influencer.Title)
		}
	}

	if strings.TrimSpace(cfg.DraftDir) == "" {
		cfg.DraftDir = "drafts"
	}
	return nil
}

// resolvePaths anchors relative file references at the config's directory so
// the CLI works from anywhere.
func (c *ProjectConfig) resolvePaths(base string) {
	c.DraftDir = resolvePath(base, c.DraftDir)
	c.Overrides.Project = resolvePath(base, c.Overrides.Project)
	c.Overrides.Run = resolvePath(base, c.Overrides.Run)
	c.Tunables = resolvePath(base, c.Tunables)
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// LaneID is safe after validation; the lane was parsed during load.
func (c *ProjectConfig) LaneID() ruleset.Lane {
	lane, _ := ruleset.ParseLane(c.Lane)
	return lane
}
