package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

func initCmd() *cobra.Command {
	var projectName string
	var lane string
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new lanenav project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			if _, err := ruleset.ParseLane(lane); err != nil {
				return err
			}
			return runInit(dir, projectName, lane)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	cmd.Flags().StringVar(&lane, "lane", string(ruleset.LaneFeatureFilm), "Production lane")
	return cmd
}

func runInit(dir, projectName, lane string) error {
	configFile := filepath.Join(dir, "lanenav.yaml")
	overridesFile := filepath.Join(dir, "overrides", "project.json")
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}
	if _, err := os.Stat(overridesFile); err == nil {
		return fmt.Errorf("%s already exists", overridesFile)
	}

	if err := os.MkdirAll(filepath.Join(dir, "overrides"), 0o755); err != nil {
		return fmt.Errorf("creating overrides dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "drafts"), 0o755); err != nil {
		return fmt.Errorf("creating drafts dir: %w", err)
	}

	configContents := fmt.Sprintf(`project: %s
version: 1
lane: %s
draft_dir: drafts

# Weighted reference titles that bend the lane defaults.
influencers: []
#  - title: Example Title
#    format: film
#    weight: 1.5
#    dimensions: [twist_budget]
#    avoid_tags: [love_triangle]

overrides:
  project: overrides/project.json
`, projectName, lane)
	if err := os.WriteFile(configFile, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	if err := os.WriteFile(overridesFile, []byte("[]\n"), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", overridesFile, err)
	}

	fmt.Fprintf(os.Stdout, "Initialised %s for lane %s.\n", projectName, lane)
	return nil
}
