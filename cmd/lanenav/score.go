package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/draft"
	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [path]",
		Short: "Score drafts against the project profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runScore(path)
		},
	}
	return cmd
}

func runScore(path string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	if path == "" {
		path = proj.cfg.DraftDir
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("scoring %s: %w", path, err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = draft.Discover(path)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintf(os.Stdout, "No drafts found under %s.\n", path)
			return nil
		}
	}

	for i, draftPath := range paths {
		d, err := draft.ParseFile(draftPath)
		if err != nil {
			return err
		}

		metrics := ruleset.ComputeMetrics(d.Body)
		fp := ruleset.ComputeFingerprint(d.Body, proj.profile)

		if i > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "%s\n", draftPath)
		if d.Title != "" {
			fmt.Fprintf(os.Stdout, "  Title:     %s\n", d.Title)
		}
		fmt.Fprintf(os.Stdout, "  Words:     %d\n", metrics.WordCount)
		fmt.Fprintf(os.Stdout, "  Melodrama: %.2f\n", ruleset.MelodramaScore(metrics, proj.tunables))
		fmt.Fprintf(os.Stdout, "  Nuance:    %.2f\n", ruleset.NuanceScore(metrics, proj.tunables))
		fmt.Fprintf(os.Stdout, "  Signal:    %s\n", fp.DominantSignal)
		if d.Lane != "" && d.Lane != proj.cfg.Lane {
			fmt.Fprintf(os.Stdout, "  Note: draft lane %s differs from project lane %s\n", d.Lane, proj.cfg.Lane)
		}
	}
	return nil
}
