package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/draft"
	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

func gateCmd() *cobra.Command {
	var final bool
	var prior float64
	var repair bool
	cmd := &cobra.Command{
		Use:   "gate <draft>",
		Short: "Run the quality gate over a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var priorScore *float64
			if cmd.Flags().Changed("prior") {
				priorScore = &prior
			}
			return runGate(args[0], final, priorScore, repair)
		},
	}
	cmd.Flags().BoolVar(&final, "final", false, "Apply the tightened final-pass thresholds")
	cmd.Flags().Float64Var(&prior, "prior", 0, "Melodrama score of the previous draft")
	cmd.Flags().BoolVar(&repair, "repair", false, "Print a repair instruction when the gate fails")
	return cmd
}

func runGate(path string, final bool, prior *float64, repair bool) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	d, err := draft.ParseFile(path)
	if err != nil {
		return err
	}

	metrics := ruleset.ComputeMetrics(d.Body)
	result := ruleset.RunGate(metrics, d.Body, proj.profile, prior, final, proj.tunables)

	logger.Info("gate run",
		zap.String("run_id", uuid.NewString()),
		zap.String("draft", path),
		zap.Bool("final", final),
		zap.Bool("passed", result.Passed()),
		zap.Int("failures", len(result.Failures)))

	fmt.Fprintf(os.Stdout, "Melodrama: %.2f\n", result.MelodramaScore)
	fmt.Fprintf(os.Stdout, "Nuance:    %.2f\n", result.NuanceScore)
	if result.Regressed {
		fmt.Fprintln(os.Stdout, "Regressed against the prior draft.")
	}

	if result.Passed() {
		fmt.Fprintln(os.Stdout, "Gate passed.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Gate failed (%d):\n", len(result.Failures))
	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stdout, "  - %s\n", failure)
	}
	if len(result.ForbiddenFound) > 0 {
		fmt.Fprintf(os.Stdout, "Forbidden moves: %s\n", strings.Join(result.ForbiddenFound, ", "))
	}
	if repair {
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, ruleset.BuildRepairInstruction(result.Failures, proj.profile, result.ForbiddenFound))
	}
	return fmt.Errorf("gate failed")
}
