package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

func profileCmd() *cobra.Command {
	var showConflicts bool
	var strict bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Resolve and print the project's ruleset profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(showConflicts, strict)
		},
	}
	cmd.Flags().BoolVar(&showConflicts, "conflicts", false, "Append the conflict report")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero on hard conflicts")
	return cmd
}

func runProfile(showConflicts, strict bool) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(proj.profile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))

	conflicts := ruleset.DetectConflicts(proj.profile)
	if showConflicts && len(conflicts) > 0 {
		fmt.Fprintf(os.Stdout, "\nConflicts (%d):\n", len(conflicts))
		for _, conflict := range conflicts {
			fmt.Fprintf(os.Stdout, "  - [%s] %s: %s\n", conflict.Severity, conflict.ID, conflict.Message)
		}
	}

	if strict {
		for _, conflict := range conflicts {
			if conflict.Severity == ruleset.SeverityHard {
				return fmt.Errorf("profile has hard conflicts")
			}
		}
	}
	return nil
}
