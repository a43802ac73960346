package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the resolved ruleset as readable text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject()
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, ruleset.Summary(proj.profile))
			return nil
		},
	}
}
