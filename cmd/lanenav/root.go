package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/config"
	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/logging"
	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

var (
	configPath  string
	verbose     bool
	envSettings config.Env
	logger      = zap.NewNop()
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lanenav",
		Short: "Lane-scoped narrative ruleset engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			environment, err := config.ParseEnv()
			if err != nil {
				return err
			}
			envSettings = environment
			if !cmd.Flags().Changed("config") {
				configPath = environment.ConfigPath
			}
			if environment.Verbose {
				verbose = true
			}
			logger, err = logging.New(verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "lanenav.yaml", "Project config file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	root.AddCommand(initCmd())
	root.AddCommand(profileCmd())
	root.AddCommand(scoreCmd())
	root.AddCommand(gateCmd())
	root.AddCommand(rulesCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

type project struct {
	cfg      *config.ProjectConfig
	tunables ruleset.Tunables
	profile  ruleset.EngineProfile
}

// loadProject resolves the full profile chain for the configured project:
// lane default, influencer derivation, then the project and run override
// layers.
func loadProject() (*project, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}
	if envSettings.DraftDir != "" {
		cfg.DraftDir = envSettings.DraftDir
	}

	tun, err := config.LoadTunables(cfg.Tunables)
	if err != nil {
		return nil, err
	}

	base, err := ruleset.DefaultProfile(cfg.LaneID())
	if err != nil {
		return nil, err
	}
	var derived *ruleset.EngineProfile
	if len(cfg.Influencers) > 0 {
		d, err := ruleset.DeriveProfile(cfg.LaneID(), cfg.Influencers, tun)
		if err != nil {
			return nil, err
		}
		derived = &d
	}

	projectOverrides, err := config.LoadOverrides(cfg.Overrides.Project)
	if err != nil {
		return nil, err
	}
	runOverrides, err := config.LoadOverrides(cfg.Overrides.Run)
	if err != nil {
		return nil, err
	}

	profile, err := ruleset.MergeRuleset(base, derived, projectOverrides, runOverrides)
	if err != nil {
		return nil, err
	}

	logger.Debug("project loaded",
		zap.String("config", configPath),
		zap.String("lane", cfg.Lane),
		zap.Int("influencers", len(cfg.Influencers)),
		zap.Int("project_overrides", len(projectOverrides)),
		zap.Int("run_overrides", len(runOverrides)))

	return &project{cfg: cfg, tunables: tun, profile: profile}, nil
}
