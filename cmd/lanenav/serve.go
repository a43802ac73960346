package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/config"
	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/mcp"
	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

// runServe starts without a project config; the tools take lanes and
// profiles per call. A present config still contributes its tunables.
func runServe(cmd *cobra.Command, args []string) error {
	tun := ruleset.DefaultTunables()
	cfg, err := config.LoadProjectConfig(configPath)
	switch {
	case err == nil:
		tun, err = config.LoadTunables(cfg.Tunables)
		if err != nil {
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	logger.Info("mcp server starting", zap.String("version", version))
	server := mcp.NewServer(tun, logger, version)
	return server.Run(cmd.Context(), &sdk.StdioTransport{})
}
