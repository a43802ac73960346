package mcp

import (
	"context"

	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

type Server struct {
	tunables ruleset.Tunables
	logger   *zap.Logger
	mcp      *sdk.Server
}

func NewServer(tunables ruleset.Tunables, logger *zap.Logger, version string) *Server {
	s := &Server{
		tunables: tunables,
		logger:   logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "lanenav",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}

// logCall emits the single log line every tool handler owes, tagged with a
// fresh correlation id.
func (s *Server) logCall(tool string, fields ...zap.Field) {
	base := []zap.Field{zap.String("tool", tool), zap.String("call_id", uuid.NewString())}
	s.logger.Info("tool call", append(base, fields...)...)
}
