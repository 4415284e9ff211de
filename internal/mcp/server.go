package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"cellkit/internal/logger"
	"cellkit/internal/store"
)

type Server struct {
	db  store.Store
	mcp *sdk.Server
	log *zap.SugaredLogger
}

// NewServer registers the document tools. db may be nil, in which case only
// the stateless print and validate tools are useful.
func NewServer(db store.Store, version string) *Server {
	s := &Server{
		db:  db,
		log: logger.FromContext(context.Background()).Named("mcp"),
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "cellkit",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves until the transport closes. Tool calls log through the logger
// carried by ctx.
func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	s.log = logger.FromContext(ctx).Named("mcp")
	return s.mcp.Run(ctx, transport)
}
