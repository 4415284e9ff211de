package main

import (
	"github.com/spf13/cobra"

	"cellkit/internal/logger"
	"cellkit/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := logger.WithName(cmd.Context(), "serve")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	logger.InfoKV(ctx, "serving over stdio", "project", cfg.Project, "backend", cfg.Backend())
	server := mcp.NewServer(db, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
