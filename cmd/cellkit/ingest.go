package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellkit/internal/archive"
	"cellkit/internal/ingest"
)

func ingestCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Synchronise the catalog with the configured model sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, full)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Force full re-ingestion (ignore incremental hashes)")
	return cmd
}

func runIngest(cmd *cobra.Command, full bool) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	arc, err := archive.Open(ctx, cfg.Archive)
	if err != nil {
		return err
	}

	result, err := ingest.Run(ctx, cfg, db, ingest.Options{Full: full, Archive: arc})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Ingestion complete.")
	fmt.Fprintf(out, "  Documents upserted: %d\n", result.DocumentsUpserted)
	fmt.Fprintf(out, "  Documents removed:  %d\n", result.DocumentsRemoved)
	fmt.Fprintf(out, "  Issues recorded:    %d\n", result.IssuesFound)
	if arc != nil {
		fmt.Fprintf(out, "  Objects archived:   %d (%s)\n", result.ObjectsArchived, arc.Driver())
	}
	fmt.Fprintf(out, "  Files skipped:      %d\n", result.FilesSkipped)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nErrors (%d):\n", len(result.Errors))
		for _, item := range result.Errors {
			fmt.Fprintf(out, "  - %v\n", item)
		}
		return fmt.Errorf("ingestion completed with errors")
	}
	return nil
}
