package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func queryListCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryList(cmd, source)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Source to filter")
	return cmd
}

func runQueryList(cmd *cobra.Command, source string) error {
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

	docs, err := db.ListDocuments(ctx, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(docs) == 0 {
		fmt.Fprintln(out, "No documents found.")
		return nil
	}
	for _, doc := range docs {
		fmt.Fprintf(out, "%s [%s] %s components=%d issues=%d\n",
			doc.Name, doc.Source, doc.SourceFile, doc.ComponentCount, doc.IssueCount)
	}
	return nil
}
