package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cellkit/internal/store"
)

func queryDocumentCmd() *cobra.Command {
	var source string
	var markupOnly bool
	cmd := &cobra.Command{
		Use:   "document <name>",
		Short: "Display an ingested document and its markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryDocument(cmd, args[0], source, markupOnly)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Source to disambiguate")
	cmd.Flags().BoolVar(&markupOnly, "markup", false, "Print only the stored markup")
	return cmd
}

func runQueryDocument(cmd *cobra.Command, name, source string, markupOnly bool) error {
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

	out := cmd.OutOrStdout()
	doc, err := db.GetDocument(ctx, name, source)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(out, "No document found for %q.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	if markupOnly {
		fmt.Fprintln(out, doc.Markup)
		return nil
	}

	fmt.Fprintf(out, "Name: %s\n", doc.Name)
	fmt.Fprintf(out, "Source: %s\n", doc.Source)
	fmt.Fprintf(out, "File: %s\n", doc.SourceFile)
	fmt.Fprintf(out, "Components: %d\n", doc.ComponentCount)
	fmt.Fprintf(out, "Issues: %d\n", doc.IssueCount)
	if !doc.LastIngested.IsZero() {
		fmt.Fprintf(out, "Ingested: %s\n", doc.LastIngested.Format(time.RFC3339))
	}
	fmt.Fprintf(out, "Markup:\n%s\n", doc.Markup)
	return nil
}
