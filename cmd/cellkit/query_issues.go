package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func queryIssuesCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "issues <name>",
		Short: "List the issues recorded for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryIssues(cmd, args[0], source)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Source to disambiguate")
	return cmd
}

func runQueryIssues(cmd *cobra.Command, name, source string) error {
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

	issues, err := db.ListIssues(ctx, name, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, "No issues recorded.")
		return nil
	}
	for _, rec := range issues {
		if rec.SubjectName != "" {
			fmt.Fprintf(out, "  - %s %q: %s\n", rec.Kind, rec.SubjectName, rec.Description)
			continue
		}
		fmt.Fprintf(out, "  - %s: %s\n", rec.Kind, rec.Description)
	}
	return nil
}
