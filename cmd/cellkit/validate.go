package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cellkit/internal/issue"
	"cellkit/internal/parser"
	"cellkit/internal/validate"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check YAML model descriptions for structural problems",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		doc, err := parser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		report, err := validate.Run(cmd.Context(), doc.Model)
		if err != nil {
			return err
		}
		if report.Empty() {
			fmt.Fprintf(out, "%s: no issues found.\n", path)
			continue
		}

		failed++
		fmt.Fprintf(out, "%s: %d issue(s)\n", path, len(report.Issues))
		printIssues(out, report.Issues)
	}

	if failed > 0 {
		return fmt.Errorf("validation found issues in %d file(s)", failed)
	}
	return nil
}

func printIssues(out io.Writer, issues []*issue.Issue) {
	for _, item := range issues {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
