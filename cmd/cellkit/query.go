package main

import "github.com/spf13/cobra"

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the document catalog from the CLI",
	}
	cmd.AddCommand(queryListCmd())
	cmd.AddCommand(queryDocumentCmd())
	cmd.AddCommand(queryIssuesCmd())
	cmd.AddCommand(querySQLCmd())
	return cmd
}
