package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellkit/internal/parser"
	"cellkit/internal/printer"
)

func printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Render a YAML model description as CellML markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), printer.PrintModel(doc.Model))
			return nil
		},
	}
}
