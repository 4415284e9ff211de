package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cellkit/internal/config"
)

const sampleModel = `name: sample
units:
  - name: millivolt
components:
  - name: membrane
    variables:
      - name: V
    resets:
      - variable: V
        order: 1
        whens:
          - order: 1
            condition: <math xmlns="http://www.w3.org/1998/Math/MathML"><apply><gt/><ci>V</ci><cn>30</cn></apply></math>
            value: <math xmlns="http://www.w3.org/1998/Math/MathML"><cn>-80</cn></math>
`

func initCmd() *cobra.Command {
	var projectName string
	var dir string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new cellkit project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			if err := runInit(dir, projectName); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialised project %s in %s\n", projectName, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to scaffold into")
	return cmd
}

func runInit(dir, projectName string) error {
	configFile := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}

	modelsDir := filepath.Join(dir, "models")
	if err := os.MkdirAll(modelsDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", modelsDir, err)
	}

	configContents := fmt.Sprintf("project: %s\nversion: 1\nlog_level: warn\n\ndatabase:\n  dsn: sqlite://./cellkit.db\n\nsources:\n  - name: models\n    paths:\n      - ./models/\n\nexclude:\n  - ./models/drafts/\n", projectName)
	if err := os.WriteFile(configFile, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}

	samplePath := filepath.Join(modelsDir, "sample.yaml")
	if _, err := os.Stat(samplePath); err == nil {
		return nil
	}
	if err := os.WriteFile(samplePath, []byte(sampleModel), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", samplePath, err)
	}
	return nil
}
