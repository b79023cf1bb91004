package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <raw-data>",
	Short: "Extract fields from a single raw data string",
	Long: `Extract runs the configured filter once over the given raw data string
and prints one "name: value" line per field, in configuration order.
Intended for scripting; no prompts, no separators`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("config", "", "filter configuration file (defaults to the manifest entry or filter_data.csv)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	path, defs, bag, loadErr := loadDefinitions(cmd, configPath)
	if bag != nil {
		if err := printDiagnostics(cmd, bag, path); err != nil {
			return err
		}
	}
	if loadErr != nil {
		return loadErr
	}

	data := strings.TrimSpace(args[0])
	for _, def := range defs {
		fmt.Fprintln(cmd.OutOrStdout(), def.Describe(data))
	}
	return nil
}
