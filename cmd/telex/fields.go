package main

import (
	"github.com/spf13/cobra"

	"telex/internal/diagfmt"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [flags] [filter_data.csv]",
	Short: "List the parsed field definitions",
	Long: `Fields loads a filter configuration and lists every parsed field with
its normalized bounds, reporting the lines that could not be parsed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
	explicit := ""
	if len(args) == 1 {
		explicit = args[0]
	}

	path, defs, bag, loadErr := loadDefinitions(cmd, explicit)
	if bag != nil {
		if err := printDiagnostics(cmd, bag, path); err != nil {
			return err
		}
	}
	if loadErr != nil {
		return loadErr
	}

	diagfmt.FormatFields(cmd.OutOrStdout(), defs)
	return nil
}
