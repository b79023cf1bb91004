package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"telex/internal/config"
	"telex/internal/diag"
	"telex/internal/diagfmt"
	"telex/internal/field"
)

// loadDefinitions resolves the configuration path (explicit argument, then
// manifest, then default) and loads it once, without the interactive
// fallback the run command applies.
func loadDefinitions(cmd *cobra.Command, explicit string) (string, []field.Definition, *diag.Bag, error) {
	flags := cmd.Root().PersistentFlags()
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	path := explicit
	if path == "" {
		manifest, _, err := loadToolManifest(".")
		if err != nil {
			return "", nil, nil, err
		}
		path = manifest.configPath()
	}
	if path == "" {
		path = config.DefaultFilename
	}

	bag := diag.NewBag(maxDiagnostics)
	loader := config.NewLoader(path, config.Options{Reporter: diag.BagReporter{Bag: bag}})
	defs, err := loader.Load()
	if err != nil {
		return path, nil, bag, fmt.Errorf("failed to load filter configuration: %w", err)
	}
	return path, defs, bag, nil
}

// printDiagnostics renders collected findings to stderr, honoring --color
// and --quiet.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, path string) error {
	flags := cmd.Root().PersistentFlags()
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	colorMode, err := readTriMode("color", colorFlag)
	if err != nil {
		return err
	}
	if quiet && !bag.HasErrors() {
		return nil
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, path, diagfmt.PrettyOpts{Color: colorMode.resolve(os.Stderr)})
	return nil
}
