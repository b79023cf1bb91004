package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"telex/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default filter configuration",
	Long: `Init creates a filter configuration file populated with the documented
header and the default balloon packet field table. If [path] is omitted the
well-known default filename is used. An existing file is never overwritten`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := config.DefaultFilename
	if len(args) == 1 && args[0] != "" {
		target = args[0]
	}

	if dir := filepath.Dir(target); dir != "." {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			return fmt.Errorf("directory %q does not exist", dir)
		}
	}
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("configuration already exists: %s", target)
	}

	if err := config.WriteDefaultFile(target); err != nil {
		return err
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created default filter configuration in %s\n", rel)
	return nil
}
