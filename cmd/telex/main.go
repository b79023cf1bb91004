package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"telex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "telex [flags] [filter_data.csv]",
	Short: "Balloon raw data translator",
	Long: `telex extracts named fixed-width fields from raw telemetry strings
(APRS-style balloon packets) according to a user-editable filter configuration`,
	Args: cobra.MaximumNArgs(1),
	// Running telex with no subcommand starts the interactive session.
	RunE: runTranslate,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("ui", "auto", "interactive terminal UI (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
