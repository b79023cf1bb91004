package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"telex/internal/config"
	"telex/internal/diag"
	"telex/internal/diagfmt"
	"telex/internal/session"
	"telex/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [filter_data.csv]",
	Short: "Start an interactive translate session",
	Long: `Run loads a filter configuration and then repeatedly translates raw
telemetry strings until 'q', 'quit' or 'exit' is entered`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()

	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
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

	manifest, _, err := loadToolManifest(".")
	if err != nil {
		return err
	}

	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	if !flags.Changed("ui") && manifest != nil && manifest.Config.UI.Mode != "" {
		uiFlag = manifest.Config.UI.Mode
	}
	uiMode, err := readTriMode("ui", uiFlag)
	if err != nil {
		return err
	}

	stdin := bufio.NewScanner(os.Stdin)

	// Resolve the configuration path: argument, then manifest, then an
	// interactive prompt, then the well-known default.
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		path = manifest.configPath()
	}
	if path == "" && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		path = promptForConfig(stdin, os.Stdout)
	}
	if path == "" {
		path = config.DefaultFilename
	}

	stderrOpts := diagfmt.PrettyOpts{Color: colorMode.resolve(os.Stderr)}

	bag := diag.NewBag(maxDiagnostics)
	loader := config.NewLoader(path, config.Options{Reporter: diag.BagReporter{Bag: bag}})
	defs, err := loader.Load()
	if err != nil && path != config.DefaultFilename {
		// Revert to the known-good default file when the user's choice is
		// unusable.
		fmt.Fprintf(os.Stderr, "unable to use %q (%v); reverting to the default file\n", path, err)
		path = config.DefaultFilename
		bag = diag.NewBag(maxDiagnostics)
		loader = config.NewLoader(path, config.Options{Reporter: diag.BagReporter{Bag: bag}})
		defs, err = loader.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load filter configuration: %w", err)
	}

	bag.Sort()
	if !quiet || bag.HasErrors() {
		diagfmt.Pretty(os.Stderr, bag, path, stderrOpts)
	}

	sess := session.New()
	sess.ConfigLoaded(defs)

	if uiMode.resolve(os.Stdout) {
		program := tea.NewProgram(ui.NewSessionModel(sess, path), tea.WithOutput(os.Stdout))
		_, err := program.Run()
		return err
	}

	stdoutOpts := diagfmt.PrettyOpts{Color: colorMode.resolve(os.Stdout)}
	return runPlainSession(sess, stdin, os.Stdout, stdoutOpts, isTerminal(os.Stdin))
}

func promptForConfig(in *bufio.Scanner, out io.Writer) string {
	fmt.Fprint(out, "\nEnter the settings filename below (or leave blank to use the default one)\n > ")
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// runPlainSession drives the translate loop over plain line-oriented IO.
// When ack is set the loop waits for an acknowledging keypress after every
// report, matching the interactive convenience of the terminal UI.
func runPlainSession(sess *session.Session, in *bufio.Scanner, out io.Writer, opts diagfmt.PrettyOpts, ack bool) error {
	for sess.State() == session.StateAwaitingInput {
		fmt.Fprint(out, "\nEnter the entire raw data string below... (or 'q' to quit)\n > ")
		if !in.Scan() {
			// EOF behaves like an explicit quit.
			sess.Quit()
			break
		}
		outcome := sess.HandleInput(in.Text())
		if outcome.Quit {
			break
		}
		fmt.Fprintln(out)
		diagfmt.Report(out, outcome.Lines, opts)
		if ack {
			fmt.Fprint(out, "\nPress enter to continue.")
			if !in.Scan() {
				sess.Quit()
				break
			}
		}
	}
	return in.Err()
}
