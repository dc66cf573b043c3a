package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docshub/docshub-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Browse documents as cards, filter by text and category, read raw
content, and create new documents with cover upload.

Controls:
  tab       - Move between search, category and list
  ↑/↓       - Navigate
  Enter     - Open document
  Ctrl+N    - New document
  Esc       - Close modal
  Ctrl+C    - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// A fullscreen UI on a pipe renders garbage.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}

	// Panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Document: documentService,
		Upload:   uploadService,
	}

	if err := tui.Run(ports); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
