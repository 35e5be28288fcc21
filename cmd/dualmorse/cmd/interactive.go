package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/dualmorse/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI that decodes Morse code as you type.

Features:
  - Latin and Arabic readings update on every keystroke
  - Copy either reading to the clipboard
  - Clear the input in one key

Controls:
  ctrl+y  Copy Latin output
  ctrl+r  Copy Arabic output
  ctrl+l  Clear input
  ctrl+g  Toggle help
  Esc     Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(
		tui.NewApp(tui.WithDecoder(loadDecoder())),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
