package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/dualmorse/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dualmorse configuration",
	Long: `Initialize the dualmorse configuration directory.

This creates a template tables.yaml where you can add codes to, or replace
codes in, the latin, arabic and shared tables. Entries are applied after the
reference entries, so the last definition of a code wins.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.TablesFile)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(tablesTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.TablesFile, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Uncomment or add entries in tables.yaml")
	fmt.Fprintln(out, "  2. Run 'dualmorse decode <code>' to check the result")

	return nil
}

const tablesTemplate = `# dualmorse table overrides
#
# Each entry maps a Morse code (dots and dashes) to one character.
# Entries are appended to the reference table of the same name; when a code
# is already defined, the entry here replaces it.
#
# The Latin reading uses latin, then shared.
# The Arabic reading uses arabic, then shared.

tables:
  latin: []
  #  - code: ".-.-"
  #    symbol: "ä"
  arabic: []
  #  - code: "...."
  #    symbol: "ح"
  shared: []
  #  - code: ".--.-."
  #    symbol: "@"
`
