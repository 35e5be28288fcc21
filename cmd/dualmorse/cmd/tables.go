package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/dualmorse/internal/morse"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [latin|arabic|shared]",
	Short: "Print the symbol tables",
	Long: `Print the reference symbol tables, or one of them.

The Latin reading looks up latin then shared; the Arabic reading looks up
arabic then shared. The "/" token always decodes to a space.

Example:
  dualmorse tables
  dualmorse tables arabic --format yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"latin", "arabic", "shared"},
	RunE:      runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().StringP("format", "f", "text", "output format: text or yaml")
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func runTables(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	all := morse.Tables()
	names := []string{"latin", "arabic", "shared"}
	if len(args) == 1 {
		if _, ok := all[args[0]]; !ok {
			return fmt.Errorf("unknown table: %s", args[0])
		}
		names = args
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		for i, name := range names {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printTable(out, all[name])
		}
		return nil
	case "yaml":
		doc := make(map[string][]morse.Entry, len(names))
		for _, name := range names {
			doc[name] = all[name].Entries()
		}
		return writeStructured(out, format, doc)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// printTable prints a table in columns ordered by code length, then code.
func printTable(w io.Writer, t morse.Table) {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Code) < len(entries[j].Code)
	})

	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Code))
	}

	fmt.Fprintln(w, tableHeaderStyle.Render(fmt.Sprintf("%s (%d)", t.Name(), t.Len())))
	for _, e := range entries {
		fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(e.Code, width), e.Symbol)
	}
}
