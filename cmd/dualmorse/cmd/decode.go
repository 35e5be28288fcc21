package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/f3rmion/dualmorse/internal/morse"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [code...]",
	Short: "Decode Morse code into Latin and Arabic text",
	Long: `Decode Morse code and print both readings.

Arguments are joined with spaces. With no arguments, or a single "-",
the code is read from standard input. Put "--" before codes that start
with a dash so they are not read as flags.

Example:
  dualmorse decode ... --- ...
  dualmorse decode -- - . ... -
  echo "----- .----" | dualmorse decode --format json`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	decodeCmd.Flags().Bool("merged", false, "decode against one merged table instead of two readings")
}

type mergedOutput struct {
	Merged string `json:"merged" yaml:"merged"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	merged, _ := cmd.Flags().GetBool("merged")

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	dec := loadDecoder()
	slog.Debug("decoding", "tokens", len(morse.Tokens(input)), "merged", merged)

	out := cmd.OutOrStdout()
	if merged {
		text := dec.DecodeMerged(input)
		if format == "text" {
			fmt.Fprintln(out, text)
			return nil
		}
		return writeStructured(out, format, mergedOutput{Merged: text})
	}

	res := dec.DecodeDual(input)
	if format == "text" {
		fmt.Fprintf(out, "latin:  %s\n", res.Primary)
		fmt.Fprintf(out, "arabic: %s\n", res.Secondary)
		return nil
	}
	return writeStructured(out, format, res)
}

// readInput joins args, or reads r when there are none or the only arg is "-".
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
