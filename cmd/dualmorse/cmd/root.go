// Package cmd contains all CLI commands for dualmorse.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/f3rmion/dualmorse/internal/config"
	"github.com/f3rmion/dualmorse/internal/morse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dualmorse",
	Short: "Decode Morse code into Latin and Arabic at the same time",
	Long: `dualmorse decodes Morse code into two alphabets in one pass.

Tokens are separated by whitespace and "/" separates words:
  - Latin reading:  Latin letters, then digits and punctuation
  - Arabic reading: Arabic letters, then digits and punctuation
  - Unknown tokens decode to "?"

Running 'dualmorse' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/dualmorse)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("DUALMORSE")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else if dir := viper.GetString("config_dir"); dir == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	setupLogger(viper.GetBool("verbose"))
}

// setupLogger installs the default slog handler on stderr.
func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadDecoder builds the decoder from the reference tables and any user
// overrides. Broken overrides are reported and ignored.
func loadDecoder() *morse.Decoder {
	configDir := getConfigDir()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		slog.Warn("could not load config, using reference tables", "dir", configDir, "error", err)
		return morse.New()
	}

	dec, err := cfg.Tables.Decoder()
	if err != nil {
		slog.Warn("invalid table overrides, using reference tables", "dir", configDir, "error", err)
		return morse.New()
	}

	if !cfg.Tables.Empty() {
		slog.Debug("loaded table overrides",
			"latin", len(cfg.Tables.Latin),
			"arabic", len(cfg.Tables.Arabic),
			"shared", len(cfg.Tables.Shared),
		)
	}
	return dec
}
