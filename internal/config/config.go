// Package config handles loading and saving user configuration for dualmorse.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/f3rmion/dualmorse/internal/morse"
	"gopkg.in/yaml.v3"
)

// TablesFile is the name of the table overrides file inside the config dir.
const TablesFile = "tables.yaml"

// Config holds all user configuration.
type Config struct {
	Tables TableOverrides `yaml:"tables"`
}

// TableOverrides lists extra entries appended to each reference table.
// An entry for an existing code replaces the reference symbol.
type TableOverrides struct {
	Latin  []morse.Entry `yaml:"latin,omitempty"`
	Arabic []morse.Entry `yaml:"arabic,omitempty"`
	Shared []morse.Entry `yaml:"shared,omitempty"`
}

// Empty reports whether no overrides are configured.
func (o TableOverrides) Empty() bool {
	return len(o.Latin) == 0 && len(o.Arabic) == 0 && len(o.Shared) == 0
}

// Decoder builds a decoder from the reference tables extended with the
// overrides. Every resulting table is validated.
func (o TableOverrides) Decoder() (*morse.Decoder, error) {
	if o.Empty() {
		return morse.New(), nil
	}

	latin := morse.Latin.Extend(o.Latin...)
	arabic := morse.Arabic.Extend(o.Arabic...)
	shared := morse.Shared.Extend(o.Shared...)

	for _, t := range []morse.Table{latin, arabic, shared} {
		if err := morse.Validate(t); err != nil {
			return nil, fmt.Errorf("validating overrides: %w", err)
		}
	}

	return morse.NewDecoder(latin, arabic, shared), nil
}

// LoadTables loads table overrides from a YAML file.
func LoadTables(path string) (TableOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TableOverrides{}, fmt.Errorf("reading tables file: %w", err)
	}

	var tables struct {
		Tables TableOverrides `yaml:"tables"`
	}
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return TableOverrides{}, fmt.Errorf("parsing tables file: %w", err)
	}

	return tables.Tables, nil
}

// LoadConfig loads all configuration from a directory. A missing tables
// file yields an empty config.
func LoadConfig(dir string) (*Config, error) {
	tables, err := LoadTables(filepath.Join(dir, TablesFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	return &Config{Tables: tables}, nil
}

// SaveTables saves table overrides to a YAML file.
func SaveTables(path string, tables TableOverrides) error {
	data := struct {
		Tables TableOverrides `yaml:"tables"`
	}{Tables: tables}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling tables: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing tables file: %w", err)
	}

	return nil
}

// SaveConfig saves all configuration into a directory.
func SaveConfig(dir string, cfg *Config) error {
	return SaveTables(filepath.Join(dir, TablesFile), cfg.Tables)
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dualmorse"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
