// Package morse decodes Morse code into Latin and Arabic text.
package morse

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// WordSpace is the token that separates words. It always decodes to a space.
const WordSpace = "/"

// Placeholder is emitted for tokens no table knows.
const Placeholder = "?"

var (
	// ErrInvalidToken is returned when a table key is not made of dots and dashes.
	ErrInvalidToken = errors.New("invalid morse token")
	// ErrInvalidSymbol is returned when a table value is not a single character.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// Entry is one code → symbol pair in a table definition.
type Entry struct {
	Code   string `yaml:"code" json:"code"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

// Table maps Morse tokens to single decoded characters. The zero value is an
// empty table. Tables are never modified after construction.
type Table struct {
	name    string
	symbols map[string]string
}

// NewTable builds a table from entries in order. When a code appears more
// than once, the last entry for it wins.
func NewTable(name string, entries ...Entry) Table {
	symbols := make(map[string]string, len(entries))
	for _, e := range entries {
		symbols[e.Code] = e.Symbol
	}
	return Table{name: name, symbols: symbols}
}

// Extend returns a new table holding t's entries followed by extra, merged
// with the same last-write-wins rule as NewTable.
func (t Table) Extend(extra ...Entry) Table {
	symbols := make(map[string]string, len(t.symbols)+len(extra))
	for code, sym := range t.symbols {
		symbols[code] = sym
	}
	for _, e := range extra {
		symbols[e.Code] = e.Symbol
	}
	return Table{name: t.name, symbols: symbols}
}

// Name returns the table's name.
func (t Table) Name() string {
	return t.name
}

// Lookup returns the symbol for a token.
func (t Table) Lookup(token string) (string, bool) {
	sym, ok := t.symbols[token]
	return sym, ok
}

// Len returns the number of codes in the table.
func (t Table) Len() int {
	return len(t.symbols)
}

// Entries returns the table contents sorted by code.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.symbols))
	for code, sym := range t.symbols {
		entries = append(entries, Entry{Code: code, Symbol: sym})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// Validate checks that every key is a dot/dash pattern or the word space
// token, and that every value is exactly one character.
func Validate(t Table) error {
	for _, e := range t.Entries() {
		if err := validateEntry(e); err != nil {
			return fmt.Errorf("table %s: %w", t.name, err)
		}
	}
	return nil
}

func validateEntry(e Entry) error {
	if !isToken(e.Code) {
		return fmt.Errorf("%w: %q", ErrInvalidToken, e.Code)
	}
	if utf8.RuneCountInString(e.Symbol) != 1 {
		return fmt.Errorf("%w for %q: %q", ErrInvalidSymbol, e.Code, e.Symbol)
	}
	return nil
}

func isToken(code string) bool {
	if code == WordSpace {
		return true
	}
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] != '.' && code[i] != '-' {
			return false
		}
	}
	return true
}
