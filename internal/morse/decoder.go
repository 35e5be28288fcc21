package morse

import (
	"strings"
	"unicode"
)

// Result holds both readings of the same input.
type Result struct {
	Primary   string `json:"primary" yaml:"primary"`     // Latin reading
	Secondary string `json:"secondary" yaml:"secondary"` // Arabic reading
}

// Chain is an ordered list of tables consulted first to last.
type Chain []Table

// Lookup returns the symbol from the first table that knows token, or
// Placeholder.
func (c Chain) Lookup(token string) string {
	if token == WordSpace {
		return " "
	}
	for _, t := range c {
		if sym, ok := t.Lookup(token); ok {
			return sym
		}
	}
	return Placeholder
}

// Decoder decodes Morse input through one chain per output side.
// It is read-only after construction and safe for concurrent use.
type Decoder struct {
	primary   Chain
	secondary Chain
	merged    Chain
}

// NewDecoder creates a decoder that reads latin then shared for the primary
// side and arabic then shared for the secondary side. The merged table used
// by DecodeMerged layers latin, arabic and shared in that order, later
// tables overriding earlier ones.
func NewDecoder(latin, arabic, shared Table) *Decoder {
	merged := NewTable("merged").
		Extend(latin.Entries()...).
		Extend(arabic.Entries()...).
		Extend(shared.Entries()...)

	return &Decoder{
		primary:   Chain{latin, shared},
		secondary: Chain{arabic, shared},
		merged:    Chain{merged},
	}
}

// New returns the decoder over the reference tables.
func New() *Decoder {
	return reference
}

var reference = NewDecoder(Latin, Arabic, Shared)

// isSpace reports whether r separates tokens. This is unicode.IsSpace
// with U+FEFF added and U+0085 removed.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Tokens splits input on runs of whitespace.
func Tokens(input string) []string {
	return strings.FieldsFunc(input, isSpace)
}

// DecodeDual decodes input into its Latin and Arabic readings. Unknown
// tokens become Placeholder; blank input gives an empty Result.
func (d *Decoder) DecodeDual(input string) Result {
	tokens := Tokens(input)
	if len(tokens) == 0 {
		return Result{}
	}

	var primary, secondary strings.Builder
	for _, tok := range tokens {
		primary.WriteString(d.primary.Lookup(tok))
		secondary.WriteString(d.secondary.Lookup(tok))
	}

	return Result{Primary: primary.String(), Secondary: secondary.String()}
}

// DecodeMerged decodes input against a single table combining every
// alphabet, where later alphabets override earlier ones for shared codes.
func (d *Decoder) DecodeMerged(input string) string {
	tokens := Tokens(input)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(d.merged.Lookup(tok))
	}
	return b.String()
}

// DecodeDual decodes input with the reference tables.
func DecodeDual(input string) Result {
	return reference.DecodeDual(input)
}

// DecodeMerged decodes input with the merged reference tables.
func DecodeMerged(input string) string {
	return reference.DecodeMerged(input)
}
