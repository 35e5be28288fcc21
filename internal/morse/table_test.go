package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceTablesValid(t *testing.T) {
	for name, table := range Tables() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Validate(table))
			assert.Equal(t, name, table.Name())
		})
	}
}

func TestReferenceTableSizes(t *testing.T) {
	assert.Equal(t, 26, Latin.Len())
	// 29 entries, one code defined twice.
	assert.Equal(t, 28, Arabic.Len())
	assert.Equal(t, 17, Shared.Len())
}

func TestArabicDuplicateLastWins(t *testing.T) {
	sym, ok := Arabic.Lookup("....")
	require.True(t, ok)
	assert.Equal(t, "ه", sym)
}

func TestNewTableLastWriteWins(t *testing.T) {
	table := NewTable("t",
		Entry{".-", "a"},
		Entry{"-", "t"},
		Entry{".-", "b"},
	)
	assert.Equal(t, 2, table.Len())

	sym, ok := table.Lookup(".-")
	require.True(t, ok)
	assert.Equal(t, "b", sym)
}

func TestExtendDoesNotMutate(t *testing.T) {
	base := NewTable("base", Entry{".-", "a"})
	ext := base.Extend(Entry{".-", "x"}, Entry{"-", "t"})

	sym, _ := base.Lookup(".-")
	assert.Equal(t, "a", sym)
	assert.Equal(t, 1, base.Len())

	sym, _ = ext.Lookup(".-")
	assert.Equal(t, "x", sym)
	assert.Equal(t, 2, ext.Len())
	assert.Equal(t, "base", ext.Name())
}

func TestEntriesSorted(t *testing.T) {
	table := NewTable("t", Entry{"..", "i"}, Entry{"-", "t"}, Entry{".", "e"})
	assert.Equal(t, []Entry{{"-", "t"}, {".", "e"}, {"..", "i"}}, table.Entries())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
		err   error
	}{
		{"dots", Entry{"...", "s"}, nil},
		{"word space", Entry{WordSpace, " "}, nil},
		{"arabic", Entry{".-", "ا"}, nil},
		{"empty code", Entry{"", "x"}, ErrInvalidToken},
		{"bad char", Entry{".-_", "x"}, ErrInvalidToken},
		{"double slash", Entry{"//", "x"}, ErrInvalidToken},
		{"empty symbol", Entry{".", ""}, ErrInvalidSymbol},
		{"two symbols", Entry{".", "ab"}, ErrInvalidSymbol},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(NewTable("t", c.entry))
			if c.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestEmptyTableLookup(t *testing.T) {
	var table Table
	_, ok := table.Lookup(".-")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Empty(t, table.Entries())
}
