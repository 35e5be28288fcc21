package morse

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDual(t *testing.T) {
	cases := []struct {
		input     string
		primary   string
		secondary string
	}{
		{"", "", ""},
		{"... --- ...", "sos", "سخس"},
		{".- / -... -.-.", "a bc", "ا بث"},
		{"----- .----", "01", "01"},
		{"......", "?", "?"},
		{".... ..", "hi", "هي"},
		{".-.- ---.", "??", "عز"},
		{".-.-.- --..-- ..--.. -.-.-- -....- -..-.", ".,?!-/", ".,?!-/"},
		{"  \t-- \n\n -.  ", "mn", "من"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%q", c.input), func(t *testing.T) {
			got := DecodeDual(c.input)
			assert.Equal(t, c.primary, got.Primary)
			assert.Equal(t, c.secondary, got.Secondary)
		})
	}
}

func TestDecodeDualBlank(t *testing.T) {
	for _, input := range []string{"", " ", "\t", "\n \r\n", "   "} {
		assert.Equal(t, Result{}, DecodeDual(input), "input %q", input)
	}
}

func TestDecodeDualLength(t *testing.T) {
	inputs := []string{
		".- -... -.-.",
		"/ / /",
		"...... ------- .-.-.-.-",
		".-.- ---. ---- .--.",
		"..--.. / -.-.-- ..--..",
	}
	for _, input := range inputs {
		res := DecodeDual(input)
		n := len(strings.Fields(input))
		assert.Equal(t, n, utf8.RuneCountInString(res.Primary), "primary of %q", input)
		assert.Equal(t, n, utf8.RuneCountInString(res.Secondary), "secondary of %q", input)
	}
}

func TestWordSpaceNeverPlaceholder(t *testing.T) {
	res := DecodeDual("/")
	assert.Equal(t, Result{Primary: " ", Secondary: " "}, res)

	res = DecodeDual("/ / ...")
	assert.Equal(t, "  s", res.Primary)
	assert.Equal(t, "  س", res.Secondary)
}

func TestUnknownTokenPerSide(t *testing.T) {
	// ---. and .-.- only exist in the Arabic table.
	res := DecodeDual("---.")
	assert.Equal(t, "?", res.Primary)
	assert.Equal(t, "ز", res.Secondary)

	// Garbage that is not even dots and dashes.
	res = DecodeDual("abc .-x")
	assert.Equal(t, "??", res.Primary)
	assert.Equal(t, "??", res.Secondary)
}

func TestAlphabetBeforeShared(t *testing.T) {
	latin := NewTable("latin", Entry{"-----", "L"})
	arabic := NewTable("arabic")
	d := NewDecoder(latin, arabic, Shared)

	res := d.DecodeDual("-----")
	assert.Equal(t, "L", res.Primary)
	assert.Equal(t, "0", res.Secondary)
}

func TestWordSpaceIgnoresTables(t *testing.T) {
	latin := NewTable("latin", Entry{WordSpace, "x"})
	d := NewDecoder(latin, NewTable("arabic"), NewTable("shared"))

	res := d.DecodeDual(".- /")
	assert.Equal(t, "? ", res.Primary)
	assert.Equal(t, "? ", res.Secondary)
}

func TestDecodeDualDeterministic(t *testing.T) {
	input := ".-- .... .- - / .... .- - .... / --. --- -.. / .-- .-. --- ..- --. .... -"
	first := DecodeDual(input)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, first, DecodeDual(input))
		}()
	}
	wg.Wait()
}

func TestDecodeMerged(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		// Arabic overrides Latin wherever both define a code.
		{"... --- ...", "سخس"},
		{"-..- / -----", "ص 0"},
		{"---.", "ز"},
		{"......", "?"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%q", c.input), func(t *testing.T) {
			assert.Equal(t, c.want, DecodeMerged(c.input))
		})
	}
}

func TestNewReturnsReference(t *testing.T) {
	require.NotNil(t, New())
	assert.Equal(t, DecodeDual("... ---"), New().DecodeDual("... ---"))
}

func TestByteOrderMarkIsSpace(t *testing.T) {
	assert.Equal(t, Result{}, DecodeDual("\uFEFF"))
	assert.Equal(t, "", DecodeMerged(" \uFEFF\t"))

	res := DecodeDual(".-\uFEFF-...")
	assert.Equal(t, Result{Primary: "ab", Secondary: "اب"}, res)
}

func TestNextLineIsNotSpace(t *testing.T) {
	assert.Equal(t, Result{Primary: "?", Secondary: "?"}, DecodeDual("\u0085"))
	assert.Equal(t, []string{".-\u0085-...", "-"}, Tokens(".-\u0085-... -"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{".-", "/", "-..."}, Tokens("  .-\t/\n-... "))
	assert.Empty(t, Tokens("   "))
	assert.Equal(t, []string{"...", "---"}, Tokens("...\u00a0\u3000---\u2028"))
}
