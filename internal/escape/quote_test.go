package escape_test

import (
	"testing"

	"github.com/creachadair/ljson/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{" ", " "},
		{"a\t\nb", `a\t\nb`},
		{"\x00\x01\x02", `\u0000\u0001\u0002`},
		{"a \"b c\\\" d\"", `a \"b c\\\" d\"`},
		{"\uFFFD", `\ufffd`},
		{"\u2028 \u2029", `\u2028 \u2029`},
		{"This is the end\v", `This is the end\u000b`},
		{"<\x1e>", `<\u001e>`},
	}
	for _, test := range tests {
		got := string(escape.Quote(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Quote(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}
