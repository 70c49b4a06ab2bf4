package escape_test

import (
	"testing"

	"github.com/creachadair/ljson/internal/escape"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, ``},
		{`ok go`, "ok go"},
		{`abc\ndef`, "abc\ndef"},
		{`\tabc\n`, "\tabc\n"},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`a & b`, "a & b"},
		{`a\"b`, `a"b`},
		{`a\\b\\cd`, `a\b\cd`},
		{`é`, "é"},
		{`😀`, "\U0001F600"},
	}
	for _, test := range tests {
		got, badOffset, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%q): unexpected error at offset %d: %v", test.input, badOffset, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquote_errors(t *testing.T) {
	tests := []string{
		`\`,
		`\x`,
		`\u`,
		`\u00`,
		`\u00x9`,
		`\ud800`,
		`\ud800A`,
		`\udc00`,
	}
	for _, input := range tests {
		if _, _, err := escape.Unquote(mem.S(input)); err == nil {
			t.Errorf("Unquote(%q): got nil error, want failure", input)
		}
	}
}
