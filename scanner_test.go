// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson_test

import (
	"testing"

	"github.com/creachadair/ljson"
	"github.com/google/go-cmp/cmp"
)

func scanAll(t *testing.T, input string, allowSingleQuotes, allowSpecialFloats bool) []ljson.Token {
	t.Helper()
	sc := ljson.NewScanner([]byte(input), allowSingleQuotes, allowSpecialFloats)
	var got []ljson.Token
	for {
		tok := sc.Next()
		if tok == ljson.EOF {
			break
		}
		got = append(got, tok)
	}
	return got
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []ljson.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []ljson.Token{ljson.True, ljson.False, ljson.Null}},

		// Punctuation
		{"{ [ ] } , :", []ljson.Token{
			ljson.LBrace, ljson.LSquare, ljson.RSquare, ljson.RBrace, ljson.Comma, ljson.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []ljson.Token{ljson.String, ljson.String, ljson.String}},
		{`"\"\\\/\b\f\n\r\t"`, []ljson.Token{ljson.String}},
		{`" Ǽꪜ"`, []ljson.Token{ljson.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []ljson.Token{
			ljson.Integer, ljson.Integer, ljson.Integer,
			ljson.Number, ljson.Number, ljson.Number, ljson.Number,
		}},

		// The scanner accepts a trailing empty fraction or exponent; the
		// numeric decoder is the one that rejects it.
		{`1. 1e 1.e5`, []ljson.Token{ljson.Number, ljson.Number, ljson.Number}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []ljson.Token{
			ljson.LBrace, ljson.True, ljson.Comma, ljson.String, ljson.Colon,
			ljson.Integer, ljson.Null, ljson.LSquare, ljson.RSquare, ljson.RBrace,
		}},
	}

	for _, test := range tests {
		got := scanAll(t, test.input, false, false)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_singleQuotes(t *testing.T) {
	disallowed := ljson.NewScanner([]byte(`'abc'`), false, false)
	if tok := disallowed.Next(); tok != ljson.Error {
		t.Errorf("with single quotes disallowed: got %v, want Error", tok)
	}
	if got := scanAll(t, `'abc'`, true, false); !cmp.Equal(got, []ljson.Token{ljson.String}) {
		t.Errorf("with single quotes allowed: got %v, want [String]", got)
	}
}

func TestScanner_specialFloats(t *testing.T) {
	tests := []struct {
		input string
		want  ljson.Token
	}{
		{"NaN", ljson.NaN},
		{"Infinity", ljson.PosInf},
		{"-Infinity", ljson.NegInf},
	}
	for _, test := range tests {
		got := scanAll(t, test.input, false, true)
		if len(got) != 1 || got[0] != test.want {
			t.Errorf("scan(%q) with special floats allowed: got %v, want [%v]", test.input, got, test.want)
		}
		disallowed := scanAll(t, test.input, false, false)
		if len(disallowed) == 0 || disallowed[0] != ljson.Error {
			t.Errorf("scan(%q) with special floats disallowed: got %v, want an error", test.input, disallowed)
		}
	}
}

func TestScanner_comments(t *testing.T) {
	tests := []struct {
		input string
		want  []ljson.Token
		texts []string
	}{
		{"/* block comment */\n\n\n", []ljson.Token{ljson.BlockComment},
			[]string{"/* block comment */"}},
		{"// line 1\n\n// line 2\n", []ljson.Token{ljson.LineComment, ljson.LineComment},
			[]string{"// line 1\n", "// line 2\n"}},
		{"// line at EOF", []ljson.Token{ljson.LineComment},
			[]string{"// line at EOF"}},
		{"/**\n*/", []ljson.Token{ljson.BlockComment}, []string{"/**\n*/"}},
	}

	for _, test := range tests {
		sc := ljson.NewScanner([]byte(test.input), false, false)
		var got []ljson.Token
		var texts []string
		for {
			tok := sc.Next()
			if tok == ljson.EOF {
				break
			}
			got = append(got, tok)
			if tok.IsComment() {
				texts = append(texts, string(sc.Text()))
			}
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.texts, texts); diff != "" {
			t.Errorf("Input: %#q\nComment text: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_unterminated(t *testing.T) {
	tests := []string{
		`"unterminated`,
		`/* unterminated`,
		`#`,
	}
	for _, input := range tests {
		got := scanAll(t, input, false, false)
		if len(got) == 0 || got[len(got)-1] != ljson.Error {
			t.Errorf("scan(%q): got %v, want a trailing Error", input, got)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
	}
	for _, test := range tests {
		got := ljson.Quote(test.input)
		if got != test.want {
			t.Errorf("Quote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
		dec, err := ljson.Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", got, err)
		} else if string(dec) != test.input {
			t.Errorf("Unquote(%#q): got %#q, want %#q", got, dec, test.input)
		}
	}
}

func TestUnquote_errors(t *testing.T) {
	tests := []string{
		``,               // missing quotes
		`"missing quote`, // missing quotes
		`missing quote"`, // missing quotes
		`"\x"`,           // unknown escape
		`"\u"`,           // incomplete unicode escape
		`"\uD800"`,       // unpaired high surrogate
		`"\uDC00"`,       // unpaired low surrogate
	}
	for _, input := range tests {
		if _, err := ljson.Unquote(input); err == nil {
			t.Errorf("Unquote(%#q): got nil error, want failure", input)
		}
	}
}
