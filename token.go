// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

// A Token identifies the lexical class of a span of input recognized by a
// Scanner. Unlike a conventional Go lexer, end-of-input and lexical failure
// are themselves token kinds (EOF and Error) rather than signaled out of
// band, so that a Scanner's Next method never needs a second return value.
type Token byte

const (
	Invalid Token = iota
	EOF
	Error

	LBrace // {
	RBrace // }
	LSquare
	RSquare
	Comma
	Colon

	Integer
	Number
	String
	True
	False
	Null
	NaN
	PosInf
	NegInf

	LineComment
	BlockComment
)

var tokenStr = [...]string{
	Invalid:      "invalid token",
	EOF:          "end of input",
	Error:        "lexical error",
	LBrace:       `"{"`,
	RBrace:       `"}"`,
	LSquare:      `"["`,
	RSquare:      `"]"`,
	Comma:        `","`,
	Colon:        `":"`,
	Integer:      "integer",
	Number:       "number",
	String:       "string",
	True:         "true",
	False:        "false",
	Null:         "null",
	NaN:          "NaN",
	PosInf:       "Infinity",
	NegInf:       "-Infinity",
	LineComment:  "line comment",
	BlockComment: "block comment",
}

func (t Token) String() string {
	if int(t) < 0 || int(t) >= len(tokenStr) || tokenStr[t] == "" {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// IsComment reports whether t is a comment token.
func (t Token) IsComment() bool { return t == LineComment || t == BlockComment }

// IsValue reports whether t can begin a JSON value on its own (excluding the
// dropped-null-placeholder case, which is decided by the caller).
func (t Token) IsValue() bool {
	switch t {
	case LBrace, LSquare, Integer, Number, String, True, False, Null, NaN, PosInf, NegInf:
		return true
	default:
		return false
	}
}
