// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

// A Scanner is a byte-level lexer over a fully-buffered JSON document. It
// classifies exactly one token per call to Next, recording its byte-offset
// span, and does not decode string or numeric content: that is the job of
// the value builder's string and numeric decoders.
//
// A Scanner never returns an error out of band. Lexical failure is
// reported as a token: Next returns Error, and the offending bytes are
// available from Text.
type Scanner struct {
	doc []byte
	pos int

	start, end int
	tok        Token

	allowSingleQuotes  bool
	allowSpecialFloats bool
}

// NewScanner returns a Scanner over doc. allowSingleQuotes and
// allowSpecialFloats gate the corresponding lenient extensions; comment
// recognition is not gated here (see Next's dispatch on '/').
func NewScanner(doc []byte, allowSingleQuotes, allowSpecialFloats bool) *Scanner {
	return &Scanner{doc: doc, allowSingleQuotes: allowSingleQuotes, allowSpecialFloats: allowSpecialFloats}
}

// Token returns the token classified by the most recent call to Next.
func (s *Scanner) Token() Token { return s.tok }

// Span reports the byte-offset span of the most recent token.
func (s *Scanner) Span() Span { return Span{Start: s.start, End: s.end} }

// Text returns the raw source bytes of the most recent token, including
// any surrounding delimiters (quotes, comment markers).
func (s *Scanner) Text() []byte { return s.doc[s.start:s.end] }

// Unread rewinds the scanner to the start of the most recently returned
// token, so a subsequent call to Next re-lexes the same bytes and
// reproduces the same token. It is used by the value builder to implement
// dropped-null placeholders, where a separator or closing delimiter must
// be seen twice: once to notice a value is missing, and once by the
// caller that actually consumes it.
func (s *Scanner) Unread() { s.pos = s.start }

// SkipSpace advances past any run of ASCII whitespace at the current
// position without producing a token.
func (s *Scanner) SkipSpace() {
	for s.pos < len(s.doc) && isSpace(s.doc[s.pos]) {
		s.pos++
	}
}

// PeekByte reports the next unconsumed byte without advancing, or
// (0, false) at end of input.
func (s *Scanner) PeekByte() (byte, bool) {
	if s.pos >= len(s.doc) {
		return 0, false
	}
	return s.doc[s.pos], true
}

// Next classifies and consumes the next token, skipping leading
// whitespace. It always returns a token, using EOF and Error as ordinary
// token kinds rather than signaling out of band.
func (s *Scanner) Next() Token {
	s.SkipSpace()
	s.start = s.pos
	if s.pos >= len(s.doc) {
		s.end = s.pos
		s.tok = EOF
		return s.tok
	}

	c := s.doc[s.pos]
	s.pos++
	switch {
	case c == '{':
		s.tok = LBrace
	case c == '}':
		s.tok = RBrace
	case c == '[':
		s.tok = LSquare
	case c == ']':
		s.tok = RSquare
	case c == ',':
		s.tok = Comma
	case c == ':':
		s.tok = Colon
	case c == '"':
		s.tok = s.scanQuoted('"')
	case c == '\'':
		if s.allowSingleQuotes {
			s.tok = s.scanQuoted('\'')
		} else {
			// A bare single quote when the extension is disabled is a
			// lexical error, not an attempt to read a comment.
			s.tok = Error
		}
	case c == '/':
		s.tok = s.scanComment()
	case c == '-':
		s.tok = s.scanNegative()
	case c == 't':
		s.tok = s.matchKeyword("rue", True)
	case c == 'f':
		s.tok = s.matchKeyword("alse", False)
	case c == 'n':
		s.tok = s.matchKeyword("ull", Null)
	case c == 'N':
		if s.allowSpecialFloats {
			s.tok = s.matchKeyword("aN", NaN)
		} else {
			s.tok = Error
		}
	case c == 'I':
		if s.allowSpecialFloats {
			s.tok = s.matchKeyword("nfinity", PosInf)
		} else {
			s.tok = Error
		}
	case isDigit(c):
		s.tok = s.scanDigits()
	default:
		s.tok = Error
	}
	s.end = s.pos
	return s.tok
}

// scanNegative handles the '-' dispatch case, which is either the start of
// a negative number or, when allowSpecialFloats is set, -Infinity.
func (s *Scanner) scanNegative() Token {
	if s.pos < len(s.doc) && s.doc[s.pos] == 'I' {
		s.pos++
		if s.allowSpecialFloats && s.match("nfinity") {
			return NegInf
		}
		return Error
	}
	return s.scanDigits()
}

// scanDigits consumes the remainder of a number: its digits, an optional
// fractional part, and an optional exponent, per the grammar
// [0-9]*(\.[0-9]*)?([eE][+-]?[0-9]*)?. It does not require the fractional
// or exponent parts to be non-empty; that validation belongs to the
// numeric decoder, not the lexer. This two-stage permissiveness is
// intentional: "1." and "1e" both scan as Number, and are rejected later.
func (s *Scanner) scanDigits() Token {
	isFloat := false
	for s.pos < len(s.doc) && isDigit(s.doc[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.doc) && s.doc[s.pos] == '.' {
		isFloat = true
		s.pos++
		for s.pos < len(s.doc) && isDigit(s.doc[s.pos]) {
			s.pos++
		}
	}
	if s.pos < len(s.doc) && (s.doc[s.pos] == 'e' || s.doc[s.pos] == 'E') {
		isFloat = true
		s.pos++
		if s.pos < len(s.doc) && (s.doc[s.pos] == '+' || s.doc[s.pos] == '-') {
			s.pos++
		}
		for s.pos < len(s.doc) && isDigit(s.doc[s.pos]) {
			s.pos++
		}
	}
	if isFloat {
		return Number
	}
	return Integer
}

// scanQuoted consumes a string span terminated by term, given that the
// opening quote has already been consumed. A backslash unconditionally
// consumes the following byte without interpreting it; escape validation
// happens later, in the string decoder.
func (s *Scanner) scanQuoted(term byte) Token {
	for s.pos < len(s.doc) {
		c := s.doc[s.pos]
		s.pos++
		if c == '\\' {
			if s.pos < len(s.doc) {
				s.pos++
			}
			continue
		}
		if c == term {
			return String
		}
	}
	return Error
}

// scanComment consumes a comment, given that the leading '/' has already
// been consumed. It requires a second '*' or '/'.
func (s *Scanner) scanComment() Token {
	if s.pos >= len(s.doc) {
		return Error
	}
	c := s.doc[s.pos]
	s.pos++
	switch c {
	case '*':
		for s.pos < len(s.doc) {
			c := s.doc[s.pos]
			s.pos++
			if c == '*' && s.pos < len(s.doc) && s.doc[s.pos] == '/' {
				s.pos++
				return BlockComment
			}
		}
		return Error // end of input before "*/"
	case '/':
		for s.pos < len(s.doc) {
			c := s.doc[s.pos]
			if c == '\n' {
				s.pos++
				return LineComment
			}
			if c == '\r' {
				s.pos++
				if s.pos < len(s.doc) && s.doc[s.pos] == '\n' {
					s.pos++
				}
				return LineComment
			}
			s.pos++
		}
		return LineComment // end of input ends a line comment cleanly
	default:
		return Error
	}
}

// match consumes and reports true iff the following len(pat) bytes equal
// pat exactly; on mismatch it consumes nothing.
func (s *Scanner) match(pat string) bool {
	if len(s.doc)-s.pos < len(pat) {
		return false
	}
	for i := 0; i < len(pat); i++ {
		if s.doc[s.pos+i] != pat[i] {
			return false
		}
	}
	s.pos += len(pat)
	return true
}

func (s *Scanner) matchKeyword(rest string, tok Token) Token {
	if s.match(rest) {
		return tok
	}
	return Error
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
