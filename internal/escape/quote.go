// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// shortEscape maps a control byte to the single letter JSON uses in place
// of a full \u00XX escape; anything else below ' ' falls back to that
// six-byte form.
var shortEscape = map[byte]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

const hexDigits = "0123456789abcdef"

// specialRunes lists the runes JSON string quoting escapes even though
// they are otherwise printable.
var specialRunes = map[rune]string{
	'\ufffd': `\ufffd`, // replacement rune
	'\u2028': `\u2028`, // line separator
	'\u2029': `\u2029`, // paragraph separator
}

// Quote encodes src as the body of a double-quoted JSON string: control
// characters, backslashes, and quotation marks are escaped. The enclosing
// quotation marks themselves are not added.
func Quote(src mem.RO) []byte {
	out := make([]byte, 0, src.Len())
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r >= utf8.RuneSelf {
			if esc, ok := specialRunes[r]; ok {
				out = append(out, esc...)
				continue
			}
			var rbuf [utf8.UTFMax]byte
			out = append(out, rbuf[:utf8.EncodeRune(rbuf[:], r)]...)
			continue
		}

		switch {
		case r == '\\' || r == '"':
			out = append(out, '\\', byte(r))
		case r < ' ':
			if c, ok := shortEscape[byte(r)]; ok {
				out = append(out, '\\', c)
			} else {
				out = append(out, '\\', 'u', '0', '0', hexDigits[r>>4], hexDigits[r&0xf])
			}
		default:
			out = append(out, byte(r))
		}
	}
	return out
}
