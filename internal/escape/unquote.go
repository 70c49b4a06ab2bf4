// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing quotation marks already removed.
//
// Unlike a lenient decoder, Unquote treats every malformed escape sequence
// as an error rather than substituting a replacement character: an unknown
// escape, an incomplete \uXXXX, an unpaired high surrogate, and an
// unpaired low surrogate are all reported. On error, badOffset gives the
// byte offset within src of the escape that failed, for callers that want
// to report a precise source location.
func Unquote(src mem.RO) (dec []byte, badOffset int, err error) {
	dec = make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); {
		b := src.At(i)
		if b != '\\' {
			dec = append(dec, b)
			i++
			continue
		}
		if i+1 >= src.Len() {
			return nil, i, errors.New("Empty escape sequence in string")
		}
		switch esc := src.At(i + 1); esc {
		case '"':
			dec = append(dec, '"')
			i += 2
		case '\\':
			dec = append(dec, '\\')
			i += 2
		case '/':
			dec = append(dec, '/')
			i += 2
		case 'b':
			dec = append(dec, '\b')
			i += 2
		case 'f':
			dec = append(dec, '\f')
			i += 2
		case 'n':
			dec = append(dec, '\n')
			i += 2
		case 'r':
			dec = append(dec, '\r')
			i += 2
		case 't':
			dec = append(dec, '\t')
			i += 2
		case 'u':
			cp, err := decodeHex4(src, i+2)
			if err != nil {
				return nil, i, err
			}
			next := i + 2 + 4
			if isHighSurrogate(cp) {
				if next+6 > src.Len() || src.At(next) != '\\' || src.At(next+1) != 'u' {
					return nil, i, errors.New("expecting another \\u token to begin the second half of a unicode surrogate pair")
				}
				lo, err := decodeHex4(src, next+2)
				if err != nil {
					return nil, next, err
				}
				if !isLowSurrogate(lo) {
					return nil, next, errors.New("second half of unicode surrogate pair is not a low surrogate")
				}
				cp = 0x10000 + ((cp & 0x3FF) << 10) + (lo & 0x3FF)
				next += 6
			} else if isLowSurrogate(cp) {
				return nil, i, errors.New("unexpected low surrogate escape without a preceding high surrogate")
			}
			var buf [4]byte
			n := utf8.EncodeRune(buf[:], rune(cp))
			dec = append(dec, buf[:n]...)
			i = next
		default:
			return nil, i, fmt.Errorf("Bad escape sequence %q in string", esc)
		}
	}
	return dec, -1, nil
}

func isHighSurrogate(cp int) bool { return cp >= 0xD800 && cp <= 0xDBFF }
func isLowSurrogate(cp int) bool  { return cp >= 0xDC00 && cp <= 0xDFFF }

// decodeHex4 parses the four hex digits of src at pos as a \uXXXX escape.
func decodeHex4(src mem.RO, pos int) (int, error) {
	if pos+4 > src.Len() {
		return 0, errors.New("Bad unicode escape sequence in string: four digits expected.")
	}
	v, err := parseHex(src.SliceFrom(pos).SliceTo(4))
	if err != nil {
		return 0, fmt.Errorf("Bad unicode escape sequence in string: %w", err)
	}
	return int(v), nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("hexadecimal digit expected")
		}
	}
	return v, nil
}
