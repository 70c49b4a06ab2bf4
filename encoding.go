// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"errors"
	"strings"

	"github.com/creachadair/ljson/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error for any invalid or incomplete escape sequence,
// including an unpaired surrogate, rather than substituting a replacement
// character. The parser decodes string tokens by the same rules.
func Unquote(quoted string) ([]byte, error) {
	if len(quoted) < 2 || !strings.HasPrefix(quoted, `"`) || !strings.HasSuffix(quoted, `"`) {
		return nil, errors.New("missing quotations")
	}
	dec, _, err := escape.Unquote(mem.S(quoted[1 : len(quoted)-1]))
	return dec, err
}
