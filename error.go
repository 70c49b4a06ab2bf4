// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"fmt"
	"strings"
)

// LineCol identifies a 1-based line and column position in a source
// document.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("Line %d, Column %d", lc.Line, lc.Column) }

// ErrorInfo records a single error encountered while parsing, with the
// source location of the offending token and, for some errors, a second
// location giving more detail (for example, the exact byte at which an
// escape sequence went wrong).
type ErrorInfo struct {
	Location LineCol
	Message  string
	Extra    *LineCol
}

func (e ErrorInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "* %s\n  %s\n", e.Location, e.Message)
	if e.Extra != nil {
		fmt.Fprintf(&sb, "See %s for detail.\n", *e.Extra)
	}
	return sb.String()
}

// FormatErrors renders errs as a single human-readable report, in the
// same format CharReaderBuilder's C++ ancestor produced: one paragraph
// per error, each starting with "* Line L, Column C".
func FormatErrors(errs []ErrorInfo) string {
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString(e.String())
	}
	return sb.String()
}
