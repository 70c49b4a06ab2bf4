// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ljson implements a permissive JSON parser in the style of
// jsoncpp's CharReader: a byte-level scanner, a recursive-descent value
// builder that produces a value.Value tree, and a set of lenient
// extensions to standard JSON controlled by a Config.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over a fully buffered
// document. Construct a Scanner and call Next to iterate over its
// tokens; Next always returns a token, using EOF and Error as ordinary
// token kinds rather than an out-of-band error:
//
//	sc := ljson.NewScanner(doc, false, false)
//	for {
//	  tok := sc.Next()
//	  if tok == ljson.EOF || tok == ljson.Error {
//	    break
//	  }
//	  log.Printf("token %v: %q", tok, sc.Text())
//	}
//
// # Parsing
//
// Parse consumes an entire document into a value.Value tree, under the
// policies given by a Config:
//
//	root, errs, ok := ljson.Parse(doc, ljson.DefaultConfig())
//	if !ok {
//	  log.Fatal(ljson.FormatErrors(errs))
//	}
//
// DefaultConfig enables comments and collects them onto the tree;
// StrictConfig disables all lenient extensions and matches RFC 8259.
// Settings offers a third path, decoding a bag of named options (as
// might arrive from a configuration file or flag set) into a Config.
//
// # Errors
//
// Most malformed input produces a recoverable ErrorInfo: Parse skips to
// the closing delimiter of the enclosing array or object, and each outer
// container does the same, so the tree keeps the values built before the
// error but no value after it is parsed. A
// document that recurses beyond a Config's StackLimit, or that contains
// an object key longer than the parser can address, is instead reported
// as a single ErrorInfo and no attempt is made to recover: those are
// structural problems with the document as a whole, not a local syntax
// mistake.
//
// # Values
//
// The value.Value type is the tree Parse builds. Every kind of JSON
// value is represented by the same node type, using accessor and setter
// pairs to work with a payload of a particular kind (SetInt/Int64,
// SetString/Bytes, and so on) and Kind to discover which one currently
// applies. Nodes also carry the byte-offset span they were parsed from
// and, when comment collection is enabled, the comment text that
// surrounded them in the source.
package ljson
