// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"fmt"
	"math"

	"github.com/creachadair/ljson/internal/escape"
	"github.com/creachadair/ljson/internal/number"
	"github.com/creachadair/ljson/internal/textpos"
	"github.com/creachadair/ljson/value"
	"go4.org/mem"
)

// Parse parses doc under the given configuration and returns the resulting
// value tree together with the list of errors encountered. ok reports
// overall success: it is false whenever any error was recorded, even if
// recovery produced a usable (partial) tree.
func Parse(doc []byte, cfg Config) (root *value.Value, errs []ErrorInfo, ok bool) {
	p := &parser{
		cfg:     cfg,
		doc:     doc,
		sc:      NewScanner(doc, cfg.AllowSingleQuotes, cfg.AllowSpecialFloats),
		collect: cfg.collectComments(),
	}
	root = value.New()
	p.stack = append(p.stack, root)

	ok = p.runToCompletion()

	tok := p.nextSignificantToken()
	if cfg.FailIfExtra && tok != EOF {
		p.addError("Extra non-whitespace after JSON value.", p.sc.Span(), -1)
		return root, p.errs, false
	}
	if p.collect && p.commentsBefore != "" {
		root.SetCommentAfter(p.commentsBefore)
	}
	if cfg.StrictRoot {
		if k := root.Kind(); k != value.Array && k != value.Object {
			ok = p.addError("A valid JSON document must be either an array or an object value.",
				Span{Start: 0, End: len(doc)}, -1) && ok
		}
	}
	return root, p.errs, ok
}

// fatalError signals one of the two non-recoverable conditions (stack
// limit exceeded, oversized key). It is only ever used to unwind the
// recursive descent back to runToCompletion; it never crosses Parse's
// public boundary as a panic.
type fatalError string

func (e fatalError) Error() string { return string(e) }

type parser struct {
	cfg Config
	doc []byte
	sc  *Scanner

	errs  []ErrorInfo
	stack []*value.Value

	collect        bool
	commentsBefore string
	lastValueEnd   int
	lastValue      *value.Value
}

func (p *parser) runToCompletion() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fe, isFatal := r.(fatalError)
			if !isFatal {
				panic(r)
			}
			ok = p.addError(string(fe), p.sc.Span(), -1)
		}
	}()
	return p.readValue()
}

func (p *parser) top() *value.Value    { return p.stack[len(p.stack)-1] }
func (p *parser) push(v *value.Value)  { p.stack = append(p.stack, v) }
func (p *parser) pop()                 { p.stack = p.stack[:len(p.stack)-1] }

// nextSignificantToken returns the next token, having collected (and
// discarded) any comment tokens along the way, but only when comments are
// allowed at all; otherwise it returns the very next token as-is,
// matching the source parser's behavior of gating the comment-skipping
// loop on allowComments rather than gating comment recognition itself.
func (p *parser) nextSignificantToken() Token {
	tok := p.sc.Next()
	for p.cfg.AllowComments && tok.IsComment() {
		p.collectComment(tok)
		tok = p.sc.Next()
	}
	return tok
}

// collectComment records a comment token's text according to the
// placement rules: same-line trailing comments attach to the most
// recently completed value, everything else accumulates into the
// comments-before buffer for the next value.
func (p *parser) collectComment(tok Token) {
	if !p.collect {
		return
	}
	span := p.sc.Span()
	raw := p.doc[span.Start:span.End]

	sameLine := p.lastValue != nil &&
		!containsNewline(p.doc[p.lastValueEnd:span.Start]) &&
		(tok != BlockComment || !containsNewline(raw))

	text := normalizeEOL(raw)
	if sameLine {
		p.lastValue.SetCommentAfterOnSameLine(text)
	} else {
		p.commentsBefore += text
	}
}

func containsNewline(b []byte) bool {
	for _, c := range b {
		if c == '\n' || c == '\r' {
			return true
		}
	}
	return false
}

func normalizeEOL(b []byte) string {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\r':
			out = append(out, '\n')
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
		default:
			out = append(out, b[i])
		}
	}
	return string(out)
}

// readValue consumes exactly one JSON value into the value at the top of
// the cursor stack.
func (p *parser) readValue() bool {
	if len(p.stack) > p.cfg.StackLimit {
		panic(fatalError("Exceeded stackLimit in readValue()."))
	}

	tok := p.nextSignificantToken()
	cur := p.top()
	if p.collect && p.commentsBefore != "" {
		cur.SetCommentBefore(p.commentsBefore)
		p.commentsBefore = ""
	}
	span := p.sc.Span()

	ok := true
	switch tok {
	case LBrace:
		ok = p.readObject(span.Start)
		cur.SetOffsetLimit(p.sc.Span().End)
	case LSquare:
		ok = p.readArray(span.Start)
		cur.SetOffsetLimit(p.sc.Span().End)
	case Integer, Number:
		ok = p.decodeNumber(cur, span)
	case String:
		ok = p.decodeString(cur, span)
	case True:
		cur.SetBool(true)
		cur.SetOffsetStart(span.Start)
		cur.SetOffsetLimit(span.End)
	case False:
		cur.SetBool(false)
		cur.SetOffsetStart(span.Start)
		cur.SetOffsetLimit(span.End)
	case Null:
		cur.SetNull()
		cur.SetOffsetStart(span.Start)
		cur.SetOffsetLimit(span.End)
	case NaN:
		cur.SetFloat(math.NaN())
		cur.SetOffsetStart(span.Start)
		cur.SetOffsetLimit(span.End)
	case PosInf:
		cur.SetFloat(math.Inf(1))
		cur.SetOffsetStart(span.Start)
		cur.SetOffsetLimit(span.End)
	case NegInf:
		cur.SetFloat(math.Inf(-1))
		cur.SetOffsetStart(span.Start)
		cur.SetOffsetLimit(span.End)
	case Comma, RBrace, RSquare:
		if p.cfg.AllowDroppedNullPlaceholders {
			p.sc.Unread()
			cur.SetNull()
			cur.SetOffsetStart(span.Start)
			cur.SetOffsetLimit(span.Start)
		} else {
			cur.SetOffsetStart(span.Start)
			cur.SetOffsetLimit(span.End)
			return p.addError("Syntax error: value, object or array expected.", span, -1)
		}
	default:
		cur.SetOffsetStart(span.Start)
		cur.SetOffsetLimit(span.End)
		return p.addError("Syntax error: value, object or array expected.", span, -1)
	}

	if p.collect && ok {
		p.lastValueEnd = p.sc.Span().End
		p.lastValue = cur
	}
	return ok
}

func (p *parser) readObject(startOffset int) bool {
	cur := p.top()
	cur.SetObject()
	cur.SetOffsetStart(startOffset)

	first := true
	for {
		tok := p.nextSignificantTokenRaw()
		if tok == RBrace && first {
			return true
		}
		first = false

		keySpan := p.sc.Span()
		var name string
		switch {
		case tok == String:
			raw := p.sc.Text()
			dec, badOffset, err := escape.Unquote(mem.B(raw[1 : len(raw)-1]))
			if err != nil {
				extra := keySpan.Start + 1 + badOffset
				p.addError(err.Error(), keySpan, extra)
				return p.recoverFromError(RBrace)
			}
			name = string(dec)
		case (tok == Integer || tok == Number) && p.cfg.AllowNumericKeys:
			dec, err := number.Decode(p.sc.Text())
			if err != nil {
				p.addError(err.Error(), keySpan, -1)
				return p.recoverFromError(RBrace)
			}
			name = number.Format(dec)
		default:
			p.addError("Missing '}' or object member name", keySpan, -1)
			return p.recoverFromError(RBrace)
		}

		colon := p.sc.Next()
		if colon != Colon {
			p.addError("Missing ':' after object member name", p.sc.Span(), -1)
			return p.recoverFromError(RBrace)
		}

		if len(name) >= 1<<30 {
			panic(fatalError("key length >= 2^30"))
		}

		if p.cfg.RejectDupKeys && cur.IsMember(name) {
			p.addError(fmt.Sprintf("Duplicate key: '%s'", name), keySpan, -1)
			return p.recoverFromError(RBrace)
		}

		child := cur.Field(name)
		p.push(child)
		ok := p.readValue()
		p.pop()
		if !ok {
			return p.recoverFromError(RBrace)
		}

		sep := p.nextSignificantTokenRaw()
		switch sep {
		case RBrace:
			return true
		case Comma:
			// continue the loop
		default:
			p.addError("Missing ',' or '}' in object declaration", p.sc.Span(), -1)
			return p.recoverFromError(RBrace)
		}
	}
}

func (p *parser) readArray(startOffset int) bool {
	cur := p.top()
	cur.SetArray()
	cur.SetOffsetStart(startOffset)

	p.sc.SkipSpace()
	if b, ok := p.sc.PeekByte(); ok && b == ']' {
		p.sc.Next()
		return true
	}

	index := 0
	for {
		child := cur.Elem(index)
		index++
		p.push(child)
		ok := p.readValue()
		p.pop()
		if !ok {
			return p.recoverFromError(RSquare)
		}

		tok := p.nextSignificantTokenRaw()
		switch tok {
		case RSquare:
			return true
		case Comma:
			// continue the loop
		default:
			p.addError("Missing ',' or ']' in array declaration", p.sc.Span(), -1)
			return p.recoverFromError(RSquare)
		}
	}
}

// nextSignificantTokenRaw is nextSignificantToken with the same comment
// skipping behavior, split out only so readObject/readArray's own
// call sites read clearly; it delegates entirely to nextSignificantToken.
func (p *parser) nextSignificantTokenRaw() Token { return p.nextSignificantToken() }

func (p *parser) decodeNumber(cur *value.Value, span Span) bool {
	dec, err := number.Decode(p.sc.Text())
	if err != nil {
		return p.addError(err.Error(), span, -1)
	}
	switch dec.Kind {
	case number.KindInt64:
		cur.SetInt(dec.Int64)
	case number.KindUint64:
		cur.SetUint(dec.Uint64)
	case number.KindFloat64:
		cur.SetFloat(dec.Float64)
	}
	cur.SetOffsetStart(span.Start)
	cur.SetOffsetLimit(span.End)
	return true
}

func (p *parser) decodeString(cur *value.Value, span Span) bool {
	raw := p.sc.Text()
	dec, badOffset, err := escape.Unquote(mem.B(raw[1 : len(raw)-1]))
	if err != nil {
		extra := span.Start + 1 + badOffset
		return p.addError(err.Error(), span, extra)
	}
	cur.SetString(dec)
	cur.SetOffsetStart(span.Start)
	cur.SetOffsetLimit(span.End)
	return true
}

// addError records a recoverable error at the location of span, plus an
// optional extra detail location, and always returns false so callers can
// write "return p.addError(...)".
func (p *parser) addError(message string, span Span, extraOffset int) bool {
	line, col := textpos.LineCol(p.doc, span.Start)
	info := ErrorInfo{Location: LineCol{Line: line, Column: col}, Message: message}
	if extraOffset >= 0 {
		el, ec := textpos.LineCol(p.doc, extraOffset)
		info.Extra = &LineCol{Line: el, Column: ec}
	}
	p.errs = append(p.errs, info)
	return false
}

// recoverFromError skips tokens until it sees sync or end-of-input, then
// discards any errors that were recorded while skipping (there should
// ordinarily be none, since the lexer never fails outright), so that only
// the error that triggered recovery is reported. It always returns false.
func (p *parser) recoverFromError(sync Token) bool {
	mark := len(p.errs)
	for {
		tok := p.sc.Next()
		if tok == sync || tok == EOF {
			break
		}
	}
	p.errs = p.errs[:mark]
	return false
}
