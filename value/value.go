// Package value implements the JSON value tree built by the parser: a
// polymorphic node type supporting swap-payload construction, auto-growing
// array access, insertion-ordered object access, and the source-offset and
// comment annotations the parser attaches while it builds.
package value

import (
	"strconv"

	"github.com/creachadair/ljson/internal/escape"
	"go4.org/mem"
)

// Kind identifies the concrete type of a Value's payload.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Uint
	Float
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// A Value is a single node of a JSON value tree. The zero Value is a null
// value with no annotations.
type Value struct {
	kind Kind

	b bool
	i int64
	u uint64
	f float64
	s []byte

	arr []*Value
	obj *object

	offsetStart, offsetLimit int

	commentBefore         string
	commentAfterOnSameLine string
	commentAfter          string
}

// New returns a new null Value, suitable for use as the root of a parse.
func New() *Value { return &Value{} }

// Kind reports the concrete type of v's payload.
func (v *Value) Kind() Kind { return v.kind }

// resetPayload clears the payload fields of v without touching its
// offsets or comments, implementing the swap-payload semantics required
// of the value tree: replacing what a node holds must not disturb
// metadata already attached to it.
func (v *Value) resetPayload() {
	v.kind = Null
	v.b = false
	v.i = 0
	v.u = 0
	v.f = 0
	v.s = nil
	v.arr = nil
	v.obj = nil
}

// SetNull replaces v's payload with null.
func (v *Value) SetNull() { v.resetPayload() }

// SetBool replaces v's payload with a boolean.
func (v *Value) SetBool(b bool) {
	v.resetPayload()
	v.kind = Bool
	v.b = b
}

// SetInt replaces v's payload with a signed integer.
func (v *Value) SetInt(i int64) {
	v.resetPayload()
	v.kind = Int
	v.i = i
}

// SetUint replaces v's payload with an unsigned integer.
func (v *Value) SetUint(u uint64) {
	v.resetPayload()
	v.kind = Uint
	v.u = u
}

// SetFloat replaces v's payload with a double.
func (v *Value) SetFloat(f float64) {
	v.resetPayload()
	v.kind = Float
	v.f = f
}

// SetString replaces v's payload with a UTF-8 byte string.
func (v *Value) SetString(s []byte) {
	v.resetPayload()
	v.kind = String
	v.s = s
}

// SetArray replaces v's payload with an empty array.
func (v *Value) SetArray() {
	v.resetPayload()
	v.kind = Array
}

// SetObject replaces v's payload with an empty object.
func (v *Value) SetObject() {
	v.resetPayload()
	v.kind = Object
	v.obj = newObject()
}

// Bool returns v's boolean payload and whether v holds one.
func (v *Value) Bool() (bool, bool) { return v.b, v.kind == Bool }

// Int64 returns v's signed-integer payload and whether v holds one.
func (v *Value) Int64() (int64, bool) { return v.i, v.kind == Int }

// Uint64 returns v's unsigned-integer payload and whether v holds one.
func (v *Value) Uint64() (uint64, bool) { return v.u, v.kind == Uint }

// Float64 returns v's double payload and whether v holds one.
func (v *Value) Float64() (float64, bool) { return v.f, v.kind == Float }

// Bytes returns v's string payload and whether v holds one.
func (v *Value) Bytes() ([]byte, bool) { return v.s, v.kind == String }

// Len reports the number of elements of an array, the number of members of
// an object, or the byte length of a string. It is 0 for any other kind.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj.keys)
	case String:
		return len(v.s)
	default:
		return 0
	}
}

// Elem returns the child at index i of an array value, growing the array
// with null elements as needed so that i is always in range. It panics if
// v is not an array.
func (v *Value) Elem(i int) *Value {
	if v.kind != Array {
		panic("value: Elem on non-array Value")
	}
	for len(v.arr) <= i {
		v.arr = append(v.arr, New())
	}
	return v.arr[i]
}

// Elements returns the elements of an array value in order, or nil for any
// other kind.
func (v *Value) Elements() []*Value {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// Field returns the child named name of an object value, inserting a new
// null child if name is not already a member. It panics if v is not an
// object.
func (v *Value) Field(name string) *Value {
	if v.kind != Object {
		panic("value: Field on non-object Value")
	}
	return v.obj.field(name)
}

// IsMember reports whether v is an object with a member named name.
func (v *Value) IsMember(name string) bool {
	return v.kind == Object && v.obj.has(name)
}

// Members returns the member names of an object value, in insertion
// order, or nil for any other kind.
func (v *Value) Members() []string {
	if v.kind != Object {
		return nil
	}
	return v.obj.keys
}

// OffsetStart reports the byte offset of the first source byte of v.
func (v *Value) OffsetStart() int { return v.offsetStart }

// SetOffsetStart records the byte offset of the first source byte of v.
func (v *Value) SetOffsetStart(n int) { v.offsetStart = n }

// OffsetLimit reports the byte offset one past the last source byte of v.
func (v *Value) OffsetLimit() int { return v.offsetLimit }

// SetOffsetLimit records the byte offset one past the last source byte of v.
func (v *Value) SetOffsetLimit(n int) { v.offsetLimit = n }

// CommentBefore returns the comment text (if any) that preceded v in the
// source, EOL-normalized.
func (v *Value) CommentBefore() string { return v.commentBefore }

// SetCommentBefore records v's preceding comment text.
func (v *Value) SetCommentBefore(s string) { v.commentBefore = s }

// CommentAfterOnSameLine returns the comment text (if any) that trailed v
// on its own source line.
func (v *Value) CommentAfterOnSameLine() string { return v.commentAfterOnSameLine }

// SetCommentAfterOnSameLine records v's same-line trailing comment text.
func (v *Value) SetCommentAfterOnSameLine(s string) { v.commentAfterOnSameLine = s }

// CommentAfter returns the trailing comment text (if any) attached to v,
// used only for the root value at the end of a parse.
func (v *Value) CommentAfter() string { return v.commentAfter }

// SetCommentAfter records v's trailing comment text.
func (v *Value) SetCommentAfter(s string) { v.commentAfter = s }

// String renders v as compact JSON, for debugging and diagnostic output.
// It is not a general-purpose encoder: it does not reproduce comments,
// escape invalid UTF-8 specially, or offer any formatting options.
// Non-finite floats are rendered as NaN, +Inf and -Inf, which are not
// valid JSON.
func (v *Value) String() string {
	var sb []byte
	sb = v.appendJSON(sb)
	return string(sb)
}

func (v *Value) appendJSON(dst []byte) []byte {
	switch v.kind {
	case Null:
		return append(dst, "null"...)
	case Bool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Int:
		return strconv.AppendInt(dst, v.i, 10)
	case Uint:
		return strconv.AppendUint(dst, v.u, 10)
	case Float:
		return strconv.AppendFloat(dst, v.f, 'g', -1, 64)
	case String:
		dst = append(dst, '"')
		dst = append(dst, escape.Quote(mem.B(v.s))...)
		return append(dst, '"')
	case Array:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = e.appendJSON(dst)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, k := range v.obj.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, '"')
			dst = append(dst, escape.Quote(mem.S(k))...)
			dst = append(dst, '"', ':')
			dst = v.obj.vals[i].appendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}
