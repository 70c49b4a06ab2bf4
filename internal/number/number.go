// Package number implements the two-phase numeric decoder: an exact
// integer parse with an overflow-safe fallback to a locale-independent
// floating-point parse.
package number

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which field of a Decoded value holds the result.
type Kind int

const (
	KindInt64 Kind = iota
	KindUint64
	KindFloat64
)

// Decoded is the result of decoding a numeric token.
type Decoded struct {
	Kind    Kind
	Int64   int64
	Uint64  uint64
	Float64 float64
}

// Format renders a Decoded value in its canonical decimal form, used to
// stringify numeric object keys.
func Format(d Decoded) string {
	switch d.Kind {
	case KindInt64:
		return strconv.FormatInt(d.Int64, 10)
	case KindUint64:
		return strconv.FormatUint(d.Uint64, 10)
	default:
		return strconv.FormatFloat(d.Float64, 'g', -1, 64)
	}
}

// Decode parses text, the byte span of a numeric token as produced by the
// scanner, preferring an exact integer result and falling back to a
// double when the text does not fit in an int64/uint64 or is not a valid
// integer literal at all (e.g. it has a fractional part or exponent).
func Decode(text []byte) (Decoded, error) {
	if len(text) == 0 {
		return Decoded{}, errors.New("empty numeric token")
	}
	if d, ok := decodeInteger(text); ok {
		return d, nil
	}
	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		var ne *strconv.NumError
		if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
			return Decoded{}, fmt.Errorf("'%s' is not a number.", text)
		}
		// ErrRange means the text was well-formed but overflowed to +/-Inf;
		// that is an accepted, lossy result, not a decode failure.
	}
	return Decoded{Kind: KindFloat64, Float64: f}, nil
}

func decodeInteger(text []byte) (Decoded, bool) {
	neg := text[0] == '-'
	digits := text
	if neg {
		digits = text[1:]
	}
	if len(digits) == 0 || !allDigits(digits) {
		return Decoded{}, false
	}

	var capacity uint64 = math.MaxUint64
	if neg {
		capacity = uint64(math.MaxInt64) + 1
	}
	acc, ok := accumulate(digits, capacity)
	if !ok {
		return Decoded{}, false
	}
	if neg {
		// acc <= capacity == -math.MinInt64 as a uint64; int64(acc) followed
		// by negation wraps correctly to math.MinInt64 in the boundary case.
		return Decoded{Kind: KindInt64, Int64: -int64(acc)}, true
	}
	if acc <= uint64(math.MaxInt64) {
		return Decoded{Kind: KindInt64, Int64: int64(acc)}, true
	}
	return Decoded{Kind: KindUint64, Uint64: acc}, true
}

// accumulate parses digits as an unsigned decimal number, failing (ok=false)
// if the value would exceed capacity.
func accumulate(digits []byte, capacity uint64) (acc uint64, ok bool) {
	threshold := capacity / 10
	rem := capacity % 10
	for i, c := range digits {
		d := uint64(c - '0')
		last := i == len(digits)-1
		if acc > threshold || (acc == threshold && (!last || d > rem)) {
			return 0, false
		}
		acc = acc*10 + d
	}
	return acc, true
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
