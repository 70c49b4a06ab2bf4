package ljson

// A Span describes a contiguous span of a source input as a pair of byte
// offsets, [Start, End).
type Span struct {
	Start int
	End   int
}

// Len reports the length in bytes of the span.
func (s Span) Len() int { return s.End - s.Start }
