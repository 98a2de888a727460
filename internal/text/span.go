// Package text provides span arithmetic and the read-only snapshot view of
// the host buffer that the highlight engine consumes.
//
// Spans are byte ranges expressed as a start offset plus a length. All
// intervals are half-open: a span covers [Start, Start+Length). The engine
// never mutates text; it only reads ranges out of a Snapshot the host
// supplies.
package text

import "fmt"

// Span is a byte range in a snapshot, covering [Start, Start+Length).
type Span struct {
	Start  int // Inclusive start offset
	Length int // Number of bytes covered, >= 0
}

// NewSpan creates a span from a start offset and length.
// A negative length is treated as zero.
func NewSpan(start, length int) Span {
	if length < 0 {
		length = 0
	}
	return Span{Start: start, Length: length}
}

// SpanFromRange creates a span from inclusive start and exclusive end offsets.
func SpanFromRange(start, end int) Span {
	return NewSpan(start, end-start)
}

// End returns the exclusive end offset of the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End())
}

// Contains returns true if other lies entirely within this span.
// An empty other at this span's exclusive end is not contained.
func (s Span) Contains(other Span) bool {
	if other.IsEmpty() {
		return other.Start >= s.Start && other.Start < s.End()
	}
	return other.Start >= s.Start && other.End() <= s.End()
}

// Intersects returns true if the spans share at least one byte.
// Boundary-touching spans (one ending exactly where the other begins) do
// not intersect.
func (s Span) Intersects(other Span) bool {
	return s.Start < other.End() && other.Start < s.End()
}

// Touches returns true if the spans overlap or are directly adjacent.
// Used when merging highlight runs: two touching spans render as one.
func (s Span) Touches(other Span) bool {
	return s.Start <= other.End() && other.Start <= s.End()
}

// Union returns the smallest span covering both spans.
func (s Span) Union(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return SpanFromRange(start, end)
}

// Clamp restricts the span to [0, limit), dropping any part outside.
func (s Span) Clamp(limit int) Span {
	start := s.Start
	if start < 0 {
		start = 0
	}
	end := s.End()
	if end > limit {
		end = limit
	}
	if end < start {
		end = start
	}
	return SpanFromRange(start, end)
}
