package highlight

import (
	"github.com/dshills/hlsearch/internal/search"
	"github.com/dshills/hlsearch/internal/text"
)

// normalizeSpans turns raw match ranges into renderable highlight spans.
//
// A zero-length match is widened to cover one byte at its start offset; a
// true empty highlight would not be visible. A zero-length match at limit,
// where no byte remains to widen over, is dropped. After widening, spans
// that overlap or touch are merged into their union so one visual run is
// one span rather than a stack of overlapping decorations. The input must
// be ordered by start offset, which the scanner guarantees.
func normalizeSpans(matches []search.Match, limit int) []text.Span {
	var spans []text.Span
	for _, m := range matches {
		span := text.NewSpan(m.Start, m.Length)
		if span.IsEmpty() {
			if span.Start >= limit {
				continue
			}
			span = text.NewSpan(span.Start, 1)
		}

		if n := len(spans); n > 0 && spans[n-1].Touches(span) {
			spans[n-1] = spans[n-1].Union(span)
			continue
		}
		spans = append(spans, span)
	}
	return spans
}
