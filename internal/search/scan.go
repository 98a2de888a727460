package search

import (
	"context"
	"unicode/utf8"

	"github.com/dshills/hlsearch/internal/text"
)

// Scan locates all non-overlapping matches of the matcher's pattern inside
// span, ordered by start offset. Matches are reported in snapshot-absolute
// offsets. The scan runs forward, resuming from the end of the previous
// match; after a zero-length match the position advances by one rune so
// the scan always terminates.
//
// Only the text inside span is searched, so a match that would begin
// before or end after the span boundary is never produced; it is excluded
// entirely rather than truncated.
//
// ctx is polled once per located match. On cancellation Scan returns
// ctx.Err() and no matches; partial results are never returned.
func Scan(ctx context.Context, m Matcher, snapshot text.Snapshot, span text.Span) ([]Match, error) {
	span = span.Clamp(snapshot.Len())
	body := snapshot.TextRange(span.Start, span.End())

	var matches []Match
	pos := 0
	for pos <= len(body) {
		mt, ok := m.FindNext(body, pos)
		if !ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		matches = append(matches, Match{Start: span.Start + mt.Start, Length: mt.Length})

		if mt.Length > 0 {
			pos = mt.End()
			continue
		}

		// Zero-length match: step over one rune to make progress.
		if mt.Start >= len(body) {
			break
		}
		_, size := utf8.DecodeRuneInString(body[mt.Start:])
		if size < 1 {
			size = 1
		}
		pos = mt.Start + size
	}

	return matches, nil
}
