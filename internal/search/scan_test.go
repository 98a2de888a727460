package search

import (
	"context"
	"testing"

	"github.com/dshills/hlsearch/internal/text"
)

func mustMatcher(t *testing.T, pattern string, ignoreCase bool) *RegexpMatcher {
	t.Helper()
	m, err := NewRegexpMatcher(pattern, ignoreCase)
	if err != nil {
		t.Fatalf("NewRegexpMatcher(%q) error: %v", pattern, err)
	}
	return m
}

func TestScan_SingleMatch(t *testing.T) {
	snap := text.NewStringSnapshot("foo is the bar")
	m := mustMatcher(t, "foo", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(0, snap.Len()))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0] != (Match{Start: 0, Length: 3}) {
		t.Errorf("match = %+v, want {0 3}", matches[0])
	}
}

func TestScan_OutsideSpan(t *testing.T) {
	snap := text.NewStringSnapshot("foo is the bar")
	m := mustMatcher(t, "foo", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(4, 3))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches for span outside the match, want 0", len(matches))
	}
}

func TestScan_MultipleMatches(t *testing.T) {
	snap := text.NewStringSnapshot("cat dog cat dog cat")
	m := mustMatcher(t, "cat", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(0, snap.Len()))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	want := []Match{{Start: 0, Length: 3}, {Start: 8, Length: 3}, {Start: 16, Length: 3}}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d", len(matches), len(want))
	}
	for i, w := range want {
		if matches[i] != w {
			t.Errorf("match[%d] = %+v, want %+v", i, matches[i], w)
		}
	}
}

func TestScan_IgnoreCase(t *testing.T) {
	snap := text.NewStringSnapshot("Foo FOO foo")

	sensitive := mustMatcher(t, "foo", false)
	matches, err := Scan(context.Background(), sensitive, snap, text.NewSpan(0, snap.Len()))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("case-sensitive: got %d matches, want 1", len(matches))
	}

	insensitive := mustMatcher(t, "foo", true)
	matches, err = Scan(context.Background(), insensitive, snap, text.NewSpan(0, snap.Len()))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("case-insensitive: got %d matches, want 3", len(matches))
	}
}

func TestScan_ZeroLengthMatchesTerminate(t *testing.T) {
	snap := text.NewStringSnapshot("cat")
	m := mustMatcher(t, "x*", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(0, snap.Len()))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	// Zero-length match at every position, including end of text.
	want := []Match{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for i, w := range want {
		if matches[i] != w {
			t.Errorf("match[%d] = %+v, want %+v", i, matches[i], w)
		}
	}
}

func TestScan_MixedZeroAndNonZero(t *testing.T) {
	snap := text.NewStringSnapshot("cat")
	m := mustMatcher(t, "a*", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(0, snap.Len()))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	want := []Match{{0, 0}, {1, 1}, {2, 0}, {3, 0}}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for i, w := range want {
		if matches[i] != w {
			t.Errorf("match[%d] = %+v, want %+v", i, matches[i], w)
		}
	}
}

func TestScan_ZeroLengthAdvancesByRune(t *testing.T) {
	snap := text.NewStringSnapshot("héllo") // 'é' is two bytes
	m := mustMatcher(t, "x*", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(0, snap.Len()))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	for _, mt := range matches {
		if mt.Start == 2 {
			t.Errorf("scan produced a match inside a multi-byte rune: %+v", matches)
		}
	}
}

func TestScan_SpanOffsetsAreAbsolute(t *testing.T) {
	snap := text.NewStringSnapshot("xx foo xx foo")
	m := mustMatcher(t, "foo", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(7, 6))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Start != 10 {
		t.Errorf("match start = %d, want absolute offset 10", matches[0].Start)
	}
}

func TestScan_SpanClampedToSnapshot(t *testing.T) {
	snap := text.NewStringSnapshot("foo")
	m := mustMatcher(t, "foo", false)

	matches, err := Scan(context.Background(), m, snap, text.NewSpan(0, 100))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("got %d matches, want 1", len(matches))
	}
}

func TestScan_Cancellation(t *testing.T) {
	snap := text.NewStringSnapshot("cat dog cat dog cat")
	m := mustMatcher(t, "cat", false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matches, err := Scan(ctx, m, snap, text.NewSpan(0, snap.Len()))
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if matches != nil {
		t.Errorf("cancelled scan returned matches: %+v", matches)
	}
}

func TestNewRegexpMatcher_InvalidPattern(t *testing.T) {
	if _, err := NewRegexpMatcher("[unclosed", false); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestRegexpMatcher_FindNext(t *testing.T) {
	m := mustMatcher(t, "ab", false)

	tests := []struct {
		name  string
		text  string
		pos   int
		want  Match
		found bool
	}{
		{"at start", "abab", 0, Match{0, 2}, true},
		{"resume", "abab", 1, Match{2, 2}, true},
		{"none left", "abab", 3, Match{}, false},
		{"pos past end", "ab", 5, Match{}, false},
		{"negative pos", "ab", -1, Match{0, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := m.FindNext(tt.text, tt.pos)
			if found != tt.found || got != tt.want {
				t.Errorf("FindNext(%q, %d) = %+v, %v; want %+v, %v",
					tt.text, tt.pos, got, found, tt.want, tt.found)
			}
		})
	}
}
