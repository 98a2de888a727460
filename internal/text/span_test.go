package text

import "testing"

func TestNewSpan(t *testing.T) {
	s := NewSpan(4, 3)
	if s.Start != 4 || s.Length != 3 {
		t.Errorf("NewSpan(4, 3) = %v", s)
	}
	if s.End() != 7 {
		t.Errorf("End() = %d, want 7", s.End())
	}
}

func TestNewSpan_NegativeLength(t *testing.T) {
	s := NewSpan(4, -1)
	if s.Length != 0 {
		t.Errorf("negative length not clamped: %v", s)
	}
}

func TestSpanFromRange(t *testing.T) {
	s := SpanFromRange(2, 8)
	if s.Start != 2 || s.Length != 6 {
		t.Errorf("SpanFromRange(2, 8) = %v", s)
	}
}

func TestSpan_String(t *testing.T) {
	if got := NewSpan(1, 4).String(); got != "[1:5)" {
		t.Errorf("String() = %q, want %q", got, "[1:5)")
	}
}

func TestSpan_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"overlap", NewSpan(0, 5), NewSpan(3, 5), true},
		{"contained", NewSpan(0, 10), NewSpan(3, 2), true},
		{"disjoint", NewSpan(0, 3), NewSpan(5, 3), false},
		{"touching end-to-start", NewSpan(0, 3), NewSpan(3, 3), false},
		{"touching start-to-end", NewSpan(3, 3), NewSpan(0, 3), false},
		{"identical", NewSpan(2, 4), NewSpan(2, 4), true},
		{"both empty same point", NewSpan(2, 0), NewSpan(2, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpan_Touches(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"adjacent", NewSpan(0, 3), NewSpan(3, 3), true},
		{"overlap", NewSpan(0, 4), NewSpan(3, 3), true},
		{"gap", NewSpan(0, 3), NewSpan(4, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Touches(tt.b); got != tt.want {
				t.Errorf("%v.Touches(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := NewSpan(2, 6) // [2:8)

	tests := []struct {
		name  string
		inner Span
		want  bool
	}{
		{"inside", NewSpan(3, 2), true},
		{"exact", NewSpan(2, 6), true},
		{"starts before", NewSpan(1, 3), false},
		{"ends after", NewSpan(6, 3), false},
		{"empty inside", NewSpan(4, 0), true},
		{"empty at start", NewSpan(2, 0), true},
		{"empty at exclusive end", NewSpan(8, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", outer, tt.inner, got, tt.want)
			}
		})
	}
}

func TestSpan_Union(t *testing.T) {
	got := NewSpan(2, 3).Union(NewSpan(4, 4))
	want := SpanFromRange(2, 8)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestSpan_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		limit int
		want  Span
	}{
		{"inside", NewSpan(1, 3), 10, NewSpan(1, 3)},
		{"past end", NewSpan(8, 5), 10, SpanFromRange(8, 10)},
		{"fully past end", NewSpan(12, 3), 10, NewSpan(12, 0)},
		{"negative start", Span{Start: -2, Length: 5}, 10, SpanFromRange(0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Clamp(tt.limit); got != tt.want {
				t.Errorf("%v.Clamp(%d) = %v, want %v", tt.span, tt.limit, got, tt.want)
			}
		})
	}
}

func TestStringSnapshot(t *testing.T) {
	snap := NewStringSnapshot("foo is the bar")

	if snap.Len() != 14 {
		t.Errorf("Len() = %d, want 14", snap.Len())
	}
	if got := snap.TextRange(0, 3); got != "foo" {
		t.Errorf("TextRange(0, 3) = %q, want %q", got, "foo")
	}
	if got := snap.TextRange(11, 99); got != "bar" {
		t.Errorf("TextRange clamped = %q, want %q", got, "bar")
	}
	if got := snap.TextRange(5, 5); got != "" {
		t.Errorf("empty range = %q, want empty", got)
	}
	if snap.Revision() != 0 {
		t.Errorf("Revision() = %d, want 0", snap.Revision())
	}
}

func TestStringSnapshotRev(t *testing.T) {
	snap := NewStringSnapshotRev("x", 7)
	if snap.Revision() != 7 {
		t.Errorf("Revision() = %d, want 7", snap.Revision())
	}
}
