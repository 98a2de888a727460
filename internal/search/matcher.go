package search

import (
	"fmt"
	"regexp"
)

// Match is a single raw match: a start offset plus a length in bytes.
// A length of zero is a valid match (e.g. produced by patterns like "x*").
type Match struct {
	// Start is the byte offset of the match.
	Start int

	// Length is the match length in bytes, >= 0.
	Length int
}

// End returns the exclusive end offset of the match.
func (m Match) End() int {
	return m.Start + m.Length
}

// Matcher is the black-box find-next primitive the scanner drives. A
// Matcher locates the first occurrence of its pattern at or after a
// position; it has no knowledge of spans, highlighting, or cancellation.
type Matcher interface {
	// FindNext returns the first match in text whose start offset is at
	// or after pos. Returns false if there is no further match.
	FindNext(text string, pos int) (Match, bool)
}

// RegexpMatcher implements Matcher using the standard regexp engine.
type RegexpMatcher struct {
	re *regexp.Regexp
}

// NewRegexpMatcher compiles pattern into a matcher. When ignoreCase is set
// the pattern is compiled case-insensitively.
func NewRegexpMatcher(pattern string, ignoreCase bool) (*RegexpMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling search pattern: %w", err)
	}
	return &RegexpMatcher{re: re}, nil
}

// FindNext returns the first match at or after pos.
func (m *RegexpMatcher) FindNext(text string, pos int) (Match, bool) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		return Match{}, false
	}
	loc := m.re.FindStringIndex(text[pos:])
	if loc == nil {
		return Match{}, false
	}
	return Match{Start: pos + loc[0], Length: loc[1] - loc[0]}, true
}
