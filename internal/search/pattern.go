// Package search provides the process-wide search state and the match
// scanning primitives the highlight engine is built on.
//
// The package deliberately separates three concerns:
//
//   - PatternData: the immutable value describing the last-used search
//   - State: the single owner of the current PatternData plus the
//     search-ran and disable-one-time notifications
//   - Matcher/Scan: locating pattern occurrences inside a snapshot span
//
// State is mutated only from the interactive context; consumers that need
// search data on a background goroutine must copy it out first.
package search

// Direction is the direction of a search.
type Direction int

const (
	// Forward searches toward the end of the buffer.
	Forward Direction = iota

	// Backward searches toward the start of the buffer.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// PatternData describes the last-used search: the pattern text and the
// direction it was initiated in. It is an immutable value compared by
// value; every new search replaces it wholesale.
type PatternData struct {
	// Pattern is the search pattern as entered by the user.
	Pattern string

	// Direction is the direction the search was initiated in.
	Direction Direction
}

// IsEmpty returns true if no pattern has been set.
func (p PatternData) IsEmpty() bool {
	return p.Pattern == ""
}
