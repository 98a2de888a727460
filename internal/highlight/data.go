package highlight

import "github.com/dshills/hlsearch/internal/search"

// Data is the immutable capture of live state taken on the interactive
// context before background work is scheduled. It is the only artifact
// that crosses into the background computation; concurrent mutation of the
// live pattern, settings, or visibility never affects a Data in flight.
type Data struct {
	// PatternData is the last-used search pattern at capture time.
	PatternData search.PatternData

	// IgnoreCase is the ignore-case setting at capture time.
	IgnoreCase bool

	// HighlightEnabled is the hlsearch setting at capture time.
	HighlightEnabled bool
}
