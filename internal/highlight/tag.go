// Package highlight implements the incremental, asynchronous
// search-highlight engine.
//
// The Source is the orchestrator. It exposes a two-tier tag query: a cheap
// synchronous prompt path for the interactive context, and a cancellable
// background path that depends only on an immutable Data capture plus a
// text snapshot. An internal change aggregator folds four independent
// staleness signals (search ran, one-time disable, view visibility, the
// hlsearch setting) into a single Changed notification.
package highlight

import (
	"github.com/google/uuid"

	"github.com/dshills/hlsearch/internal/text"
)

// Marker identifies the visual decoration a tag should be rendered with.
// Every tag emitted by one Source carries the same marker, so the host can
// clear or restyle all of a source's highlights as a unit.
type Marker struct {
	// ID uniquely identifies the marker across sources.
	ID uuid.UUID

	// Name is the decoration kind, e.g. "search.highlight".
	Name string
}

// NewMarker creates a marker with a fresh identity.
func NewMarker(name string) Marker {
	return Marker{ID: uuid.New(), Name: name}
}

// Tag is a renderable highlight region in a given text snapshot. The
// caller owns a returned tag; the engine keeps no reference to it.
type Tag struct {
	// Span is the highlighted byte range.
	Span text.Span

	// Marker identifies the decoration to render.
	Marker Marker
}
