package highlight

import (
	"context"
	"sync"

	"github.com/dshills/hlsearch/internal/config"
	"github.com/dshills/hlsearch/internal/search"
	"github.com/dshills/hlsearch/internal/text"
)

// View is the slice of the host's text view the engine consumes: current
// visibility plus a notification when it changes.
type View interface {
	// Visible reports whether the view is currently visible.
	Visible() bool

	// OnVisibilityChanged registers a listener for visibility changes.
	// The listener receives the new visibility value.
	OnVisibilityChanged(fn func(visible bool)) Unsubscriber
}

// Subscription represents an active Changed listener registration.
type Subscription struct {
	id     uint64
	source *Source
}

// Unsubscribe removes this listener. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.source != nil {
		s.source.unsubscribeChanged(s.id)
	}
}

// Source produces search-highlight tags for a text view. It wires the
// scanner and normalizer behind a two-tier query protocol and owns the
// enable/disable state machine.
//
// All state mutation happens on the interactive context, driven by the
// notifications Source subscribes to. The background path never touches
// live state; it works only from the Data capture handed to it.
type Source struct {
	mu sync.Mutex

	searchState *search.State
	settings    *config.Store
	view        View

	marker Marker
	agg    *Aggregator

	// visible mirrors the host-reported visibility.
	visible bool

	// oneTimeDisabled suppresses highlighting until hlsearch is toggled
	// back on.
	oneTimeDisabled bool

	// lastSearchPattern is the pattern observed at the previous
	// search-ran signal, for edge-triggering the Changed notification.
	lastSearchPattern search.PatternData

	changed       map[uint64]func()
	nextChangedID uint64
}

// NewSource creates a tag source wired to the given search state, settings
// store, and view. Call Close when the view is torn down to release the
// change subscriptions.
func NewSource(state *search.State, settings *config.Store, view View) *Source {
	s := &Source{
		searchState:       state,
		settings:          settings,
		view:              view,
		marker:            NewMarker("search.highlight"),
		agg:               NewAggregator(),
		visible:           view.Visible(),
		lastSearchPattern: state.Current(),
		changed:           make(map[uint64]func()),
	}

	s.agg.Add(state.OnSearchRan(s.onSearchRan))
	s.agg.Add(state.OnDisableOneTime(s.onDisableOneTime))
	s.agg.Add(view.OnVisibilityChanged(s.onVisibilityChanged))
	s.agg.Add(settings.OnChange(config.KeyHighlightSearch, s.onHighlightSearchChanged))

	return s
}

// Close releases all subscriptions held on the search state, settings
// store, and view. The source stops reacting to changes afterward.
func (s *Source) Close() {
	s.agg.Close()
}

// Marker returns the marker identity carried by every tag this source
// emits.
func (s *Source) Marker() Marker {
	return s.marker
}

// IsProvidingTags reports whether the hlsearch setting is on. It ignores
// visibility and the one-time disable; callers use it to decide whether to
// ask for tags at all.
func (s *Source) IsProvidingTags() bool {
	return s.settings.HighlightSearch()
}

// TryGetTagsPrompt answers a tag query without doing search work. It
// returns (true, nil) when highlighting is suppressed: hlsearch off,
// one-time disabled, or the view not visible, checked in that order. When
// real work is needed it returns (false, nil) and the caller must use the
// background path. It never has side effects.
func (s *Source) TryGetTagsPrompt(_ text.Span) (bool, []Tag) {
	if !s.settings.HighlightSearch() {
		return true, nil
	}

	s.mu.Lock()
	disabled := s.oneTimeDisabled
	visible := s.visible
	s.mu.Unlock()

	if disabled {
		return true, nil
	}
	if !visible {
		return true, nil
	}
	return false, nil
}

// DataForSpan captures the current pattern, ignore-case flag, and
// highlight-enabled flag for a background computation. The capture happens
// under the source's mutex so a concurrent mutation can never produce a
// torn read. Call it on the interactive context before handing work to a
// background goroutine.
func (s *Source) DataForSpan() Data {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Data{
		PatternData:      s.searchState.Current(),
		IgnoreCase:       s.settings.IgnoreCase(),
		HighlightEnabled: s.settings.HighlightSearch(),
	}
}

// TagsInBackground computes highlight tags for span. It is pure with
// respect to live state: the result depends only on data, snapshot, and
// span, so it is safe to run on a background goroutine concurrently with
// interactive mutation.
//
// An empty pattern or a capture taken while highlighting was disabled
// yields no tags and no scan. ctx is polled at each located match; on
// cancellation the call returns (nil, ctx.Err()) and the caller must treat
// it as "no answer yet", never as an empty result.
func (s *Source) TagsInBackground(ctx context.Context, data Data, snapshot text.Snapshot, span text.Span) ([]Tag, error) {
	if data.PatternData.IsEmpty() || !data.HighlightEnabled {
		return nil, nil
	}

	matcher, err := search.NewRegexpMatcher(data.PatternData.Pattern, data.IgnoreCase)
	if err != nil {
		return nil, err
	}

	clamped := span.Clamp(snapshot.Len())
	matches, err := search.Scan(ctx, matcher, snapshot, clamped)
	if err != nil {
		return nil, err
	}

	// The scanner only searches inside the span, but boundary matches are
	// re-checked so nothing outside the strict intersection slips through.
	kept := matches[:0]
	for _, m := range matches {
		if clamped.Contains(text.NewSpan(m.Start, m.Length)) {
			kept = append(kept, m)
		}
	}

	spans := normalizeSpans(kept, clamped.End())
	if len(spans) == 0 {
		return nil, nil
	}

	tags := make([]Tag, 0, len(spans))
	for _, sp := range spans {
		tags = append(tags, Tag{Span: sp, Marker: s.marker})
	}
	return tags, nil
}

// OnChanged registers a listener for the Changed notification: tags
// previously produced by this source may be stale and should be
// re-requested. Delivery is synchronous on the interactive context;
// listeners must not block.
func (s *Source) OnChanged(fn func()) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextChangedID
	s.nextChangedID++
	s.changed[id] = fn

	return &Subscription{id: id, source: s}
}

func (s *Source) unsubscribeChanged(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.changed, id)
}

func (s *Source) onDisableOneTime() {
	s.mu.Lock()
	s.oneTimeDisabled = true
	s.mu.Unlock()

	s.raiseChanged()
}

func (s *Source) onSearchRan() {
	s.mu.Lock()
	current := s.searchState.Current()
	fire := s.oneTimeDisabled || current != s.lastSearchPattern
	s.lastSearchPattern = current
	s.mu.Unlock()

	if fire {
		s.raiseChanged()
	}
}

func (s *Source) onVisibilityChanged(visible bool) {
	s.mu.Lock()
	if s.visible == visible {
		s.mu.Unlock()
		return
	}
	s.visible = visible
	s.mu.Unlock()

	s.raiseChanged()
}

func (s *Source) onHighlightSearchChanged(change config.Change) {
	// The store only notifies on actual value change, so this is already
	// edge-triggered.
	if change.New {
		s.mu.Lock()
		s.oneTimeDisabled = false
		s.mu.Unlock()
	}

	s.raiseChanged()
}

func (s *Source) raiseChanged() {
	s.mu.Lock()
	listeners := make([]func(), 0, len(s.changed))
	for _, fn := range s.changed {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
