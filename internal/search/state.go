package search

import "sync"

// Listener is called when a search notification fires. Notifications carry
// no payload; listeners read whatever current state they need.
type Listener func()

// Subscription represents an active listener registration on State.
type Subscription struct {
	id    uint64
	state *State
}

// Unsubscribe removes this listener. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.state != nil {
		s.state.unsubscribe(s.id)
	}
}

// State is the process-wide search state: the last-used pattern plus the
// notifications the highlight engine consumes. There is exactly one
// current PatternData at any time; SetCurrent replaces it wholesale, so an
// observer can never read a half-updated pattern.
type State struct {
	mu sync.RWMutex

	// current is the last-used search pattern.
	current PatternData

	// Listener registrations, keyed by subscription ID.
	searchRan      map[uint64]Listener
	disableOneTime map[uint64]Listener

	nextID uint64
}

// NewState creates an empty search state.
func NewState() *State {
	return &State{
		searchRan:      make(map[uint64]Listener),
		disableOneTime: make(map[uint64]Listener),
	}
}

// Current returns the last-used pattern data.
func (s *State) Current() PatternData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrent replaces the last-used pattern data.
func (s *State) SetCurrent(data PatternData) {
	s.mu.Lock()
	s.current = data
	s.mu.Unlock()
}

// NotifySearchRan signals that a search executed with the current pattern.
// Listeners run synchronously on the calling goroutine.
func (s *State) NotifySearchRan() {
	s.notify(s.collect(&s.searchRan))
}

// NotifyDisableOneTime signals that highlighting should be suppressed until
// the highlight setting is toggled back on.
func (s *State) NotifyDisableOneTime() {
	s.notify(s.collect(&s.disableOneTime))
}

// OnSearchRan registers a listener for search-ran notifications.
func (s *State) OnSearchRan(fn Listener) *Subscription {
	return s.subscribe(&s.searchRan, fn)
}

// OnDisableOneTime registers a listener for disable-one-time notifications.
func (s *State) OnDisableOneTime(fn Listener) *Subscription {
	return s.subscribe(&s.disableOneTime, fn)
}

func (s *State) subscribe(listeners *map[uint64]Listener, fn Listener) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	(*listeners)[id] = fn

	return &Subscription{id: id, state: s}
}

func (s *State) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.searchRan, id)
	delete(s.disableOneTime, id)
}

// collect snapshots a listener set so delivery happens outside the lock.
func (s *State) collect(listeners *map[uint64]Listener) []Listener {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Listener, 0, len(*listeners))
	for _, fn := range *listeners {
		out = append(out, fn)
	}
	return out
}

func (s *State) notify(listeners []Listener) {
	for _, fn := range listeners {
		fn()
	}
}
