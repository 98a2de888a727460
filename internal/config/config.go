// Package config holds the editor settings the highlight engine reads:
// whether searches ignore case and whether search highlighting is enabled.
//
// The Store is the single owner of the live values. Readers get current
// values through accessor methods; components that must react to changes
// register an observer per setting key. Observers are invoked synchronously
// and only when a value actually changes.
package config

import "sync"

// Setting keys, dot-separated like the editor's full configuration tree.
const (
	// KeyIgnoreCase controls case sensitivity of searches.
	KeyIgnoreCase = "search.ignorecase"

	// KeyHighlightSearch controls whether search matches are highlighted.
	KeyHighlightSearch = "search.hlsearch"
)

// Change describes a settings change delivered to observers.
type Change struct {
	// Key is the setting that changed.
	Key string

	// Old is the previous value.
	Old bool

	// New is the current value.
	New bool
}

// Observer is called when a setting changes value.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id    uint64
	store *Store
}

// Unsubscribe removes this observer. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.store != nil {
		s.store.unsubscribe(s.id)
	}
}

// Store holds the search-related settings.
type Store struct {
	mu sync.RWMutex

	ignoreCase      bool
	highlightSearch bool

	// Observers per setting key, keyed by subscription ID.
	observers map[string]map[uint64]Observer
	nextID    uint64
}

// NewStore creates a store with default values: case-sensitive search,
// highlighting enabled.
func NewStore() *Store {
	return &Store{
		highlightSearch: true,
		observers:       make(map[string]map[uint64]Observer),
	}
}

// IgnoreCase returns whether searches ignore case.
func (s *Store) IgnoreCase() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ignoreCase
}

// HighlightSearch returns whether search highlighting is enabled.
func (s *Store) HighlightSearch() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlightSearch
}

// SetIgnoreCase updates the ignore-case setting. Observers fire only if
// the value actually changes.
func (s *Store) SetIgnoreCase(v bool) {
	s.set(KeyIgnoreCase, &s.ignoreCase, v)
}

// SetHighlightSearch updates the highlight setting. Observers fire only if
// the value actually changes.
func (s *Store) SetHighlightSearch(v bool) {
	s.set(KeyHighlightSearch, &s.highlightSearch, v)
}

// OnChange registers an observer for the given setting key.
func (s *Store) OnChange(key string, obs Observer) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	if s.observers[key] == nil {
		s.observers[key] = make(map[uint64]Observer)
	}
	s.observers[key][id] = obs

	return &Subscription{id: id, store: s}
}

func (s *Store) set(key string, field *bool, v bool) {
	s.mu.Lock()
	old := *field
	if old == v {
		s.mu.Unlock()
		return
	}
	*field = v

	// Snapshot observers so delivery happens outside the lock.
	obs := make([]Observer, 0, len(s.observers[key]))
	for _, o := range s.observers[key] {
		obs = append(obs, o)
	}
	s.mu.Unlock()

	change := Change{Key: key, Old: old, New: v}
	for _, o := range obs {
		o(change)
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, obs := range s.observers {
		delete(obs, id)
		if len(obs) == 0 {
			delete(s.observers, key)
		}
	}
}
