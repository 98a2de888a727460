package highlight

import "sync"

// Unsubscriber releases an observer registration on some change source.
// The subscription types of the search and config packages satisfy it.
type Unsubscriber interface {
	Unsubscribe()
}

// Aggregator owns the subscription handles a Source holds on its change
// sources. It has no state beyond the handles; its job is to make teardown
// mechanical so no callback leaks into a host object that outlives the
// tagger.
type Aggregator struct {
	mu     sync.Mutex
	subs   []Unsubscriber
	closed bool
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add takes ownership of a subscription handle. If the aggregator is
// already closed the subscription is released immediately.
func (a *Aggregator) Add(sub Unsubscriber) {
	if sub == nil {
		return
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	a.subs = append(a.subs, sub)
	a.mu.Unlock()
}

// Close releases every owned subscription. Safe to call more than once.
func (a *Aggregator) Close() {
	a.mu.Lock()
	subs := a.subs
	a.subs = nil
	a.closed = true
	a.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
