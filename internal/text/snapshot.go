package text

// Snapshot is a read-only view of the host buffer at a specific point in
// time. Implementations must be safe for concurrent access and must not
// change after creation, even if the live buffer is edited; the engine
// relies on that stability while a background scan is in flight.
type Snapshot interface {
	// Len returns the total byte length of the snapshot.
	Len() int

	// TextRange returns the text in the byte range [start, end).
	// Offsets outside the snapshot are clamped.
	TextRange(start, end int) string

	// Revision identifies the buffer version this snapshot was taken from.
	Revision() uint64
}

// StringSnapshot implements Snapshot over a plain string. It is used by
// tests and by hosts that keep whole-buffer strings.
type StringSnapshot struct {
	text     string
	revision uint64
}

// NewStringSnapshot creates a snapshot over the given text with revision 0.
func NewStringSnapshot(text string) *StringSnapshot {
	return &StringSnapshot{text: text}
}

// NewStringSnapshotRev creates a snapshot over the given text tagged with a
// buffer revision.
func NewStringSnapshotRev(text string, revision uint64) *StringSnapshot {
	return &StringSnapshot{text: text, revision: revision}
}

// Len returns the byte length of the snapshot.
func (s *StringSnapshot) Len() int {
	return len(s.text)
}

// TextRange returns the text in [start, end), clamped to the snapshot.
func (s *StringSnapshot) TextRange(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.text) {
		end = len(s.text)
	}
	if start >= end {
		return ""
	}
	return s.text[start:end]
}

// Revision returns the buffer revision this snapshot was taken from.
func (s *StringSnapshot) Revision() uint64 {
	return s.revision
}

// Text returns the full snapshot content.
func (s *StringSnapshot) Text() string {
	return s.text
}
