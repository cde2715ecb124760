// ABOUTME: Session-scoped contact history container
// ABOUTME: Bounded most-recent-first list with FIFO eviction and dedup
package models

// SessionHistoryCap bounds the per-session panel to the most recent entries.
const SessionHistoryCap = 90

// Session holds per-user-session state. It is owned by the caller and has
// no cross-session visibility; the durable log is the only shared view.
type Session struct {
	entries []HistoryEntry
}

func NewSession() *Session {
	return &Session{}
}

// Append inserts an entry at the front. If the most recent entry already has
// the same client and detail it is replaced rather than duplicated. The list
// is trimmed to SessionHistoryCap, evicting the oldest.
func (s *Session) Append(e HistoryEntry) {
	if len(s.entries) > 0 &&
		s.entries[0].Cliente == e.Cliente &&
		s.entries[0].Detalle == e.Detalle {
		s.entries = s.entries[1:]
	}

	s.entries = append([]HistoryEntry{e}, s.entries...)
	if len(s.entries) > SessionHistoryCap {
		s.entries = s.entries[:SessionHistoryCap]
	}
}

// Entries returns the history most-recent-first.
func (s *Session) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Session) Len() int { return len(s.entries) }
