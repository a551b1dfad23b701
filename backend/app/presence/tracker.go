package presence

import (
	"strconv"
	"sync"
	"time"
)

// Channel selects which connection map an operation targets. An agent can
// be connected on the main poll channel and not on the DOM channel, or the
// other way around, so the two maps are kept disjoint.
type Channel int

const (
	Main Channel = iota
	Dom
)

// Entry records the last poll-in on a channel.
type Entry struct {
	LastSeen time.Time `json:"-"`
}

// MarshalJSON serializes the entry the way the agents list expects it.
func (e Entry) MarshalJSON() ([]byte, error) {
	return []byte(`{"last_seen":` + strconv.FormatInt(e.LastSeen.Unix(), 10) + `}`), nil
}

// Tracker holds the volatile liveness state for both channels. There is no
// background reaper: callers sweep before reading, so staleness is bounded
// by the time since the last read. State resets on restart by design.
type Tracker struct {
	mu       sync.Mutex
	channels [2]map[string]Entry
}

func NewTracker() *Tracker {
	return &Tracker{channels: [2]map[string]Entry{
		make(map[string]Entry),
		make(map[string]Entry),
	}}
}

// Touch upserts the last-seen timestamp for an agent on one channel.
func (t *Tracker) Touch(ch Channel, agentID string, now time.Time) {
	t.mu.Lock()
	t.channels[ch][agentID] = Entry{LastSeen: now}
	t.mu.Unlock()
}

// Sweep evicts every entry older than timeout. Entries are removed, not
// flagged: after a sweep the map is exactly the active set.
func (t *Tracker) Sweep(ch Channel, now time.Time, timeout time.Duration) {
	t.mu.Lock()
	for id, e := range t.channels[ch] {
		if now.Sub(e.LastSeen) > timeout {
			delete(t.channels[ch], id)
		}
	}
	t.mu.Unlock()
}

// IsActive reports membership on an already-swept channel map.
func (t *Tracker) IsActive(ch Channel, agentID string) bool {
	t.mu.Lock()
	_, ok := t.channels[ch][agentID]
	t.mu.Unlock()
	return ok
}

// Snapshot returns a copy of a channel map for enumeration. The copy stays
// consistent while concurrent touches and sweeps continue.
func (t *Tracker) Snapshot(ch Channel) map[string]Entry {
	t.mu.Lock()
	out := make(map[string]Entry, len(t.channels[ch]))
	for id, e := range t.channels[ch] {
		out[id] = e
	}
	t.mu.Unlock()
	return out
}
