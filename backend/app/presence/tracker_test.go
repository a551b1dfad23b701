package presence

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeout = 8 * time.Second

func TestTouchThenSweep_ExpiresAfterTimeout(t *testing.T) {
	tr := NewTracker()
	t0 := time.Now()

	tr.Touch(Main, "agent-1", t0)

	// Just inside the window the agent is still active.
	tr.Sweep(Main, t0.Add(timeout-time.Second), timeout)
	assert.True(t, tr.IsActive(Main, "agent-1"))

	// Beyond the window it is evicted, not flagged.
	tr.Sweep(Main, t0.Add(timeout+time.Second), timeout)
	assert.False(t, tr.IsActive(Main, "agent-1"))
	assert.Empty(t, tr.Snapshot(Main))
}

func TestTouch_RefreshesLastSeen(t *testing.T) {
	tr := NewTracker()
	t0 := time.Now()

	tr.Touch(Main, "agent-1", t0)
	tr.Touch(Main, "agent-1", t0.Add(5*time.Second))

	// The second touch moved the window forward.
	tr.Sweep(Main, t0.Add(timeout+time.Second), timeout)
	assert.True(t, tr.IsActive(Main, "agent-1"))
}

func TestChannels_AreIndependent(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	tr.Touch(Main, "agent-1", now)
	tr.Touch(Dom, "agent-2", now)

	assert.True(t, tr.IsActive(Main, "agent-1"))
	assert.False(t, tr.IsActive(Dom, "agent-1"))
	assert.True(t, tr.IsActive(Dom, "agent-2"))
	assert.False(t, tr.IsActive(Main, "agent-2"))

	// Sweeping one channel leaves the other untouched.
	tr.Sweep(Main, now.Add(timeout+time.Second), timeout)
	assert.False(t, tr.IsActive(Main, "agent-1"))
	assert.True(t, tr.IsActive(Dom, "agent-2"))
}

func TestSnapshot_IsACopy(t *testing.T) {
	tr := NewTracker()
	now := time.Now()
	tr.Touch(Main, "agent-1", now)

	snap := tr.Snapshot(Main)
	delete(snap, "agent-1")
	assert.True(t, tr.IsActive(Main, "agent-1"))
}

func TestEntry_MarshalsLastSeenAsUnixSeconds(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	out, err := json.Marshal(Entry{LastSeen: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_seen":1700000000}`, string(out))
}

func TestTracker_ConcurrentTouchAndSweep(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Touch(Main, "agent-1", now)
				tr.Touch(Dom, "agent-1", now)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Sweep(Main, now, timeout)
				_ = tr.Snapshot(Dom)
			}
		}()
	}
	wg.Wait()

	assert.True(t, tr.IsActive(Main, "agent-1"))
}
