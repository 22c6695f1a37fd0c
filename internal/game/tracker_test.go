package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	blob    []byte
	cleared bool
	loadErr error
}

func (m *memStore) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.blob, nil
}

func (m *memStore) Save(_ context.Context, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = nil
	m.cleared = true
	return nil
}

func (m *memStore) snapshot() ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.blob...), m.cleared
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrackerReadyAfterLoad(t *testing.T) {
	tr := NewTracker(&memStore{}, discardLogger())
	assert.False(t, tr.Ready())

	tr.Load(context.Background())
	assert.True(t, tr.Ready())
	assert.Equal(t, DefaultState(), tr.Snapshot())
}

func TestTrackerReadyEvenWhenLoadFails(t *testing.T) {
	tr := NewTracker(&memStore{loadErr: errors.New("disk gone")}, discardLogger())

	tr.Load(context.Background())

	assert.True(t, tr.Ready(), "a failed load still completes the load attempt")
	assert.Equal(t, DefaultState(), tr.Snapshot())
}

func TestTrackerLoadRestoresPersistedState(t *testing.T) {
	seed := DefaultState()
	ana := seed.AddPlayer("Ana", 7)
	seed.RecordAction(ana.ID, TwoPoint, Hit)
	blob, err := Encode(seed)
	require.NoError(t, err)

	tr := NewTracker(&memStore{blob: blob}, discardLogger())
	tr.Load(context.Background())

	got := tr.Snapshot()
	assert.Equal(t, seed.Players, got.Players)
	assert.Equal(t, 2, TeamScore(got.ActionLog))
}

func TestTrackerSavesAfterMutation(t *testing.T) {
	store := &memStore{}
	tr := NewTracker(store, discardLogger())
	tr.Load(context.Background())

	p := tr.AddPlayer("Ana", 7)
	tr.RecordAction(p.ID, ThreePoint, Hit)

	assert.Eventually(t, func() bool {
		blob, _ := store.snapshot()
		s := Decode(blob)
		return len(s.ActionLog) == 1 && TeamScore(s.ActionLog) == 3
	}, time.Second, 10*time.Millisecond, "mutations must reach the store")
}

func TestTrackerResetClearsStore(t *testing.T) {
	store := &memStore{}
	tr := NewTracker(store, discardLogger())
	tr.Load(context.Background())

	tr.AddOpponentPoints(3)
	tr.Reset()

	assert.Equal(t, DefaultState(), tr.Snapshot())
	assert.Eventually(t, func() bool {
		_, cleared := store.snapshot()
		return cleared
	}, time.Second, 10*time.Millisecond)
}

func TestTrackerUndoReturnsSnapshot(t *testing.T) {
	tr := NewTracker(&memStore{}, discardLogger())
	tr.Load(context.Background())

	tr.AddOpponentPoints(2)
	got := tr.Undo()
	assert.Equal(t, 0, got.OpponentScore)
	assert.Empty(t, got.History)

	// Nothing left: undo is a no-op.
	again := tr.Undo()
	assert.Equal(t, got, again)
}

func TestTrackerSnapshotIsACopy(t *testing.T) {
	tr := NewTracker(&memStore{}, discardLogger())
	tr.Load(context.Background())
	tr.AddPlayer("Ana", 7)

	snap := tr.Snapshot()
	snap.Players[0].Name = "changed"

	assert.Equal(t, "Ana", tr.Snapshot().Players[0].Name)
}
