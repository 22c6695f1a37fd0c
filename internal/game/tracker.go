package game

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Store is the persistence gateway: one opaque blob, load-at-start and
// save-on-change. The tracker treats it as a collaborator, not logic it owns.
type Store interface {
	// Load returns the persisted blob, or nil when nothing was ever saved.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
	Clear(ctx context.Context) error
}

// Tracker owns the single game State behind a mutex. Every operation applies
// fully before the next begins, and each mutation triggers a best-effort
// background save; a failed save is logged, never surfaced to the caller.
// Saves run on a single worker goroutine so they reach the store in the
// order the mutations happened.
type Tracker struct {
	store  Store
	logger *slog.Logger
	jobs   chan func()

	mu    sync.Mutex
	state State
	ready bool
}

func NewTracker(store Store, logger *slog.Logger) *Tracker {
	t := &Tracker{
		store:  store,
		logger: logger,
		jobs:   make(chan func(), 64),
		state:  DefaultState(),
	}
	go func() {
		for job := range t.jobs {
			job()
		}
	}()
	return t
}

// Load restores the state from the store. It marks the tracker ready whether
// or not the load succeeded: a missing or malformed blob just means a fresh
// game.
func (t *Tracker) Load(ctx context.Context) {
	blob, err := t.store.Load(ctx)
	if err != nil {
		t.logger.Error("loading game state", "error", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if err == nil && blob != nil {
		t.state = Decode(blob)
	}
	t.ready = true
}

// Ready reports whether the initial load attempt has completed. Callers must
// not render state before this is true.
func (t *Tracker) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ready
}

// Snapshot returns a copy of the current state, safe to read concurrently
// with further mutations.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneState(t.state)
}

func (t *Tracker) AddPlayer(name string, number int) Player {
	t.mu.Lock()
	p := t.state.AddPlayer(name, number)
	t.saveLocked()
	t.mu.Unlock()
	return p
}

func (t *Tracker) RemovePlayer(id string) bool {
	t.mu.Lock()
	removed := t.state.RemovePlayer(id)
	if removed {
		t.saveLocked()
	}
	t.mu.Unlock()
	return removed
}

// RecordAction appends a log entry for the named player. The player must
// already be on the roster; the handler in front of the tracker checks that.
func (t *Tracker) RecordAction(playerID string, typ ActionType, outcome Outcome) ActionLogEntry {
	t.mu.Lock()
	entry := t.state.RecordAction(playerID, typ, outcome)
	t.saveLocked()
	t.mu.Unlock()
	return entry
}

func (t *Tracker) AddOpponentPoints(points int) int {
	t.mu.Lock()
	score := t.state.AddOpponentPoints(points)
	t.saveLocked()
	t.mu.Unlock()
	return score
}

// Undo reverses the most recent scoring event and returns the resulting
// snapshot. With nothing to undo the state comes back unchanged.
func (t *Tracker) Undo() State {
	t.mu.Lock()
	if t.state.UndoLast() {
		t.saveLocked()
	}
	s := cloneState(t.state)
	t.mu.Unlock()
	return s
}

func (t *Tracker) AdvancePeriod() Period {
	t.mu.Lock()
	p := t.state.AdvancePeriod()
	t.saveLocked()
	t.mu.Unlock()
	return p
}

// Reset replaces the state with fresh defaults and clears the persisted blob.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.state.Reset()
	t.mu.Unlock()

	t.jobs <- func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := t.store.Clear(ctx); err != nil {
			t.logger.Error("clearing game state", "error", err)
		}
	}
}

func (t *Tracker) SetMatchInfo(info MatchInfo) {
	t.mu.Lock()
	t.state.SetMatchInfo(info)
	t.saveLocked()
	t.mu.Unlock()
}

const saveTimeout = 5 * time.Second

// saveLocked snapshots the state and queues it for persistence.
// Must be called with t.mu held; the worker never takes the lock, so the
// send cannot deadlock.
func (t *Tracker) saveLocked() {
	blob, err := Encode(t.state)
	if err != nil {
		t.logger.Error("encoding game state", "error", err)
		return
	}
	t.jobs <- func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := t.store.Save(ctx, blob); err != nil {
			t.logger.Error("saving game state", "error", err)
		}
	}
}

func cloneState(s State) State {
	out := s
	out.Players = append(make([]Player, 0, len(s.Players)), s.Players...)
	out.ActionLog = append(make([]ActionLogEntry, 0, len(s.ActionLog)), s.ActionLog...)
	out.History = append(make([]HistoryEvent, 0, len(s.History)), s.History...)
	return out
}
