package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemovePlayer(t *testing.T) {
	s := DefaultState()

	ana := s.AddPlayer("Ana", 7)
	bea := s.AddPlayer("Bea", 12)

	require.Len(t, s.Players, 2)
	assert.NotEqual(t, ana.ID, bea.ID)
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, 7, ana.Number)
	assert.False(t, ana.Starter)
	assert.Empty(t, s.History, "roster changes must not be undoable")

	assert.True(t, s.RemovePlayer(ana.ID))
	require.Len(t, s.Players, 1)
	assert.Equal(t, bea.ID, s.Players[0].ID)

	assert.False(t, s.RemovePlayer("no-such-id"))
	assert.Len(t, s.Players, 1)
}

func TestRecordActionPushesHistory(t *testing.T) {
	s := DefaultState()
	ana := s.AddPlayer("Ana", 7)
	s.Period = 3

	entry := s.RecordAction(ana.ID, TwoPoint, Hit)

	require.Len(t, s.ActionLog, 1)
	require.Len(t, s.History, 1)
	assert.Equal(t, Period(3), entry.Period)
	assert.Equal(t, PlayerEvent, s.History[0].Kind)
	assert.Equal(t, entry.ID, s.History[0].LogEntryID)
}

func TestTimestampsNonDecreasing(t *testing.T) {
	s := DefaultState()
	p := s.AddPlayer("Ana", 7)

	for i := 0; i < 10; i++ {
		s.RecordAction(p.ID, Assist, Neutral)
	}
	for i := 1; i < len(s.ActionLog); i++ {
		assert.GreaterOrEqual(t, s.ActionLog[i].Timestamp, s.ActionLog[i-1].Timestamp)
	}
}

func TestUndoScenarioTwoPointer(t *testing.T) {
	s := DefaultState()
	ana := s.AddPlayer("Ana", 7)

	s.RecordAction(ana.ID, TwoPoint, Hit)
	assert.Equal(t, 2, TeamScore(s.ActionLog))

	require.True(t, s.UndoLast())
	assert.Equal(t, 0, TeamScore(s.ActionLog))
	assert.Empty(t, s.ActionLog)
	assert.Empty(t, s.History)
}

func TestUndoOpponentScenario(t *testing.T) {
	s := DefaultState()

	s.AddOpponentPoints(3)
	assert.Equal(t, 3, s.OpponentScore)
	s.AddOpponentPoints(2)
	assert.Equal(t, 5, s.OpponentScore)

	require.True(t, s.UndoLast())
	assert.Equal(t, 3, s.OpponentScore)
	require.True(t, s.UndoLast())
	assert.Equal(t, 0, s.OpponentScore)
}

func TestUndoEmptyHistoryIsNoOp(t *testing.T) {
	s := DefaultState()
	s.AddPlayer("Ana", 7)
	before := cloneState(s)

	assert.False(t, s.UndoLast())
	assert.Equal(t, before, cloneState(s))
}

func TestUndoInterleavedRestoresEverything(t *testing.T) {
	s := DefaultState()
	ana := s.AddPlayer("Ana", 7)
	bea := s.AddPlayer("Bea", 12)

	before := cloneState(s)

	s.RecordAction(ana.ID, ThreePoint, Hit)
	s.AddOpponentPoints(2)
	s.RecordAction(bea.ID, FreeThrow, Miss)
	s.AddOpponentPoints(3)
	s.RecordAction(ana.ID, Steal, Neutral)

	for i := 0; i < 5; i++ {
		require.True(t, s.UndoLast())
	}

	assert.Equal(t, before.ActionLog, s.ActionLog)
	assert.Equal(t, before.History, s.History)
	assert.Equal(t, before.OpponentScore, s.OpponentScore)
}

func TestUndoRemovesByIdentityNotPosition(t *testing.T) {
	s := DefaultState()
	ana := s.AddPlayer("Ana", 7)

	first := s.RecordAction(ana.ID, TwoPoint, Hit)
	second := s.RecordAction(ana.ID, ThreePoint, Hit)

	// Undo must remove the entry named by the history stack, not whatever
	// happens to sit last in the log.
	require.True(t, s.UndoLast())
	require.Len(t, s.ActionLog, 1)
	assert.Equal(t, first.ID, s.ActionLog[0].ID)
	assert.NotEqual(t, second.ID, s.ActionLog[0].ID)
}

func TestUndoOpponentClampsAtZero(t *testing.T) {
	s := DefaultState()
	s.AddOpponentPoints(2)
	s.OpponentScore = 1 // externally clamped already

	require.True(t, s.UndoLast())
	assert.Equal(t, 0, s.OpponentScore, "subtraction is floored at zero")
}

func TestAdvancePeriodCycles(t *testing.T) {
	s := DefaultState()

	want := []Period{2, 3, 4, 1, 2}
	for _, w := range want {
		assert.Equal(t, w, s.AdvancePeriod())
	}
	assert.Empty(t, s.History, "period changes must not be undoable")
}

func TestResetRestoresDefaults(t *testing.T) {
	s := DefaultState()
	ana := s.AddPlayer("Ana", 7)
	s.RecordAction(ana.ID, TwoPoint, Hit)
	s.AddOpponentPoints(3)
	s.AdvancePeriod()
	s.SetMatchInfo(MatchInfo{HomeTeam: "Lobas", AwayTeam: "Gaviões"})

	s.Reset()

	assert.Equal(t, DefaultState(), s)
}

func TestRemovedPlayerKeepsStats(t *testing.T) {
	s := DefaultState()
	ana := s.AddPlayer("Ana", 7)
	s.RecordAction(ana.ID, ThreePoint, Hit)
	s.RecordAction(ana.ID, DefRebound, Neutral)

	require.True(t, s.RemovePlayer(ana.ID))
	require.Len(t, s.ActionLog, 2, "removal must not touch the log")

	rec := PlayerStats(ana, s.ActionLog)
	assert.Equal(t, 3, rec.Points)
	assert.Equal(t, 1, rec.DefRebounds)
}
