package game

import (
	"time"

	"github.com/google/uuid"
)

// AddPlayer appends a new roster entry and returns it. Roster changes are not
// pushed to the history stack, so they cannot be undone. Input validation
// (non-empty name, numeric jersey number) belongs to the caller.
func (s *State) AddPlayer(name string, number int) Player {
	p := Player{
		ID:     uuid.NewString(),
		Name:   name,
		Number: number,
	}
	s.Players = append(s.Players, p)
	return p
}

// RemovePlayer drops the roster entry with the given id, if present. The
// player's action-log entries stay: history is immutable, and a removed
// player's stats remain queryable by id.
func (s *State) RemovePlayer(id string) bool {
	for i, p := range s.Players {
		if p.ID == id {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			return true
		}
	}
	return false
}

// PlayerByID returns the roster entry with the given id.
func (s *State) PlayerByID(id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// RecordAction appends a log entry for the current period and pushes the
// matching history event. The entry id, not log position, is what undo will
// use to find it again.
func (s *State) RecordAction(playerID string, t ActionType, outcome Outcome) ActionLogEntry {
	entry := ActionLogEntry{
		ID:        uuid.NewString(),
		PlayerID:  playerID,
		Type:      t,
		Outcome:   outcome,
		Period:    s.Period,
		Timestamp: time.Now().UnixMilli(),
	}
	s.ActionLog = append(s.ActionLog, entry)
	s.History = append(s.History, HistoryEvent{Kind: PlayerEvent, LogEntryID: entry.ID})
	return entry
}

// AddOpponentPoints adds points to the opponent score and pushes the matching
// history event.
func (s *State) AddOpponentPoints(points int) int {
	s.OpponentScore += points
	s.History = append(s.History, HistoryEvent{Kind: OpponentEvent, Points: points})
	return s.OpponentScore
}

// UndoLast pops the most recent history event and reverses it. With an empty
// history it is a no-op, never an error. Opponent subtractions are clamped at
// zero, which makes undo a non-exact inverse in the already-clamped case; the
// clamp is kept anyway so the score can never go negative.
func (s *State) UndoLast() bool {
	if len(s.History) == 0 {
		return false
	}
	ev := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]

	switch ev.Kind {
	case PlayerEvent:
		for i, e := range s.ActionLog {
			if e.ID == ev.LogEntryID {
				s.ActionLog = append(s.ActionLog[:i], s.ActionLog[i+1:]...)
				break
			}
		}
	case OpponentEvent:
		s.OpponentScore -= ev.Points
		if s.OpponentScore < 0 {
			s.OpponentScore = 0
		}
	}
	return true
}

// AdvancePeriod cycles 1→2→3→4→1. Period changes are not undoable.
func (s *State) AdvancePeriod() Period {
	s.Period = s.Period.Next()
	return s.Period
}

// Reset replaces the whole state with fresh defaults.
func (s *State) Reset() {
	*s = DefaultState()
}

// SetMatchInfo overwrites the score-sheet header fields. Empty fields keep
// their defaults at render time; no validation, no history tracking.
func (s *State) SetMatchInfo(info MatchInfo) {
	s.MatchInfo = info
}
