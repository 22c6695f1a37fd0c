// Package game holds the scorebook core: the append-only action log, the
// history stack that drives undo, and the pure aggregation functions that
// turn the log into box-score statistics.
package game

// ActionType identifies what a player did on the floor.
type ActionType string

const (
	ThreePoint ActionType = "THREE_POINT"
	TwoPoint   ActionType = "TWO_POINT"
	FreeThrow  ActionType = "FREE_THROW"
	DefRebound ActionType = "DEF_REBOUND"
	OffRebound ActionType = "OFF_REBOUND"
	Assist     ActionType = "ASSIST"
	Steal      ActionType = "STEAL"
	Block      ActionType = "BLOCK"
	Turnover   ActionType = "TURNOVER"
	Foul       ActionType = "FOUL"
)

// Outcome is the success dimension of an action. Only shot types carry a
// meaningful HIT/MISS; everything else is NEUTRAL.
type Outcome string

const (
	Hit     Outcome = "HIT"
	Miss    Outcome = "MISS"
	Neutral Outcome = "NEUTRAL"
)

// ValidActionType reports whether t is one of the known action types.
func ValidActionType(t ActionType) bool {
	switch t {
	case ThreePoint, TwoPoint, FreeThrow, DefRebound, OffRebound,
		Assist, Steal, Block, Turnover, Foul:
		return true
	}
	return false
}

// ValidOutcome reports whether o is one of the known outcomes.
func ValidOutcome(o Outcome) bool {
	switch o {
	case Hit, Miss, Neutral:
		return true
	}
	return false
}

// Period is the current quarter, 1 through 4, cycling back to 1.
type Period int

const (
	FirstPeriod Period = 1
	LastPeriod  Period = 4
)

// Next returns the period that follows p. After the fourth quarter it wraps
// back to the first.
func (p Period) Next() Period {
	if p >= LastPeriod || p < FirstPeriod {
		return FirstPeriod
	}
	return p + 1
}

// Player is one roster entry for the tracked team.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Number  int    `json:"number"`
	Starter bool   `json:"isStarter"`
}

// ActionLogEntry is one recorded fact. Entries are immutable once appended;
// the only way one leaves the log is through UndoLast.
type ActionLogEntry struct {
	ID        string     `json:"id"`
	PlayerID  string     `json:"playerId"`
	Type      ActionType `json:"actionType"`
	Outcome   Outcome    `json:"outcome"`
	Period    Period     `json:"period"`
	Timestamp int64      `json:"timestamp"`
}

// Points returns the score value of the entry: 3/2/1 for made shots,
// 0 for misses and everything else.
func (e ActionLogEntry) Points() int {
	if e.Outcome != Hit {
		return 0
	}
	switch e.Type {
	case ThreePoint:
		return 3
	case TwoPoint:
		return 2
	case FreeThrow:
		return 1
	}
	return 0
}

// HistoryKind tags the variant of a HistoryEvent.
type HistoryKind string

const (
	// PlayerEvent marks an appended action-log entry.
	PlayerEvent HistoryKind = "player"
	// OpponentEvent marks an opponent score increment.
	OpponentEvent HistoryKind = "opponent"
)

// HistoryEvent records one scoring-relevant mutation so undo has a single,
// order-correct place to look. Exactly one of the payload fields is set,
// depending on Kind.
type HistoryEvent struct {
	Kind       HistoryKind `json:"kind"`
	LogEntryID string      `json:"logEntryId,omitempty"`
	Points     int         `json:"points,omitempty"`
}

// MatchInfo is the free-text header data printed on the box score.
type MatchInfo struct {
	HomeTeam    string `json:"homeTeamName"`
	AwayTeam    string `json:"awayTeamName"`
	Competition string `json:"competitionName"`
	Date        string `json:"date"`
}

// State is the aggregate root for one in-progress game. The tracked team's
// score is never stored: it is always derived from the action log.
type State struct {
	Players       []Player         `json:"players"`
	ActionLog     []ActionLogEntry `json:"actionLog"`
	History       []HistoryEvent   `json:"history"`
	OpponentScore int              `json:"opponentScore"`
	Period        Period           `json:"period"`
	MatchInfo     MatchInfo        `json:"matchInfo"`
}

// DefaultState returns a fresh game: empty roster and log, first period,
// zeroed opponent score.
func DefaultState() State {
	return State{
		Players:   []Player{},
		ActionLog: []ActionLogEntry{},
		History:   []HistoryEvent{},
		Period:    FirstPeriod,
		MatchInfo: DefaultMatchInfo(),
	}
}

// DefaultMatchInfo mirrors the placeholders the score sheet falls back to
// when nothing was entered.
func DefaultMatchInfo() MatchInfo {
	return MatchInfo{
		HomeTeam:    "Home",
		AwayTeam:    "Opponent",
		Competition: "Friendly",
	}
}
