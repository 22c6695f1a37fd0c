package game

import "encoding/json"

// Encode serializes the state to the persisted blob format.
func Encode(s State) ([]byte, error) {
	return json.Marshal(s)
}

// Decode turns a persisted blob back into a State. It never fails: malformed
// input, absent fields, and mistyped fields each fall back to their default
// independently, so a legacy blob that predates the history stack still loads
// with everything else intact.
func Decode(raw []byte) State {
	s := DefaultState()
	if len(raw) == 0 {
		return s
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return s
	}

	if v, ok := fields["players"]; ok {
		var players []Player
		if err := json.Unmarshal(v, &players); err == nil && players != nil {
			s.Players = players
		}
	}
	if v, ok := fields["actionLog"]; ok {
		var log []ActionLogEntry
		if err := json.Unmarshal(v, &log); err == nil && log != nil {
			s.ActionLog = log
		}
	}
	if v, ok := fields["history"]; ok {
		var history []HistoryEvent
		if err := json.Unmarshal(v, &history); err == nil && history != nil {
			s.History = history
		}
	}
	if v, ok := fields["opponentScore"]; ok {
		var score int
		if err := json.Unmarshal(v, &score); err == nil && score >= 0 {
			s.OpponentScore = score
		}
	}
	if v, ok := fields["period"]; ok {
		var period Period
		if err := json.Unmarshal(v, &period); err == nil &&
			period >= FirstPeriod && period <= LastPeriod {
			s.Period = period
		}
	}
	if v, ok := fields["matchInfo"]; ok {
		var info MatchInfo
		if err := json.Unmarshal(v, &info); err == nil {
			s.MatchInfo = info
		}
	}
	return s
}
