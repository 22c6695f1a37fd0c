package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

// GameResponse is the full scoreboard snapshot. MyScore is always derived
// from the action log, never stored.
type GameResponse struct {
	Ready         bool                  `json:"ready"`
	MyScore       int                   `json:"myScore"`
	OpponentScore int                   `json:"opponentScore"`
	Period        game.Period           `json:"period"`
	Players       []game.Player         `json:"players"`
	ActionLog     []game.ActionLogEntry `json:"actionLog"`
	MatchInfo     game.MatchInfo        `json:"matchInfo"`
}

func gameResponse(tracker *game.Tracker) GameResponse {
	s := tracker.Snapshot()
	return GameResponse{
		Ready:         tracker.Ready(),
		MyScore:       game.TeamScore(s.ActionLog),
		OpponentScore: s.OpponentScore,
		Period:        s.Period,
		Players:       s.Players,
		ActionLog:     s.ActionLog,
		MatchInfo:     s.MatchInfo,
	}
}

func handleGameState(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gameResponse(tracker))
	}
}
