package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

// MatchInfoRequest carries the score-sheet header fields. Absent fields keep
// their current values, so a client can update one field at a time.
type MatchInfoRequest struct {
	HomeTeam    *string `json:"homeTeamName"`
	AwayTeam    *string `json:"awayTeamName"`
	Competition *string `json:"competitionName"`
	Date        *string `json:"date"`
}

func handleMatchInfo(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MatchInfoRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		info := tracker.Snapshot().MatchInfo
		if req.HomeTeam != nil {
			info.HomeTeam = *req.HomeTeam
		}
		if req.AwayTeam != nil {
			info.AwayTeam = *req.AwayTeam
		}
		if req.Competition != nil {
			info.Competition = *req.Competition
		}
		if req.Date != nil {
			info.Date = *req.Date
		}
		tracker.SetMatchInfo(info)

		writeJSON(w, http.StatusOK, info)
	}
}
