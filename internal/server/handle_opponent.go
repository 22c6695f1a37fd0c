package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

type OpponentScoreRequest struct {
	Points int `json:"points"`
}

type OpponentScoreResponse struct {
	OpponentScore int `json:"opponentScore"`
}

func handleOpponentScore(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpponentScoreRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Points < 1 {
			writeError(w, http.StatusBadRequest, "points must be a positive integer")
			return
		}

		score := tracker.AddOpponentPoints(req.Points)
		writeJSON(w, http.StatusOK, OpponentScoreResponse{OpponentScore: score})
	}
}
