package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

type RecordActionRequest struct {
	PlayerID string          `json:"playerId"`
	Type     game.ActionType `json:"actionType"`
	Outcome  game.Outcome    `json:"outcome"`
}

// handleRecordAction enforces the core's preconditions — a targeted roster
// player and known enum values — then appends the entry.
func handleRecordAction(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordActionRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if !game.ValidActionType(req.Type) {
			writeError(w, http.StatusBadRequest, "unknown action type")
			return
		}
		if !game.ValidOutcome(req.Outcome) {
			writeError(w, http.StatusBadRequest, "unknown outcome")
			return
		}

		snapshot := tracker.Snapshot()
		if _, ok := snapshot.PlayerByID(req.PlayerID); !ok {
			writeError(w, http.StatusBadRequest, "no such player on the roster")
			return
		}

		entry := tracker.RecordAction(req.PlayerID, req.Type, req.Outcome)
		writeJSON(w, http.StatusCreated, entry)
	}
}
