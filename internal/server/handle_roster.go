package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hooptrack/scorebook/internal/game"
)

type AddPlayerRequest struct {
	Name   string `json:"name"`
	Number *int   `json:"number"`
}

// handleAddPlayer validates roster input before it reaches the core: the
// reducer itself does not re-validate.
func handleAddPlayer(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddPlayerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		if req.Number == nil || *req.Number < 0 {
			writeError(w, http.StatusBadRequest, "number must be a non-negative integer")
			return
		}

		p := tracker.AddPlayer(req.Name, *req.Number)
		writeJSON(w, http.StatusCreated, p)
	}
}

// handleRemovePlayer drops a roster entry. The player's recorded actions
// stay in the log, so removal is a 204 even when the id is unknown.
func handleRemovePlayer(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracker.RemovePlayer(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}
