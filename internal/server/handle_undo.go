package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

// handleUndo reverses the last scoring event. With an empty history it is a
// no-op and still answers 200 with the unchanged snapshot.
func handleUndo(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracker.Undo()
		writeJSON(w, http.StatusOK, gameResponse(tracker))
	}
}
