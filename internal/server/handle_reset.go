package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

// handleReset starts a new game and clears the persisted blob. Irreversible;
// the client is expected to confirm with the user before calling.
func handleReset(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracker.Reset()
		w.WriteHeader(http.StatusNoContent)
	}
}
