package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hooptrack/scorebook/internal/boxscore"
	"github.com/hooptrack/scorebook/internal/game"
)

// handleBoxScore streams the PDF box score. An empty action log is a 409
// with a user-visible notice and no file.
func handleBoxScore(logger *slog.Logger, tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := tracker.Snapshot()

		var buf bytes.Buffer
		err := boxscore.Generate(&buf, s)
		if errors.Is(err, boxscore.ErrNoActions) {
			writeError(w, http.StatusConflict, "record at least one action before exporting")
			return
		}
		if err != nil {
			logger.Error("generating box score", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		filename := fmt.Sprintf("boxscore_%d.pdf", time.Now().UnixMilli())
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
