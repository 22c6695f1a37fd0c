package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/hooptrack/scorebook/internal/game"
)

func addRoutes(r chi.Router, logger *slog.Logger, tracker *game.Tracker, db *sql.DB) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Scorebook API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api/game", func(r chi.Router) {
		r.Get("/", handleGameState(tracker))
		r.Get("/stats", handleStats(tracker))
		r.Get("/boxscore.pdf", handleBoxScore(logger, tracker))

		r.Post("/players", handleAddPlayer(tracker))
		r.Delete("/players/{id}", handleRemovePlayer(tracker))

		r.Post("/actions", handleRecordAction(tracker))
		r.Post("/opponent", handleOpponentScore(tracker))
		r.Post("/undo", handleUndo(tracker))
		r.Post("/period", handleAdvancePeriod(tracker))
		r.Post("/reset", handleReset(tracker))
		r.Put("/info", handleMatchInfo(tracker))
	})
}
