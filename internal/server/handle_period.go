package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

type PeriodResponse struct {
	Period game.Period `json:"period"`
}

func handleAdvancePeriod(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, PeriodResponse{Period: tracker.AdvancePeriod()})
	}
}
