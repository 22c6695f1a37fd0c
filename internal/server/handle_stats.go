package server

import (
	"net/http"

	"github.com/hooptrack/scorebook/internal/game"
)

// PlayerLine is one player's box-score line with presentation-level
// percentages and per-period points alongside the raw counts.
type PlayerLine struct {
	game.StatRecord
	FGPercent      int                 `json:"fgPct"`
	ThreePercent   int                 `json:"threePct"`
	FTPercent      int                 `json:"ftPct"`
	PointsByPeriod map[game.Period]int `json:"pointsByPeriod"`
}

type StatsResponse struct {
	TeamScore     int          `json:"teamScore"`
	OpponentScore int          `json:"opponentScore"`
	Players       []PlayerLine `json:"players"`
}

func handleStats(tracker *game.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := tracker.Snapshot()

		lines := make([]PlayerLine, 0, len(s.Players))
		for _, p := range s.Players {
			rec := game.PlayerStats(p, s.ActionLog)
			lines = append(lines, PlayerLine{
				StatRecord:     rec,
				FGPercent:      game.Percent(rec.FGMade, rec.FGAttempted),
				ThreePercent:   game.Percent(rec.ThreeMade, rec.ThreeAttempt),
				FTPercent:      game.Percent(rec.FTMade, rec.FTAttempted),
				PointsByPeriod: game.PointsByPeriod(p, s.ActionLog),
			})
		}

		writeJSON(w, http.StatusOK, StatsResponse{
			TeamScore:     game.TeamScore(s.ActionLog),
			OpponentScore: s.OpponentScore,
			Players:       lines,
		})
	}
}
