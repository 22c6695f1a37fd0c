package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Scorebook API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the single-team basketball scorebook.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/game
	getGame, _ := r.NewOperationContext(http.MethodGet, "/api/game")
	getGame.SetSummary("Get game state")
	getGame.SetDescription("Full scoreboard snapshot: roster, action log, scores, period, match info. Check ready before rendering.")
	getGame.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getGame)

	// GET /api/game/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/game/stats")
	getStats.SetSummary("Box-score statistics")
	getStats.SetDescription("Per-player statistics with shooting percentages and points per period.")
	getStats.AddRespStructure(StatsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStats)

	// GET /api/game/boxscore.pdf
	getPDF, _ := r.NewOperationContext(http.MethodGet, "/api/game/boxscore.pdf")
	getPDF.SetSummary("Export box score")
	getPDF.SetDescription("Generates the tabular PDF box score. Rejected while the action log is empty.")
	getPDF.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("application/pdf"))
	getPDF.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getPDF)

	// POST /api/game/players
	postPlayer, _ := r.NewOperationContext(http.MethodPost, "/api/game/players")
	postPlayer.SetSummary("Add player")
	postPlayer.SetDescription("Adds a roster entry. Name must be non-empty and number a non-negative integer.")
	postPlayer.AddReqStructure(AddPlayerRequest{})
	postPlayer.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusCreated))
	postPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postPlayer)

	// DELETE /api/game/players/{id}
	delPlayer, _ := r.NewOperationContext(http.MethodDelete, "/api/game/players/{id}")
	delPlayer.SetSummary("Remove player")
	delPlayer.SetDescription("Removes a roster entry. The player's recorded actions stay in the log.")
	delPlayer.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(delPlayer)

	// POST /api/game/actions
	postAction, _ := r.NewOperationContext(http.MethodPost, "/api/game/actions")
	postAction.SetSummary("Record action")
	postAction.SetDescription("Appends an action-log entry for a roster player in the current period.")
	postAction.AddReqStructure(RecordActionRequest{})
	postAction.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusCreated))
	postAction.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postAction)

	// POST /api/game/opponent
	postOpponent, _ := r.NewOperationContext(http.MethodPost, "/api/game/opponent")
	postOpponent.SetSummary("Add opponent points")
	postOpponent.SetDescription("Adds 1, 2 or 3 points to the opponent score.")
	postOpponent.AddReqStructure(OpponentScoreRequest{})
	postOpponent.AddRespStructure(OpponentScoreResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postOpponent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postOpponent)

	// POST /api/game/undo
	postUndo, _ := r.NewOperationContext(http.MethodPost, "/api/game/undo")
	postUndo.SetSummary("Undo last scoring event")
	postUndo.SetDescription("Pops the last scoring event (player action or opponent points). No-op when nothing is left to undo.")
	postUndo.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postUndo)

	// POST /api/game/period
	postPeriod, _ := r.NewOperationContext(http.MethodPost, "/api/game/period")
	postPeriod.SetSummary("Advance period")
	postPeriod.SetDescription("Cycles the period 1→2→3→4→1. Not undoable.")
	postPeriod.AddRespStructure(PeriodResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postPeriod)

	// POST /api/game/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/game/reset")
	postReset.SetSummary("New game")
	postReset.SetDescription("Replaces the game with fresh defaults and clears the persisted state. Irreversible.")
	postReset.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(postReset)

	// PUT /api/game/info
	putInfo, _ := r.NewOperationContext(http.MethodPut, "/api/game/info")
	putInfo.SetSummary("Update match info")
	putInfo.SetDescription("Updates score-sheet header fields. Absent fields keep their current values.")
	putInfo.AddReqStructure(MatchInfoRequest{})
	putInfo.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	putInfo.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(putInfo)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
