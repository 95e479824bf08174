package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/Dosada05/swiss-tournament/services"
)

const healthTimeout = 2 * time.Second

type TournamentHandler struct {
	tournamentService services.TournamentService
	exportService     services.ExportService
	db                *sql.DB
}

func NewTournamentHandler(ts services.TournamentService, es services.ExportService, db *sql.DB) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		exportService:     es,
		db:                db,
	}
}

// GetStandings godoc
// @Summary Current standings
// @Description Players ordered by wins descending, ties broken by ascending id.
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{} "Standings"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /standings [get]
func (h *TournamentHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.PlayerStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"standings": standings}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPairings godoc
// @Summary Swiss pairings for the next round
// @Description Adjacent players in the standings are paired: 1 vs 2, 3 vs 4 and so on.
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{} "Pairings"
// @Failure 409 {object} map[string]interface{} "Odd number of players"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /pairings [get]
func (h *TournamentHandler) GetPairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.tournamentService.SwissPairings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"pairings": pairings}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportSnapshot godoc
// @Summary Upload standings and pairings to object storage
// @Tags tournament
// @Produce json
// @Success 201 {object} map[string]interface{} "Snapshot exported"
// @Failure 501 {object} map[string]string "Export not configured"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /exports [post]
func (h *TournamentHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	export, err := h.exportService.ExportSnapshot(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"export": export}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Health godoc
// @Summary Store health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "ok"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /health [get]
func (h *TournamentHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		unavailableResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
