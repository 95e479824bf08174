package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: ms,
	}
}

type reportMatchInput struct {
	WinnerID int `json:"winner_id"`
	LoserID  int `json:"loser_id"`
}

// ReportMatch godoc
// @Summary Report the result of a match
// @Tags matches
// @Accept json
// @Produce json
// @Param body body reportMatchInput true "Winner and loser ids"
// @Success 201 {object} map[string]interface{} "Match recorded"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 409 {object} map[string]string "Unknown player or winner equals loser"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /matches [post]
func (h *MatchHandler) ReportMatch(w http.ResponseWriter, r *http.Request) {
	var input reportMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.ReportMatch(r.Context(), input.WinnerID, input.LoserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"match": match}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListMatches godoc
// @Summary List reported matches in the order they were reported
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{} "Matches"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"matches": matches}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteMatches godoc
// @Summary Delete every match, keeping players
// @Tags matches
// @Success 204 "Deleted"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /matches [delete]
func (h *MatchHandler) DeleteMatches(w http.ResponseWriter, r *http.Request) {
	if err := h.matchService.DeleteMatches(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
