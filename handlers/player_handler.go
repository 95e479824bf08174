package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
	}
}

type registerPlayerInput struct {
	Name string `json:"name"`
}

// RegisterPlayer godoc
// @Summary Register a player
// @Tags players
// @Accept json
// @Produce json
// @Param body body registerPlayerInput true "Player name"
// @Success 201 {object} map[string]interface{} "Player registered"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /players [post]
func (h *PlayerHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var input registerPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.RegisterPlayer(r.Context(), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"player": player}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPlayers godoc
// @Summary List registered players in id order
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{} "Players"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"players": players}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CountPlayers godoc
// @Summary Count registered players
// @Tags players
// @Produce json
// @Success 200 {object} map[string]int "Player count"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /players/count [get]
func (h *PlayerHandler) CountPlayers(w http.ResponseWriter, r *http.Request) {
	count, err := h.playerService.CountPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"count": count}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePlayers godoc
// @Summary Delete every player and every match
// @Tags players
// @Success 204 "Deleted"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /players [delete]
func (h *PlayerHandler) DeletePlayers(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.DeletePlayers(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
