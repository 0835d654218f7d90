package api

import (
	"net/http"

	"github.com/abbr-trainer/backend/internal/domain/quiz"
)

// ── Request / Response types ────────────────────────────────────────────────

type DirectionRequest struct {
	Direction string `json:"direction" example:"ABBR_TO_FULL"`
}

type DirectionResponse struct {
	Direction quiz.Direction `json:"direction" example:"FULL_TO_ABBR"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getDirection
// @Summary      Current direction
// @Tags         Direction
// @Produce      json
// @Success      200  {object}  DirectionResponse
// @Router       /direction [get]
func (h *Handler) getDirection(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DirectionResponse{Direction: h.trainer.Direction()})
}

// setDirection
// @Summary      Set direction
// @Description  FULL_TO_ABBR asks the full name, ABBR_TO_FULL asks the abbreviation. Every quiz mode draws a new question.
// @Tags         Direction
// @Accept       json
// @Produce      json
// @Param        body  body      DirectionRequest  true  "Direction"
// @Success      200   {object}  DirectionResponse
// @Failure      400   {object}  map[string]string
// @Router       /direction [put]
func (h *Handler) setDirection(w http.ResponseWriter, r *http.Request) {
	var req DirectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d, err := quiz.ParseDirection(req.Direction)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.trainer.SetDirection(d)
	respondJSON(w, http.StatusOK, DirectionResponse{Direction: d})
}

// toggleDirection
// @Summary      Toggle direction
// @Tags         Direction
// @Produce      json
// @Success      200  {object}  DirectionResponse
// @Router       /direction/toggle [post]
func (h *Handler) toggleDirection(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DirectionResponse{Direction: h.trainer.ToggleDirection()})
}
