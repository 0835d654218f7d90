package api

import (
	"net/http"

	"github.com/abbr-trainer/backend/internal/domain/quiz"
)

// ── Request / Response types ────────────────────────────────────────────────

type MarkFlashcardRequest struct {
	Correct *bool `json:"correct" example:"true"`
}

type MarkFlashcardResponse struct {
	Item ItemResponse `json:"item"`
	Next quiz.Card    `json:"next"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getFlashcard
// @Summary      Current flashcard
// @Description  Only unmastered items are drawn. all_mastered is set once none are left.
// @Tags         Flashcards
// @Produce      json
// @Success      200  {object}  quiz.Card
// @Router       /flashcard [get]
func (h *Handler) getFlashcard(w http.ResponseWriter, r *http.Request) {
	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	respondJSON(w, http.StatusOK, h.flashcard.Current())
}

// flipFlashcard
// @Summary      Flip the flashcard
// @Tags         Flashcards
// @Produce      json
// @Success      200  {object}  quiz.Card
// @Failure      409  {object}  map[string]string  "all items mastered"
// @Router       /flashcard/flip [post]
func (h *Handler) flipFlashcard(w http.ResponseWriter, r *http.Request) {
	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	card, err := h.flashcard.Flip()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, card)
}

// markFlashcard records a self-graded answer and draws the next card.
// @Summary      Grade the flashcard
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        body  body      MarkFlashcardRequest  true  "Self-reported verdict"
// @Success      200   {object}  MarkFlashcardResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "all items mastered"
// @Router       /flashcard/mark [post]
func (h *Handler) markFlashcard(w http.ResponseWriter, r *http.Request) {
	var req MarkFlashcardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Correct == nil {
		respondError(w, http.StatusBadRequest, "correct is required")
		return
	}

	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	updated, next, err := h.flashcard.Mark(*req.Correct)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, MarkFlashcardResponse{Item: toItemResponse(updated), Next: next})
}
