// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/abbr-trainer/backend/internal/domain/quiz"
	"github.com/abbr-trainer/backend/internal/domain/selector"
	"github.com/abbr-trainer/backend/internal/grader"
	"github.com/abbr-trainer/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
//
// The quiz controllers keep per-presentation state for the single learner
// using the app; quizMu serializes access to them.
type Handler struct {
	trainer *service.Trainer
	logger  *slog.Logger

	quizMu    sync.Mutex
	flashcard *quiz.Flashcard
	choice    *quiz.MultipleChoice
	typing    *quiz.Typing
}

// NewHandler creates a Handler with the given dependencies. sel is the
// random source shared by the quiz modes.
func NewHandler(trainer *service.Trainer, sel *selector.Selector, logger *slog.Logger) *Handler {
	return &Handler{
		trainer:   trainer,
		logger:    logger,
		flashcard: quiz.NewFlashcard(trainer, sel),
		choice:    quiz.NewMultipleChoice(trainer, sel),
		typing:    quiz.NewTyping(trainer, sel, grader.NormalizedGrader{}),
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. It writes a 400 and
// returns false if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleError maps domain errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, service.ErrConfirmationRequired):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, quiz.ErrNoQuestion):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrAllMastered),
		errors.Is(err, quiz.ErrAlreadyAnswered),
		errors.Is(err, quiz.ErrStaleQuestion):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrUnknownOption):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
