package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type AnswerChoiceRequest struct {
	QuestionID string `json:"question_id,omitempty" example:"9b2f6c1e-3c4d-4f7a-8e21-0c5d3b7a9f10"`
	Option     string `json:"option" example:"チャー"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getChoice
// @Summary      Current multiple-choice question
// @Tags         Multiple choice
// @Produce      json
// @Success      200  {object}  quiz.Choice
// @Failure      404  {object}  map[string]string  "no items"
// @Router       /choice [get]
func (h *Handler) getChoice(w http.ResponseWriter, r *http.Request) {
	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	c, err := h.choice.Current()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// answerChoice
// @Summary      Answer the question
// @Description  Only the first answer counts; later answers return the question as answered. The response names the selected and the correct option.
// @Tags         Multiple choice
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerChoiceRequest  true  "Picked option"
// @Success      200   {object}  quiz.Choice
// @Failure      400   {object}  map[string]string  "option not offered"
// @Failure      409   {object}  map[string]string  "question is no longer current"
// @Router       /choice/answer [post]
func (h *Handler) answerChoice(w http.ResponseWriter, r *http.Request) {
	var req AnswerChoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	c, err := h.choice.Answer(req.QuestionID, req.Option)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// nextChoice
// @Summary      Next question
// @Tags         Multiple choice
// @Produce      json
// @Success      200  {object}  quiz.Choice
// @Failure      404  {object}  map[string]string  "no items"
// @Router       /choice/next [post]
func (h *Handler) nextChoice(w http.ResponseWriter, r *http.Request) {
	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	c, err := h.choice.Next()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, c)
}
