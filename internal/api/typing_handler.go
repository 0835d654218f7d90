package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type CheckTypingRequest struct {
	Answer string `json:"answer" example:"ﾁｬｰ"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getTyping
// @Summary      Current typing question
// @Tags         Typing
// @Produce      json
// @Success      200  {object}  quiz.Prompt
// @Failure      404  {object}  map[string]string  "no items"
// @Router       /typing [get]
func (h *Handler) getTyping(w http.ResponseWriter, r *http.Request) {
	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	p, err := h.typing.Current()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// checkTyping grades the typed answer. Whitespace, case and dash variants
// are ignored.
// @Summary      Check the typed answer
// @Tags         Typing
// @Accept       json
// @Produce      json
// @Param        body  body      CheckTypingRequest  true  "Typed answer"
// @Success      200   {object}  quiz.Prompt
// @Failure      409   {object}  map[string]string  "already checked"
// @Router       /typing/check [post]
func (h *Handler) checkTyping(w http.ResponseWriter, r *http.Request) {
	var req CheckTypingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	p, err := h.typing.Check(req.Answer)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// nextTyping
// @Summary      Next typing question
// @Tags         Typing
// @Produce      json
// @Success      200  {object}  quiz.Prompt
// @Failure      404  {object}  map[string]string  "no items"
// @Router       /typing/next [post]
func (h *Handler) nextTyping(w http.ResponseWriter, r *http.Request) {
	h.quizMu.Lock()
	defer h.quizMu.Unlock()

	p, err := h.typing.Next()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, p)
}
