// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts every API route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Browse
	mux.HandleFunc("GET /items", h.listItems)
	mux.HandleFunc("POST /items/{itemID}/reset", h.resetItem)
	mux.HandleFunc("GET /stats", h.getStats)

	// Direction
	mux.HandleFunc("GET /direction", h.getDirection)
	mux.HandleFunc("PUT /direction", h.setDirection)
	mux.HandleFunc("POST /direction/toggle", h.toggleDirection)

	// Flashcards
	mux.HandleFunc("GET /flashcard", h.getFlashcard)
	mux.HandleFunc("POST /flashcard/flip", h.flipFlashcard)
	mux.HandleFunc("POST /flashcard/mark", h.markFlashcard)

	// Multiple choice
	mux.HandleFunc("GET /choice", h.getChoice)
	mux.HandleFunc("POST /choice/answer", h.answerChoice)
	mux.HandleFunc("POST /choice/next", h.nextChoice)

	// Typing
	mux.HandleFunc("GET /typing", h.getTyping)
	mux.HandleFunc("POST /typing/check", h.checkTyping)
	mux.HandleFunc("POST /typing/next", h.nextTyping)

	// Progress
	mux.HandleFunc("POST /progress/reset", h.resetProgress)
	mux.HandleFunc("GET /progress/export", h.exportProgress)
}
