package api

import (
	"net/http"
	"strconv"

	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type ItemResponse struct {
	ID       string `json:"id" example:"0"`
	Full     string `json:"full" example:"チャーシューメン"`
	Abbr     string `json:"abbr" example:"チャー"`
	Score    int    `json:"score" example:"2"`
	Mastered bool   `json:"mastered" example:"false"`
}

func toItemResponse(it item.Item) ItemResponse {
	return ItemResponse{
		ID:       it.ID,
		Full:     it.Full,
		Abbr:     it.Abbr,
		Score:    it.Score,
		Mastered: it.Mastered(),
	}
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Stats service.Stats  `json:"stats"`
}

type ResetProgressRequest struct {
	Confirm bool `json:"confirm" example:"true"`
}

type ExportResponse struct {
	Content string `json:"content" example:"[\n  {\n    \"id\": \"0\",\n ..."`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listItems returns the browse list.
// @Summary      List items
// @Description  Items whose full name or abbreviation contains q (ignoring case, whitespace and dash variants), sorted by full name in Japanese order.
// @Tags         Items
// @Produce      json
// @Param        q    query     string  false  "Search text"
// @Success      200  {object}  ListItemsResponse
// @Router       /items [get]
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	found := h.trainer.Search(r.URL.Query().Get("q"))

	resp := ListItemsResponse{
		Items: make([]ItemResponse, len(found)),
		Stats: h.trainer.Stats(),
	}
	for i, it := range found {
		resp.Items[i] = toItemResponse(it)
	}
	respondJSON(w, http.StatusOK, resp)
}

// resetItem sets one item's score back to zero.
// @Summary      Reset an item
// @Tags         Items
// @Produce      json
// @Param        itemID  path      string  true  "Item ID"
// @Success      200     {object}  ItemResponse
// @Failure      404     {object}  map[string]string
// @Router       /items/{itemID}/reset [post]
func (h *Handler) resetItem(w http.ResponseWriter, r *http.Request) {
	it, err := h.trainer.ResetItem(r.PathValue("itemID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toItemResponse(it))
}

// getStats returns the mastered count.
// @Summary      Mastery stats
// @Tags         Items
// @Produce      json
// @Success      200  {object}  service.Stats
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.trainer.Stats())
}

// resetProgress wipes every score.
// @Summary      Reset all progress
// @Description  Sets every score to zero. The body must carry confirm=true.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        body  body      ResetProgressRequest  true  "Confirmation"
// @Success      200   {object}  service.Stats
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /progress/reset [post]
func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	var req ResetProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if h.handleError(w, h.trainer.ResetAll(r.Context(), req.Confirm)) {
		return
	}
	h.logger.Info("progress reset")
	respondJSON(w, http.StatusOK, h.trainer.Stats())
}

// exportProgress returns the progress as indented JSON text.
// @Summary      Export progress
// @Description  Pretty-printed progress. Truncated with a marker unless full=true.
// @Tags         Progress
// @Produce      json
// @Param        full  query     bool  false  "Disable truncation"
// @Success      200   {object}  ExportResponse
// @Failure      400   {object}  map[string]string
// @Router       /progress/export [get]
func (h *Handler) exportProgress(w http.ResponseWriter, r *http.Request) {
	full := false
	if v := r.URL.Query().Get("full"); v != "" {
		var err error
		if full, err = strconv.ParseBool(v); err != nil {
			respondError(w, http.StatusBadRequest, "full must be a boolean")
			return
		}
	}

	content, err := h.trainer.Export(full)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ExportResponse{Content: content})
}
