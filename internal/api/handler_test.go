package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abbr-trainer/backend/internal/api"
	"github.com/abbr-trainer/backend/internal/domain/catalog"
	"github.com/abbr-trainer/backend/internal/domain/quiz"
	"github.com/abbr-trainer/backend/internal/domain/selector"
	"github.com/abbr-trainer/backend/internal/progress"
	"github.com/abbr-trainer/backend/internal/service"
	"github.com/abbr-trainer/backend/internal/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var entries = []catalog.Entry{
	{Full: "味噌ラーメン", Abbr: "ミ"},
	{Full: "塩ラーメン", Abbr: "塩"},
	{Full: "デラックスラーメン", Abbr: "DX"},
	{Full: "チャーシューメン", Abbr: "チャー"},
	{Full: "ネギラーメン", Abbr: "ネギ"},
}

type testServer struct {
	trainer *service.Trainer
	handler http.Handler
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	kv := store.NewMemory()
	tr := service.NewTrainer(context.Background(), progress.New(kv, "", entries, discard), discard, service.Options{})
	t.Cleanup(tr.Close)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(tr, selector.NewSeeded(7), discard))
	return &testServer{trainer: tr, handler: api.Logging(discard)(api.CORS(mux))}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestListItems_FiltersAndSorts(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/items?q=dx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[api.ListItemsResponse](t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "デラックスラーメン", resp.Items[0].Full)
	assert.Equal(t, service.Stats{Mastered: 0, Total: 5}, resp.Stats)

	rec = s.do(t, http.MethodGet, "/items", nil)
	all := decode[api.ListItemsResponse](t, rec)
	assert.Len(t, all.Items, 5)
}

func TestResetItem(t *testing.T) {
	s := newServer(t)
	_, err := s.trainer.Mark("2", true)
	require.NoError(t, err)

	rec := s.do(t, http.MethodPost, "/items/2/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[api.ItemResponse](t, rec).Score)

	rec = s.do(t, http.MethodPost, "/items/99/reset", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDirection(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/direction", nil)
	assert.Equal(t, quiz.FullToAbbr, decode[api.DirectionResponse](t, rec).Direction)

	rec = s.do(t, http.MethodPost, "/direction/toggle", nil)
	assert.Equal(t, quiz.AbbrToFull, decode[api.DirectionResponse](t, rec).Direction)

	rec = s.do(t, http.MethodPut, "/direction", api.DirectionRequest{Direction: "FULL_TO_ABBR"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, quiz.FullToAbbr, s.trainer.Direction())

	rec = s.do(t, http.MethodPut, "/direction", api.DirectionRequest{Direction: "sideways"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFlashcard_FlipAndMark(t *testing.T) {
	s := newServer(t)

	card := decode[quiz.Card](t, s.do(t, http.MethodGet, "/flashcard", nil))
	require.False(t, card.AllMastered)
	assert.False(t, card.Flipped)

	flipped := decode[quiz.Card](t, s.do(t, http.MethodPost, "/flashcard/flip", nil))
	assert.True(t, flipped.Flipped)
	assert.Equal(t, card.ItemID, flipped.ItemID)

	rec := s.do(t, http.MethodPost, "/flashcard/mark", map[string]bool{"correct": true})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[api.MarkFlashcardResponse](t, rec)
	assert.Equal(t, card.ItemID, resp.Item.ID)
	assert.Equal(t, 1, resp.Item.Score)
	assert.False(t, resp.Next.Flipped)
}

func TestFlashcard_MarkRequiresVerdict(t *testing.T) {
	s := newServer(t)
	rec := s.do(t, http.MethodPost, "/flashcard/mark", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFlashcard_AllMastered(t *testing.T) {
	s := newServer(t)
	for _, it := range s.trainer.Items() {
		for range 3 {
			_, err := s.trainer.Mark(it.ID, true)
			require.NoError(t, err)
		}
	}

	card := decode[quiz.Card](t, s.do(t, http.MethodGet, "/flashcard", nil))
	assert.True(t, card.AllMastered)

	rec := s.do(t, http.MethodPost, "/flashcard/mark", map[string]bool{"correct": false})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestChoice_AnsweredOnce(t *testing.T) {
	s := newServer(t)

	c := decode[quiz.Choice](t, s.do(t, http.MethodGet, "/choice", nil))
	require.Len(t, c.Options, quiz.OptionCount)

	rec := s.do(t, http.MethodPost, "/choice/answer", api.AnswerChoiceRequest{QuestionID: c.ID, Option: c.Options[0]})
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[quiz.Choice](t, rec)
	assert.True(t, first.Answered)
	assert.Equal(t, c.Options[0], first.Selected)
	assert.Contains(t, c.Options, first.Correct)

	rec = s.do(t, http.MethodPost, "/choice/answer", api.AnswerChoiceRequest{Option: c.Options[1]})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, c.Options[0], decode[quiz.Choice](t, rec).Selected)

	next := decode[quiz.Choice](t, s.do(t, http.MethodPost, "/choice/next", nil))
	assert.NotEqual(t, c.ID, next.ID)
	assert.False(t, next.Answered)

	rec = s.do(t, http.MethodPost, "/choice/answer", api.AnswerChoiceRequest{QuestionID: c.ID, Option: next.Options[0]})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestChoice_UnknownOption(t *testing.T) {
	s := newServer(t)
	rec := s.do(t, http.MethodPost, "/choice/answer", api.AnswerChoiceRequest{Option: "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTyping_CheckIgnoresCaseAndSpace(t *testing.T) {
	s := newServer(t)

	p := decode[quiz.Prompt](t, s.do(t, http.MethodGet, "/typing", nil))
	it, err := s.trainer.Item(p.ItemID)
	require.NoError(t, err)

	typed := " " + strings.ToLower(it.Abbr) + " "
	rec := s.do(t, http.MethodPost, "/typing/check", api.CheckTypingRequest{Answer: typed})
	require.Equal(t, http.StatusOK, rec.Code)
	checked := decode[quiz.Prompt](t, rec)
	assert.Equal(t, quiz.ResultOK, checked.Result)
	assert.Equal(t, it.Abbr, checked.Answer)

	rec = s.do(t, http.MethodPost, "/typing/check", api.CheckTypingRequest{Answer: typed})
	assert.Equal(t, http.StatusConflict, rec.Code)

	next := decode[quiz.Prompt](t, s.do(t, http.MethodPost, "/typing/next", nil))
	assert.Equal(t, quiz.ResultNone, next.Result)
}

func TestTyping_WrongRevealsAnswer(t *testing.T) {
	s := newServer(t)

	p := decode[quiz.Prompt](t, s.do(t, http.MethodGet, "/typing", nil))
	checked := decode[quiz.Prompt](t, s.do(t, http.MethodPost, "/typing/check", api.CheckTypingRequest{Answer: "???"}))
	assert.Equal(t, quiz.ResultNG, checked.Result)
	assert.NotEmpty(t, checked.Answer)

	it, err := s.trainer.Item(p.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Score)
}

func TestResetProgress_NeedsConfirmation(t *testing.T) {
	s := newServer(t)
	for range 3 {
		_, err := s.trainer.Mark("0", true)
		require.NoError(t, err)
	}

	rec := s.do(t, http.MethodPost, "/progress/reset", api.ResetProgressRequest{Confirm: false})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, s.trainer.Stats().Mastered)

	rec = s.do(t, http.MethodPost, "/progress/reset", api.ResetProgressRequest{Confirm: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.Stats{Mastered: 0, Total: 5}, decode[service.Stats](t, rec))
}

func TestResetProgress_RejectsBadBody(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodPost, "/progress/reset", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportProgress(t *testing.T) {
	s := newServer(t)

	resp := decode[api.ExportResponse](t, s.do(t, http.MethodGet, "/progress/export?full=true", nil))
	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Content), &items))
	assert.Len(t, items, 5)

	rec := s.do(t, http.MethodGet, "/progress/export?full=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMiddleware_RequestIDAndCORS(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, http.MethodGet, "/stats", nil)
	assert.NotEmpty(t, rec.Header().Get(api.RequestIDHeader))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set(api.RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(api.RequestIDHeader))

	rec = s.do(t, http.MethodOptions, "/stats", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
