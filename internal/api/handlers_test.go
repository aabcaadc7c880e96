package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yuvaraja22/wordle-bot/internal/api"
	"github.com/yuvaraja22/wordle-bot/internal/bot"
	"github.com/yuvaraja22/wordle-bot/internal/repository/sqlite"
	"github.com/yuvaraja22/wordle-bot/internal/services"
	"github.com/yuvaraja22/wordle-bot/internal/testutil"
	"github.com/yuvaraja22/wordle-bot/internal/testutil/mocks"
)

type HandlersSuite struct {
	suite.Suite
	handler http.Handler
}

func (s *HandlersSuite) SetupTest() {
	db := testutil.NewTestDB(s.T())
	s.T().Cleanup(func() { db.Close() })

	b := bot.New(
		services.NewScoreService(sqlite.NewScoreRepository(db)),
		services.NewStatsService(sqlite.NewStatsRepository(db), new(mocks.MockLeetCodeClient)),
		services.NewWordService(sqlite.NewWordRepository(db)),
		new(mocks.MockTransport),
		"mathanika",
		"stats@g.us",
		"wordle@g.us",
	)
	server := &api.Server{Bot: b, DB: db, WebhookToken: "hook-secret"}
	s.handler = server.Routes()
}

func (s *HandlersSuite) post(body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *HandlersSuite) TestInboundGameResult() {
	body := `{
		"text": "Wordle 1581 4/6",
		"sender": {"id": "111@c.us", "name": "Alice"},
		"chat": {"id": "wordle@g.us", "name": "Wordle 2.0", "is_group": true}
	}`
	rec := s.post(body, "hook-secret")

	require.Equal(s.T(), http.StatusOK, rec.Code)
	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(s.T(), resp.Reply, "Recorded Wordle 1581")
}

func (s *HandlersSuite) TestInboundChatterYieldsEmptyReply() {
	body := `{
		"text": "anyone up for lunch?",
		"sender": {"id": "111@c.us", "name": "Alice"},
		"chat": {"id": "wordle@g.us", "is_group": true}
	}`
	rec := s.post(body, "hook-secret")

	require.Equal(s.T(), http.StatusOK, rec.Code)
	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(s.T(), resp.Reply)
}

func (s *HandlersSuite) TestInboundRejectsBadJSON() {
	rec := s.post("{not json", "hook-secret")
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlersSuite) TestInboundRequiresChatID() {
	rec := s.post(`{"text": "/current"}`, "hook-secret")
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlersSuite) TestInboundRequiresToken() {
	rec := s.post(`{"text": "/current", "chat": {"id": "wordle@g.us"}}`, "")
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)

	rec = s.post(`{"text": "/current", "chat": {"id": "wordle@g.us"}}`, "wrong")
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *HandlersSuite) TestHealthAndReady() {
	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		assert.Equal(s.T(), http.StatusOK, rec.Code, path)
	}
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}
