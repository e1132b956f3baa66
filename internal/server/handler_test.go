package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
	mock_server "github.com/at-ishikawa/lcsolved/internal/mocks/server"
	"github.com/at-ishikawa/lcsolved/internal/query"
	"github.com/at-ishikawa/lcsolved/internal/syncer"
)

type handlerMocks struct {
	flashcards *mock_server.MockFlashcardSyncer
	tasks      *mock_server.MockTaskEnqueuer
	questions  *mock_server.MockQuestionQuerier
	cards      *mock_server.MockCardLister
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		flashcards: mock_server.NewMockFlashcardSyncer(ctrl),
		tasks:      mock_server.NewMockTaskEnqueuer(ctrl),
		questions:  mock_server.NewMockQuestionQuerier(ctrl),
		cards:      mock_server.NewMockCardLister(ctrl),
	}
	return NewHandler(m.flashcards, m.tasks, m.questions, m.cards, nil), m
}

func ptr(v float64) *float64 {
	return &v
}

func TestHandler_Routes(t *testing.T) {
	sample := []catalog.Question{
		{QuestionID: 1, Title: "Two Sum", ContestName: "Unknown Contest", Rating: 1200, URL: "https://leetcode.com/problems/two-sum/description/"},
	}

	tests := []struct {
		name       string
		method     string
		target     string
		setup      func(m handlerMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "sync mochi succeeds",
			method: http.MethodGet,
			target: "/syncMochi",
			setup: func(m handlerMocks) {
				m.flashcards.EXPECT().SyncFlashcards(gomock.Any()).
					Return(&flashcard.IngestResult{Fetched: 2, New: 1, Skipped: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Mochi sync triggered!"}`,
		},
		{
			name:   "sync mochi reports the failure",
			method: http.MethodGet,
			target: "/syncMochi",
			setup: func(m handlerMocks) {
				m.flashcards.EXPECT().SyncFlashcards(gomock.Any()).
					Return(nil, errors.New("sync flashcards: mochi api error: 401 Unauthorized - bad key"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"sync flashcards: mochi api error: 401 Unauthorized - bad key"}`,
		},
		{
			name:   "filtered questions",
			method: http.MethodGet,
			target: "/api/questions?ratingMin=1500&ratingMax=2500&sortBy=rating&sortOrder=asc",
			setup: func(m handlerMocks) {
				m.questions.EXPECT().Query(gomock.Any(), query.Filter{
					RatingMin: ptr(1500),
					RatingMax: ptr(2500),
					SortBy:    query.SortByRating,
					SortOrder: query.SortOrderAsc,
				}).Return(sample, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"question_id":1,"title":"Two Sum","contest_name":"Unknown Contest","problem_index":"","rating":1200,"url":"https://leetcode.com/problems/two-sum/description/","solved":false}]`,
		},
		{
			name:       "invalid sort field",
			method:     http.MethodGet,
			target:     "/api/questions?sortBy=title",
			setup:      func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid filter: SortBy must be one of [id rating], got \"title\""}`,
		},
		{
			name:       "invalid rating bound",
			method:     http.MethodGet,
			target:     "/api/questions?ratingMin=abc",
			setup:      func(m handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "query failure is hidden from the client",
			method: http.MethodGet,
			target: "/api/questions",
			setup: func(m handlerMocks) {
				m.questions.EXPECT().Query(gomock.Any(), query.Filter{}).Return(nil, errors.New("db is down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
		{
			name:   "all questions empty",
			method: http.MethodGet,
			target: "/api/questions/all",
			setup: func(m handlerMocks) {
				m.questions.EXPECT().All(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "unsolved questions",
			method: http.MethodGet,
			target: "/api/questions/unsolved",
			setup: func(m handlerMocks) {
				m.questions.EXPECT().Unsolved(gomock.Any()).Return(sample, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"question_id":1,"title":"Two Sum","contest_name":"Unknown Contest","problem_index":"","rating":1200,"url":"https://leetcode.com/problems/two-sum/description/","solved":false}]`,
		},
		{
			name:   "flashcards",
			method: http.MethodGet,
			target: "/api/flashcards",
			setup: func(m handlerMocks) {
				m.cards.EXPECT().FindAll(gomock.Any()).Return([]flashcard.Card{{CardID: "c1", Content: "**Two Sum**"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"card_id":"c1","content":"**Two Sum**"}]`,
		},
		{
			name:   "catalog refresh is scheduled",
			method: http.MethodPost,
			target: "/api/sync/catalog",
			setup: func(m handlerMocks) {
				m.tasks.EXPECT().Enqueue(gomock.Any(), syncer.TaskCatalogRefresh, nil).Return(nil)
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `{"success":true,"message":"Catalog refresh scheduled"}`,
		},
		{
			name:   "catalog refresh with a full queue",
			method: http.MethodPost,
			target: "/api/sync/catalog",
			setup: func(m handlerMocks) {
				m.tasks.EXPECT().Enqueue(gomock.Any(), syncer.TaskCatalogRefresh, nil).Return(errors.New("task queue is full"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"success":false,"message":"task queue is full"}`,
		},
		{
			name:       "health",
			method:     http.MethodGet,
			target:     "/healthz",
			setup:      func(m handlerMocks) {},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			target:     "/api/sync/catalog",
			setup:      func(m handlerMocks) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newTestHandler(t)
			tt.setup(m)

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			handler.Routes().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestNewHTTPHandler_CORS(t *testing.T) {
	handler, _ := newTestHandler(t)
	srv := httptest.NewServer(NewHTTPHandler(handler.Routes(), []string{"http://localhost:5173"}))
	defer srv.Close()

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{
			name:       "allowed origin",
			origin:     "http://localhost:5173",
			wantOrigin: "http://localhost:5173",
		},
		{
			name:   "unknown origin",
			origin: "http://evil.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/questions", nil)
			require.NoError(t, err)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
