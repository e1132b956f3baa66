// Package server exposes the manual sync trigger and read-only catalog queries over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
	"github.com/at-ishikawa/lcsolved/internal/query"
	"github.com/at-ishikawa/lcsolved/internal/syncer"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_handler.go -package=mock_server

type FlashcardSyncer interface {
	SyncFlashcards(ctx context.Context) (*flashcard.IngestResult, error)
}

type TaskEnqueuer interface {
	Enqueue(ctx context.Context, kind string, payload any) error
}

type QuestionQuerier interface {
	Query(ctx context.Context, f query.Filter) ([]catalog.Question, error)
	All(ctx context.Context) ([]catalog.Question, error)
	Unsolved(ctx context.Context) ([]catalog.Question, error)
}

type CardLister interface {
	FindAll(ctx context.Context) ([]flashcard.Card, error)
}

type Handler struct {
	flashcards FlashcardSyncer
	tasks      TaskEnqueuer
	questions  QuestionQuerier
	cards      CardLister
	logger     *slog.Logger
}

func NewHandler(flashcards FlashcardSyncer, tasks TaskEnqueuer, questions QuestionQuerier, cards CardLister, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		flashcards: flashcards,
		tasks:      tasks,
		questions:  questions,
		cards:      cards,
		logger:     logger,
	}
}

type syncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes returns the mux with every endpoint registered.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /syncMochi", h.SyncMochi)
	mux.HandleFunc("GET /api/questions", h.ListQuestions)
	mux.HandleFunc("GET /api/questions/all", h.ListAllQuestions)
	mux.HandleFunc("GET /api/questions/unsolved", h.ListUnsolvedQuestions)
	mux.HandleFunc("GET /api/flashcards", h.ListFlashcards)
	mux.HandleFunc("POST /api/sync/catalog", h.RefreshCatalog)
	mux.HandleFunc("GET /healthz", h.Health)
	return mux
}

// NewHTTPHandler wraps the routes with CORS and cleartext HTTP/2 support.
func NewHTTPHandler(routes http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         3600,
	}).Handler(h2c.NewHandler(routes, &http2.Server{}))
}

// SyncMochi runs flashcard ingestion now; reconciliation follows after the settle delay.
func (h *Handler) SyncMochi(w http.ResponseWriter, r *http.Request) {
	result, err := h.flashcards.SyncFlashcards(r.Context())
	if err != nil {
		h.logger.Error("manual flashcard sync failed", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, syncResponse{Success: false, Message: err.Error()})
		return
	}
	h.logger.Info("manual flashcard sync finished", "new", result.New, "skipped", result.Skipped)
	h.writeJSON(w, http.StatusOK, syncResponse{Success: true, Message: "Mochi sync triggered!"})
}

func (h *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.Enqueue(r.Context(), syncer.TaskCatalogRefresh, nil); err != nil {
		h.logger.Error("failed to enqueue catalog refresh", "error", err)
		h.writeJSON(w, http.StatusServiceUnavailable, syncResponse{Success: false, Message: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusAccepted, syncResponse{Success: true, Message: "Catalog refresh scheduled"})
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	filter, err := query.ParseFilter(r.URL.Query())
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	questions, err := h.questions.Query(r.Context(), filter)
	h.writeList(w, questions, err)
}

func (h *Handler) ListAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.All(r.Context())
	h.writeList(w, questions, err)
}

func (h *Handler) ListUnsolvedQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.Unsolved(r.Context())
	h.writeList(w, questions, err)
}

func (h *Handler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.FindAll(r.Context())
	if err != nil {
		h.writeInternalError(w, err)
		return
	}
	if cards == nil {
		cards = []flashcard.Card{}
	}
	h.writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeList(w http.ResponseWriter, questions []catalog.Question, err error) {
	if err != nil {
		h.writeInternalError(w, err)
		return
	}
	if questions == nil {
		questions = []catalog.Question{}
	}
	h.writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) writeInternalError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	h.logger.Error("request failed", "error", err)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
