package syncer_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avast/retry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
	mock_syncer "github.com/at-ishikawa/lcsolved/internal/mocks/syncer"
	"github.com/at-ishikawa/lcsolved/internal/reconcile"
	"github.com/at-ishikawa/lcsolved/internal/scheduler"
	"github.com/at-ishikawa/lcsolved/internal/syncer"
	"github.com/at-ishikawa/lcsolved/internal/taskqueue"
	"github.com/at-ishikawa/lcsolved/internal/testutil"
)

type mocks struct {
	catalog    *mock_syncer.MockCatalogIngester
	flashcards *mock_syncer.MockFlashcardIngester
	reconciler *mock_syncer.MockSolvedReconciler
	scheduler  *mock_syncer.MockScheduler
}

func newOrchestrator(t *testing.T, cfg syncer.Config) (*syncer.Orchestrator, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		catalog:    mock_syncer.NewMockCatalogIngester(ctrl),
		flashcards: mock_syncer.NewMockFlashcardIngester(ctrl),
		reconciler: mock_syncer.NewMockSolvedReconciler(ctrl),
		scheduler:  mock_syncer.NewMockScheduler(ctrl),
	}
	return syncer.New(cfg, m.catalog, m.flashcards, m.reconciler, m.scheduler, nil), m
}

func TestOrchestrator_SyncFlashcards(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m mocks)
		want      *flashcard.IngestResult
		wantError string
	}{
		{
			name: "ingests then schedules reconciliation after the settle delay",
			setup: func(m mocks) {
				gomock.InOrder(
					m.flashcards.EXPECT().Ingest(gomock.Any()).Return(&flashcard.IngestResult{Fetched: 2, New: 1, Skipped: 1}, nil),
					m.scheduler.EXPECT().ScheduleAfter(gomock.Any(), 30*time.Second, reconcile.TaskReconcile, nil).Return(nil),
				)
			},
			want: &flashcard.IngestResult{Fetched: 2, New: 1, Skipped: 1},
		},
		{
			name: "ingestion failure does not schedule reconciliation",
			setup: func(m mocks) {
				m.flashcards.EXPECT().Ingest(gomock.Any()).Return(nil, fmt.Errorf("mochi api error: 401 Unauthorized - "))
			},
			wantError: "sync flashcards: mochi api error: 401",
		},
		{
			name: "scheduling failure is reported",
			setup: func(m mocks) {
				m.flashcards.EXPECT().Ingest(gomock.Any()).Return(&flashcard.IngestResult{}, nil)
				m.scheduler.EXPECT().ScheduleAfter(gomock.Any(), 30*time.Second, reconcile.TaskReconcile, nil).
					Return(fmt.Errorf("task queue is full"))
			},
			wantError: "schedule reconciliation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, m := newOrchestrator(t, syncer.Config{SettleDelay: 30 * time.Second})
			tt.setup(m)

			got, err := o.SyncFlashcards(context.Background())
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrchestrator_RefreshCatalogAndReconcile(t *testing.T) {
	o, m := newOrchestrator(t, syncer.Config{})
	m.catalog.EXPECT().Ingest(gomock.Any()).Return(&catalog.IngestResult{Fetched: 3, Scheduled: 1}, nil)
	m.reconciler.EXPECT().Reconcile(gomock.Any()).Return(&reconcile.Result{Matched: 1, Total: 3}, nil)

	refreshed, err := o.RefreshCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &catalog.IngestResult{Fetched: 3, Scheduled: 1}, refreshed)

	reconciled, err := o.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &reconcile.Result{Matched: 1, Total: 3}, reconciled)
}

func TestOrchestrator_RegisterPeriodic(t *testing.T) {
	o, m := newOrchestrator(t, syncer.Config{CatalogInterval: 168 * time.Hour, FlashcardInterval: 24 * time.Hour})
	m.scheduler.EXPECT().RegisterPeriodic("catalog-refresh", 168*time.Hour, syncer.TaskCatalogRefresh).Return(nil)
	m.scheduler.EXPECT().RegisterPeriodic("flashcard-sync", 24*time.Hour, syncer.TaskFlashcardSync).Return(nil)

	require.NoError(t, o.RegisterPeriodic())
}

type handlerMap map[string]taskqueue.Handler

func (h handlerMap) Handle(kind string, handler taskqueue.Handler) {
	h[kind] = handler
}

func TestOrchestrator_RegisterHandlers(t *testing.T) {
	o, m := newOrchestrator(t, syncer.Config{})
	handlers := handlerMap{}
	o.RegisterHandlers(handlers)

	assert.ElementsMatch(t,
		[]string{syncer.TaskCatalogRefresh, catalog.TaskInsertQuestion, syncer.TaskFlashcardSync, reconcile.TaskReconcile},
		keys(handlers))

	ctx := context.Background()

	m.catalog.EXPECT().Ingest(gomock.Any()).Return(nil, fmt.Errorf("question feed error 503: "))
	err := handlers[syncer.TaskCatalogRefresh](ctx, nil)
	require.Error(t, err)
	assert.False(t, retry.IsRecoverable(err), "feed failures wait for the next trigger")

	m.flashcards.EXPECT().Ingest(gomock.Any()).Return(nil, fmt.Errorf("mochi api error: 500 Internal Server Error - "))
	err = handlers[syncer.TaskFlashcardSync](ctx, nil)
	require.Error(t, err)
	assert.False(t, retry.IsRecoverable(err))

	m.reconciler.EXPECT().Reconcile(gomock.Any()).Return(nil, fmt.Errorf("deadlock"))
	err = handlers[reconcile.TaskReconcile](ctx, nil)
	require.Error(t, err)
	assert.True(t, retry.IsRecoverable(err))

	payload := json.RawMessage(`{"question_id":1}`)
	m.catalog.EXPECT().HandleInsertQuestion(gomock.Any(), payload).Return(nil)
	require.NoError(t, handlers[catalog.TaskInsertQuestion](ctx, payload))
}

func keys(h handlerMap) []string {
	result := make([]string, 0, len(h))
	for k := range h {
		result = append(result, k)
	}
	return result
}

// TestPipeline_EndToEnd runs real components against fake feeds and a SQLite store.
func TestPipeline_EndToEnd(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Rating": 1737, "ID": 3044, "Title": "Most Frequent Prime", "TitleSlug": "most-frequent-prime", "ContestID_en": "Weekly Contest 385"},
			{"Rating": 1200, "ID": 1, "Title": "Two Sum", "TitleSlug": "two-sum"}
		]`))
	}))
	defer feed.Close()
	mochi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs":[{"id":"c1","content":"Solved: **3044. Most Frequent Prime**"}]}`))
	}))
	defer mochi.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := testutil.NewSQLiteDB(t)
	questions := catalog.NewDBQuestionRepository(db)
	cards := flashcard.NewDBCardRepository(db)
	queue := taskqueue.New(taskqueue.Config{Workers: 2, QueueSize: 100, RetryDelay: time.Millisecond}, nil)
	sched := scheduler.New(queue, nil)

	mochiClient, err := flashcard.NewClient(flashcard.Config{BaseURL: mochi.URL, APIKey: "key", PageLimit: 100})
	require.NoError(t, err)
	o := syncer.New(
		syncer.Config{SettleDelay: 10 * time.Millisecond},
		catalog.NewIngester(catalog.NewFeedClient(feed.URL), questions, queue, "https://leetcode.com/problems/{slug}/description/", nil),
		flashcard.NewIngester(mochiClient, cards, nil),
		reconcile.NewReconciler(cards, questions, nil),
		sched,
		nil,
	)
	o.RegisterHandlers(queue)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = queue.Run(ctx)
	}()

	require.NoError(t, queue.Enqueue(ctx, syncer.TaskCatalogRefresh, nil))
	require.NoError(t, queue.Wait(ctx))
	require.NoError(t, queue.Enqueue(ctx, syncer.TaskFlashcardSync, nil))
	require.NoError(t, queue.Wait(ctx))

	got, err := questions.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Question{
		{QuestionID: 1, Title: "Two Sum", ContestName: catalog.UnknownContest, Rating: 1200, URL: "https://leetcode.com/problems/two-sum/description/"},
		{QuestionID: 3044, Title: "Most Frequent Prime", ContestName: "Weekly Contest 385", Rating: 1737, URL: "https://leetcode.com/problems/most-frequent-prime/description/", Solved: true},
	}, got)
	assert.Equal(t, taskqueue.Stats{Succeeded: 5}, queue.Stats())

	cancel()
	<-done
}
