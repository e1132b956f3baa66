package taskqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avast/retry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startQueue(t *testing.T, q *Queue) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = q.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestQueue_Enqueue(t *testing.T) {
	type payload struct {
		QuestionID int64 `json:"question_id"`
	}

	q := New(Config{Workers: 3, QueueSize: 100}, nil)
	var mu sync.Mutex
	var got []int64
	q.Handle("catalog.insert_question", func(ctx context.Context, raw json.RawMessage) error {
		var p payload
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		mu.Lock()
		got = append(got, p.QuestionID)
		mu.Unlock()
		return nil
	})
	startQueue(t, q)

	for i := int64(1); i <= 10; i++ {
		require.NoError(t, q.Enqueue(context.Background(), "catalog.insert_question", payload{QuestionID: i}))
	}
	require.NoError(t, q.Wait(context.Background()))

	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)
	assert.Equal(t, Stats{Succeeded: 10}, q.Stats())
}

func TestQueue_Retry(t *testing.T) {
	tests := []struct {
		name          string
		retryAttempts uint
		handler       func(calls *atomic.Int32) Handler
		wantCalls     int32
		wantStats     Stats
	}{
		{
			name:          "transient failure succeeds on retry",
			retryAttempts: 2,
			handler: func(calls *atomic.Int32) Handler {
				return func(ctx context.Context, _ json.RawMessage) error {
					if calls.Add(1) < 3 {
						return fmt.Errorf("deadlock")
					}
					return nil
				}
			},
			wantCalls: 3,
			wantStats: Stats{Succeeded: 1},
		},
		{
			name:          "persistent failure is counted after the last attempt",
			retryAttempts: 2,
			handler: func(calls *atomic.Int32) Handler {
				return func(ctx context.Context, _ json.RawMessage) error {
					calls.Add(1)
					return fmt.Errorf("deadlock")
				}
			},
			wantCalls: 3,
			wantStats: Stats{Failed: 1},
		},
		{
			name:          "unrecoverable error is not retried",
			retryAttempts: 5,
			handler: func(calls *atomic.Int32) Handler {
				return func(ctx context.Context, _ json.RawMessage) error {
					calls.Add(1)
					return retry.Unrecoverable(fmt.Errorf("bad payload"))
				}
			},
			wantCalls: 1,
			wantStats: Stats{Failed: 1},
		},
		{
			name:          "panic is reported as a failure",
			retryAttempts: 0,
			handler: func(calls *atomic.Int32) Handler {
				return func(ctx context.Context, _ json.RawMessage) error {
					calls.Add(1)
					panic("boom")
				}
			},
			wantCalls: 1,
			wantStats: Stats{Failed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(Config{Workers: 1, QueueSize: 10, RetryAttempts: tt.retryAttempts, RetryDelay: time.Millisecond}, nil)
			var calls atomic.Int32
			q.Handle("work", tt.handler(&calls))
			startQueue(t, q)

			require.NoError(t, q.Enqueue(context.Background(), "work", nil))
			require.NoError(t, q.Wait(context.Background()))

			assert.Equal(t, tt.wantCalls, calls.Load())
			assert.Equal(t, tt.wantStats, q.Stats())
		})
	}
}

func TestQueue_FailureIsIsolated(t *testing.T) {
	q := New(Config{Workers: 2, QueueSize: 10}, nil)
	var succeeded atomic.Int32
	q.Handle("insert", func(ctx context.Context, raw json.RawMessage) error {
		if string(raw) == `"bad"` {
			return fmt.Errorf("constraint violation")
		}
		succeeded.Add(1)
		return nil
	})
	startQueue(t, q)

	for _, p := range []string{"a", "bad", "b", "c"} {
		require.NoError(t, q.Enqueue(context.Background(), "insert", p))
	}
	require.NoError(t, q.Wait(context.Background()))

	assert.Equal(t, int32(3), succeeded.Load())
	assert.Equal(t, Stats{Succeeded: 3, Failed: 1}, q.Stats())
}

func TestQueue_EnqueueAfter(t *testing.T) {
	q := New(Config{Workers: 1, QueueSize: 10}, nil)
	ranAt := make(chan time.Time, 1)
	q.Handle("solved.reconcile", func(ctx context.Context, _ json.RawMessage) error {
		ranAt <- time.Now()
		return nil
	})
	startQueue(t, q)

	start := time.Now()
	require.NoError(t, q.EnqueueAfter(context.Background(), 50*time.Millisecond, "solved.reconcile", nil))
	require.NoError(t, q.Wait(context.Background()))

	select {
	case at := <-ranAt:
		assert.GreaterOrEqual(t, at.Sub(start), 50*time.Millisecond)
	default:
		t.Fatal("delayed task did not run before Wait returned")
	}
}

func TestQueue_WaitCoversTasksEnqueuedByTasks(t *testing.T) {
	q := New(Config{Workers: 1, QueueSize: 10}, nil)
	var children atomic.Int32
	q.Handle("child", func(ctx context.Context, _ json.RawMessage) error {
		children.Add(1)
		return nil
	})
	q.Handle("parent", func(ctx context.Context, _ json.RawMessage) error {
		for range 3 {
			if err := q.Enqueue(ctx, "child", nil); err != nil {
				return err
			}
		}
		return nil
	})
	startQueue(t, q)

	require.NoError(t, q.Enqueue(context.Background(), "parent", nil))
	require.NoError(t, q.Wait(context.Background()))

	assert.Equal(t, int32(3), children.Load())
	assert.Equal(t, Stats{Succeeded: 4}, q.Stats())
}

func TestQueue_WaitReturnsWhenContextIsDone(t *testing.T) {
	q := New(Config{Workers: 1, QueueSize: 10}, nil)
	q.Handle("work", func(ctx context.Context, _ json.RawMessage) error { return nil })
	startQueue(t, q)

	require.NoError(t, q.EnqueueAfter(context.Background(), time.Hour, "work", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Wait(ctx), context.DeadlineExceeded)
	assert.Equal(t, Stats{}, q.Stats())
}

func TestQueue_EnqueueErrors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		q := New(Config{Workers: 1, QueueSize: 10}, nil)
		err := q.Enqueue(context.Background(), "nope", nil)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("queue full", func(t *testing.T) {
		q := New(Config{Workers: 1, QueueSize: 2}, nil)
		q.Handle("work", func(ctx context.Context, _ json.RawMessage) error { return nil })

		require.NoError(t, q.Enqueue(context.Background(), "work", nil))
		require.NoError(t, q.Enqueue(context.Background(), "work", nil))
		err := q.Enqueue(context.Background(), "work", nil)
		assert.ErrorIs(t, err, ErrQueueFull)

		startQueue(t, q)
		require.NoError(t, q.Wait(context.Background()))
		require.NoError(t, q.Enqueue(context.Background(), "work", nil))
		require.NoError(t, q.Wait(context.Background()))
		assert.Equal(t, Stats{Succeeded: 3}, q.Stats())
	})

	t.Run("payload cannot be encoded", func(t *testing.T) {
		q := New(Config{Workers: 1, QueueSize: 10}, nil)
		q.Handle("work", func(ctx context.Context, _ json.RawMessage) error { return nil })
		err := q.Enqueue(context.Background(), "work", make(chan int))
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		q := New(Config{Workers: 1, QueueSize: 10}, nil)
		q.Handle("work", func(ctx context.Context, _ json.RawMessage) error { return nil })
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.True(t, errors.Is(q.Enqueue(ctx, "work", nil), context.Canceled))
	})
}

func TestQueue_RunStopsOnCancel(t *testing.T) {
	q := New(Config{Workers: 4, QueueSize: 10}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- q.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
