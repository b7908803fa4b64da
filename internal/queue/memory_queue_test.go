package queue

import (
	"context"
	"testing"
	"time"

	"opportunity-team/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func grantJob() ShareJob {
	return ShareJob{
		OpportunityID: primitive.NewObjectID(),
		UserID:        primitive.NewObjectID(),
		AccessLevel:   models.AccessEdit,
		Op:            OpGrant,
	}
}

func TestNewMemoryQueue(t *testing.T) {
	t.Run("creates queue with specified capacity", func(t *testing.T) {
		q := NewMemoryQueue(10)

		assert.NotNil(t, q)
		assert.Equal(t, 10, q.Capacity())
		assert.Equal(t, 0, q.Len())
	})
}

func TestMemoryQueue_Enqueue(t *testing.T) {
	t.Run("successfully enqueues job", func(t *testing.T) {
		q := NewMemoryQueue(10)

		err := q.Enqueue(grantJob())

		assert.NoError(t, err)
		assert.Equal(t, 1, q.Len())
	})

	t.Run("returns error when queue is full", func(t *testing.T) {
		q := NewMemoryQueue(2)

		_ = q.Enqueue(grantJob())
		_ = q.Enqueue(grantJob())

		err := q.Enqueue(grantJob())

		assert.Equal(t, ErrQueueFull, err)
		assert.Equal(t, 2, q.Len())
	})

	t.Run("returns error when queue is closed", func(t *testing.T) {
		q := NewMemoryQueue(10)
		q.Close()

		err := q.Enqueue(grantJob())

		assert.Equal(t, ErrQueueClosed, err)
	})
}

func TestMemoryQueue_Dequeue(t *testing.T) {
	t.Run("dequeues in FIFO order", func(t *testing.T) {
		q := NewMemoryQueue(10)
		first := grantJob()
		second := ShareJob{OpportunityID: first.OpportunityID, UserID: primitive.NewObjectID(), Op: OpRevoke}
		_ = q.Enqueue(first)
		_ = q.Enqueue(second)

		ctx := context.Background()
		r1, err := q.Dequeue(ctx)
		require.NoError(t, err)
		r2, err := q.Dequeue(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, r1)
		assert.Equal(t, OpRevoke, r2.Op)
		assert.Equal(t, second.UserID, r2.UserID)
	})

	t.Run("returns error when context is cancelled", func(t *testing.T) {
		q := NewMemoryQueue(10)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := q.Dequeue(ctx)

		assert.Equal(t, context.Canceled, err)
	})

	t.Run("returns error when queue is closed while waiting", func(t *testing.T) {
		q := NewMemoryQueue(10)

		go func() {
			time.Sleep(50 * time.Millisecond)
			q.Close()
		}()

		_, err := q.Dequeue(context.Background())

		assert.Equal(t, ErrQueueClosed, err)
	})

	t.Run("blocks until job available", func(t *testing.T) {
		q := NewMemoryQueue(10)
		expected := grantJob()

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = q.Enqueue(expected)
		}()

		job, err := q.Dequeue(context.Background())

		require.NoError(t, err)
		assert.Equal(t, expected.UserID, job.UserID)
	})
}

func TestMemoryQueue_Close(t *testing.T) {
	t.Run("close is idempotent", func(t *testing.T) {
		q := NewMemoryQueue(10)

		q.Close()
		q.Close()

		assert.Equal(t, ErrQueueClosed, q.Enqueue(grantJob()))
	})

	t.Run("allows draining existing jobs after close", func(t *testing.T) {
		q := NewMemoryQueue(10)
		job := grantJob()
		_ = q.Enqueue(job)

		q.Close()

		ctx := context.Background()
		result, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, job.UserID, result.UserID)

		_, err = q.Dequeue(ctx)
		assert.Equal(t, ErrQueueClosed, err)
	})
}

func TestMemoryQueue_Reset(t *testing.T) {
	t.Run("resets closed queue to usable state", func(t *testing.T) {
		q := NewMemoryQueue(5)
		_ = q.Enqueue(grantJob())
		q.Close()

		q.Reset()

		assert.Equal(t, 0, q.Len())
		assert.Equal(t, 5, q.Capacity())
		assert.NoError(t, q.Enqueue(grantJob()))
	})
}

func TestMemoryQueue_Concurrency(t *testing.T) {
	t.Run("handles concurrent enqueue and dequeue", func(t *testing.T) {
		q := NewMemoryQueue(100)
		ctx := context.Background()
		jobCount := 50

		results := make(chan ShareJob, jobCount)
		for i := 0; i < 5; i++ {
			go func() {
				for {
					job, err := q.Dequeue(ctx)
					if err != nil {
						return
					}
					results <- job
				}
			}()
		}

		for i := 0; i < jobCount; i++ {
			go func() {
				_ = q.Enqueue(grantJob())
			}()
		}

		receivedCount := 0
		timeout := time.After(2 * time.Second)
		for receivedCount < jobCount {
			select {
			case <-results:
				receivedCount++
			case <-timeout:
				t.Fatalf("Timed out waiting for jobs, received %d/%d", receivedCount, jobCount)
			}
		}

		q.Close()
		assert.Equal(t, jobCount, receivedCount)
	})
}
