// Package queue provides the background queue that keeps opportunity shares
// in sync with team membership.
package queue

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShareOp is the kind of share change a job applies.
type ShareOp string

const (
	// OpGrant creates or updates a team share.
	OpGrant ShareOp = "grant"
	// OpRevoke removes a team share.
	OpRevoke ShareOp = "revoke"
)

// ShareJob is a pending share sync for one user on one opportunity.
// Op and AccessLevel record the membership change that triggered it.
type ShareJob struct {
	OpportunityID primitive.ObjectID
	UserID        primitive.ObjectID
	AccessLevel   string
	Op            ShareOp
	RetryCount    int
}

// MemoryQueue is an in-memory queue of share jobs.
type MemoryQueue struct {
	jobs     chan ShareJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan ShareJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns error if queue is full or closed.
// The read lock is held for the whole send so Close cannot close the channel underneath it.
func (q *MemoryQueue) Enqueue(job ShareJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job from the queue, blocking until one is available.
// Returns error if context is cancelled or queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (ShareJob, error) {
	q.mu.RLock()
	jobs := q.jobs
	q.mu.RUnlock()

	select {
	case <-ctx.Done():
		return ShareJob{}, ctx.Err()
	case job, ok := <-jobs:
		if !ok {
			return ShareJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Reset resets the queue to a fresh state. Used between API test cases.
func (q *MemoryQueue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = false
	q.jobs = make(chan ShareJob, q.capacity)
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
