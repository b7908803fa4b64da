package queue

import "errors"

var (
	// ErrQueueFull is returned when the queue is at capacity.
	ErrQueueFull = errors.New("share queue is full")
	// ErrQueueClosed is returned when trying to use a closed queue.
	ErrQueueClosed = errors.New("share queue is closed")
	// ErrUnknownShareOp marks a job whose op is neither grant nor revoke.
	// Such jobs are dropped without retry.
	ErrUnknownShareOp = errors.New("unknown share op")
)
