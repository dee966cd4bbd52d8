package task

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	// ErrQueueClosed is returned by Enqueue after Close.
	ErrQueueClosed = errors.New("task queue is closed")

	// ErrQueueFull is returned when the buffer has no free slot. Enqueue never blocks.
	ErrQueueFull = errors.New("task queue is full")
)

// TaskQueue is a fixed-capacity buffer of pending tasks shared by one or more
// producers and the workers of a WorkerPool.
type TaskQueue struct {
	// mu serializes Enqueue and Close so that a send never races the close.
	mu     sync.Mutex
	closed bool
	ch     chan Task
	log    *slog.Logger
}

// NewTaskQueue creates a queue that holds up to capacity tasks. The batch
// command sizes it to the number of inputs so every task fits up front.
func NewTaskQueue(capacity int, logger *slog.Logger) *TaskQueue {
	return &TaskQueue{
		ch:  make(chan Task, max(capacity, 0)),
		log: logger.With("component", "task_queue"),
	}
}

// Enqueue adds task without blocking.
func (q *TaskQueue) Enqueue(task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ch <- task:
	default:
		return fmt.Errorf("%w: %d of %d slots used", ErrQueueFull, len(q.ch), cap(q.ch))
	}

	q.log.Debug("README task queued",
		"task_id", task.ID(),
		"task_type", task.Type(),
		"pending", len(q.ch))
	return nil
}

// Close marks the queue as complete. Workers drain what is buffered and then
// exit. Calling Close more than once is safe.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
	q.log.Debug("task queue closed", "pending", len(q.ch))
}

// Len reports how many tasks are waiting for a worker.
func (q *TaskQueue) Len() int {
	return len(q.ch)
}

// GetChannel implements TaskQueueReader.
func (q *TaskQueue) GetChannel() <-chan Task {
	return q.ch
}
