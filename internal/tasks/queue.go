// Package tasks submits work to the account-management task queue and reads
// back results. The queue workers live outside this service.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ocf/api/pkg/logger"
)

const (
	_queueKey       = "ocfapi:tasks"
	_resultKeyFmt   = "ocfapi:result:%s"
	_resultTTL      = time.Hour
	_pollInterval   = 200 * time.Millisecond
	_defaultTimeout = 5 * time.Second
)

// Task result states, mirroring the account creation worker's responses.
const (
	StatePending  = "PENDING"
	StateCreated  = "CREATED"
	StateFlagged  = "FLAGGED"
	StateRejected = "REJECTED"
)

// ErrResultTimeout is returned when a task does not produce a result within
// the caller's wait budget. The task keeps running; only the wait stops.
var ErrResultTimeout = errors.New("timed out waiting for task result")

// Result is the worker's answer for one task.
type Result struct {
	State   string   `json:"state"`
	Errors  []string `json:"errors,omitempty"`
	Message string   `json:"message,omitempty"`
}

type envelope struct {
	ID      string          `json:"id"`
	Task    string          `json:"task"`
	Payload json.RawMessage `json:"payload"`
}

// Queue is a Redis-backed task queue client.
type Queue struct {
	client *redis.Client
	log    logger.Interface
}

// New -.
func New(client *redis.Client, log logger.Interface) *Queue {
	return &Queue{client: client, log: log}
}

// Submit enqueues a task and returns its id.
func (q *Queue) Submit(ctx context.Context, task string, payload interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	env := envelope{
		ID:      uuid.New().String(),
		Task:    task,
		Payload: raw,
	}

	encoded, err := json.Marshal(env)
	if err != nil {
		return "", err
	}

	if err := q.client.LPush(ctx, _queueKey, encoded).Err(); err != nil {
		return "", fmt.Errorf("tasks - Submit - LPush: %w", err)
	}

	return env.ID, nil
}

// Result returns the task's result, or nil while it is still pending.
func (q *Queue) Result(ctx context.Context, taskID string) (*Result, error) {
	raw, err := q.client.Get(ctx, fmt.Sprintf(_resultKeyFmt, taskID)).Bytes()

	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("tasks - Result - Get: %w", err)
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("tasks - Result - Unmarshal: %w", err)
	}

	return &res, nil
}

// Wait polls for a result, bounded by timeout (the default when zero). On
// timeout the caller gets ErrResultTimeout rather than blocking forever.
func (q *Queue) Wait(ctx context.Context, taskID string, timeout time.Duration) (*Result, error) {
	if timeout <= 0 {
		timeout = _defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(_pollInterval)
	defer ticker.Stop()

	for {
		res, err := q.Result(ctx, taskID)
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		if res != nil {
			return res, nil
		}

		select {
		case <-ctx.Done():
			return nil, ErrResultTimeout
		case <-ticker.C:
		}
	}
}

// SetResult records a task result. Used by workers and tests.
func (q *Queue) SetResult(ctx context.Context, taskID string, res Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}

	return q.client.Set(ctx, fmt.Sprintf(_resultKeyFmt, taskID), raw, _resultTTL).Err()
}
