package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"scheduler-api/core/logger"

	"github.com/hibiken/asynq"
)

const (
	DefaultQueue   = "default"
	DefaultRetry   = 3
	DefaultTimeout = 30 * time.Second
)

// Publisher enqueues background tasks.
type Publisher interface {
	Publish(ctx context.Context, taskType string, payload any) error
}

type Client struct {
	client *asynq.Client
}

func NewClient(opt asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(opt)}
}

// NewTask encodes payload as JSON with the default retry policy.
func NewTask(taskType string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", taskType, err)
	}
	return asynq.NewTask(
		taskType,
		data,
		asynq.MaxRetry(DefaultRetry),
		asynq.Queue(DefaultQueue),
		asynq.Timeout(DefaultTimeout),
	), nil
}

func (c *Client) Publish(ctx context.Context, taskType string, payload any) error {
	task, err := NewTask(taskType, payload)
	if err != nil {
		return err
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}

	logger.FromContext(ctx).Debug().
		Str("task_id", info.ID).
		Str("type", taskType).
		Msg("Queue:Publish")
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// NopPublisher drops every task. Used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Decode unmarshals a task payload into dest.
func Decode(t *asynq.Task, dest any) error {
	if err := json.Unmarshal(t.Payload(), dest); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", t.Type(), err)
	}
	return nil
}
