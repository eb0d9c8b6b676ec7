package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Client enqueues background work for cmd/worker
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db}),
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// ScheduleDelete implements storage.Cleaner. The blob is removed a little later
// so a page rendered just before the swap can still load it.
func (c *Client) ScheduleDelete(ctx context.Context, key string) error {
	payload, err := json.Marshal(DeleteBlobPayload{Key: key})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx,
		asynq.NewTask(TypeDeleteBlob, payload),
		asynq.Queue(QueueMaintenance),
		asynq.MaxRetry(5),
		asynq.ProcessIn(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeDeleteBlob, err)
	}

	log.Debug().Str("task_id", info.ID).Str("key", key).Msg("[QUEUE] blob delete scheduled")
	return nil
}
