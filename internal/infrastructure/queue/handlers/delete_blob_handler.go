package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/infrastructure/queue"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/internal/metrics"
)

// DeleteBlobHandler removes a blob that was replaced or whose row was deleted
type DeleteBlobHandler struct {
	blobs storage.BlobStore
}

func NewDeleteBlobHandler(blobs storage.BlobStore) *DeleteBlobHandler {
	return &DeleteBlobHandler{blobs: blobs}
}

func (h *DeleteBlobHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload queue.DeleteBlobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal DeleteBlob payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	if payload.Key == "" {
		return nil
	}

	err := h.blobs.Delete(ctx, payload.Key)
	metrics.BlobOperations.WithLabelValues("delete", metrics.Result(err)).Inc()
	if err != nil {
		log.Error().Err(err).Str("key", payload.Key).Msg("Failed to delete blob")
		return fmt.Errorf("delete blob: %w", err)
	}

	log.Info().Str("key", payload.Key).Msg("Blob deleted")
	return nil
}
