package main

import (
	"github.com/hibiken/asynq"

	articleJob "lawfirm-backend/internal/domains/article/job"
	"lawfirm-backend/internal/infrastructure/queue"
	queueHandlers "lawfirm-backend/internal/infrastructure/queue/handlers"
	"lawfirm-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Storage
	deleteBlob *queueHandlers.DeleteBlobHandler

	// Blog
	refreshBlogCache *articleJob.RefreshCacheHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		deleteBlob:       queueHandlers.NewDeleteBlobHandler(c.Blobs),
		refreshBlogCache: articleJob.NewRefreshCacheHandler(c.ArticleService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeDeleteBlob, h.deleteBlob.ProcessTask)
	mux.HandleFunc(queue.TypeRefreshBlogCache, h.refreshBlogCache.ProcessTask)
}
