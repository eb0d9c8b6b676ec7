package queue

// Task types
const (
	TypeDeleteBlob       = "storage:delete_blob"
	TypeRefreshBlogCache = "blog:refresh_cache"
)

// Queues, by priority
const (
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)

type DeleteBlobPayload struct {
	Key string `json:"key"`
}

type RefreshBlogCachePayload struct{}
