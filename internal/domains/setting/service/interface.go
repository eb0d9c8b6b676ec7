package service

import (
	"context"

	"lawfirm-backend/internal/domains/setting/model"
)

type ServiceInterface interface {
	// Get returns the typed value of key, or def when the key does not exist
	Get(ctx context.Context, key string, def interface{}) interface{}

	// Set serializes value according to t and upserts it by key
	Set(ctx context.Context, key string, value interface{}, t model.Type, group string, description *string) (*model.Setting, error)

	// Values is the raw key -> value map handed to public pages
	Values(ctx context.Context) (map[string]string, error)

	// Grouped lists settings for the admin page
	Grouped(ctx context.Context) ([]model.Group, error)

	// BulkUpdate overwrites existing keys only and returns how many changed
	BulkUpdate(ctx context.Context, req model.BulkUpdateRequest) (int, error)
}
