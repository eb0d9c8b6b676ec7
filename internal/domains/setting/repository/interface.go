package repository

import (
	"context"

	"lawfirm-backend/internal/domains/setting/model"
)

type Repository interface {
	// Get returns model.ErrSettingNotFound for an unknown key
	Get(ctx context.Context, key string) (*model.Setting, error)

	// All lists every setting ordered by group then key
	All(ctx context.Context) ([]*model.Setting, error)

	// Upsert inserts or replaces the row with the same key
	Upsert(ctx context.Context, s *model.Setting) error

	// UpdateValues overwrites the value of existing keys in one transaction.
	// Unknown keys are skipped; the number of updated rows is returned.
	UpdateValues(ctx context.Context, values map[string]string) (int, error)
}
