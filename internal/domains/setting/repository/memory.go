package repository

import (
	"context"
	"sort"
	"time"

	"lawfirm-backend/internal/domains/setting/model"
	"lawfirm-backend/internal/infrastructure/memstore"
)

type memorySettingRepository struct {
	rows *memstore.Table[string, model.Setting]
}

func NewMemoryRepository() Repository {
	return &memorySettingRepository{
		rows: memstore.NewTable(func(s model.Setting) string { return s.Key }, nil),
	}
}

func (r *memorySettingRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	s, ok := r.rows.Get(key)
	if !ok {
		return nil, model.ErrSettingNotFound
	}
	return &s, nil
}

func (r *memorySettingRepository) All(ctx context.Context) ([]*model.Setting, error) {
	rows := r.rows.All()
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Group != rows[j].Group {
			return rows[i].Group < rows[j].Group
		}
		return rows[i].Key < rows[j].Key
	})

	out := make([]*model.Setting, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *memorySettingRepository) Upsert(ctx context.Context, s *model.Setting) error {
	if existing, ok := r.rows.Get(s.Key); ok {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
	}
	r.rows.Put(*s)
	return nil
}

func (r *memorySettingRepository) UpdateValues(ctx context.Context, values map[string]string) (int, error) {
	now := time.Now()
	updated := 0
	for key, value := range values {
		_, ok := r.rows.Update(key, func(s *model.Setting) bool {
			s.Value = value
			s.UpdatedAt = now
			return true
		})
		if ok {
			updated++
		}
	}
	return updated, nil
}
