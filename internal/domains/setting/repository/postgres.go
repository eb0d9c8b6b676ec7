package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lawfirm-backend/internal/domains/setting/model"
	"lawfirm-backend/pkg/database"
)

type postgresSettingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresSettingRepository{pool: pool}
}

const settingColumns = `id, key, value, type, group_name, description, created_at, updated_at`

func scanSetting(row pgx.Row) (*model.Setting, error) {
	s := &model.Setting{}
	err := row.Scan(
		&s.ID,
		&s.Key,
		&s.Value,
		&s.Type,
		&s.Group,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

func (r *postgresSettingRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	query := `SELECT ` + settingColumns + ` FROM settings WHERE key = $1`

	s, err := scanSetting(r.pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return s, nil
}

func (r *postgresSettingRepository) All(ctx context.Context) ([]*model.Setting, error) {
	query := `SELECT ` + settingColumns + ` FROM settings ORDER BY group_name, key`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	settings := make([]*model.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *postgresSettingRepository) Upsert(ctx context.Context, s *model.Setting) error {
	query := `
		INSERT INTO settings (id, key, value, type, group_name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (key) DO UPDATE SET
			value       = EXCLUDED.value,
			type        = EXCLUDED.type,
			group_name  = EXCLUDED.group_name,
			description = EXCLUDED.description,
			updated_at  = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		s.ID,
		s.Key,
		s.Value,
		s.Type,
		s.Group,
		s.Description,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func (r *postgresSettingRepository) UpdateValues(ctx context.Context, values map[string]string) (int, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		now := time.Now()
		updated := 0
		for key, value := range values {
			tag, err := tx.Exec(ctx,
				`UPDATE settings SET value = $1, updated_at = $2 WHERE key = $3`,
				value, now, key,
			)
			if err != nil {
				return 0, fmt.Errorf("failed to update setting %q: %w", key, err)
			}
			updated += int(tag.RowsAffected())
		}
		return updated, nil
	})
}
