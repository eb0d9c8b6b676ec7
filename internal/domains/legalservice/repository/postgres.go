package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/shared/query"
)

type postgresServiceRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresServiceRepository{pool: pool}
}

var serviceColumns = []string{
	"id", "title", "description", "features", "icon", "image_url",
	"sort_order", "is_active", "created_at", "updated_at",
}

func scanService(row pgx.Row) (*model.Service, error) {
	s := &model.Service{}
	var features []string
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		pq.Array(&features),
		&s.Icon,
		&s.ImageURL,
		&s.SortOrder,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Features = features
	return s, nil
}

func (r *postgresServiceRepository) Create(ctx context.Context, s *model.Service) error {
	stmt := `
		INSERT INTO services (
			id, title, description, features, icon, image_url,
			sort_order, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, stmt,
		s.ID,
		s.Title,
		s.Description,
		pq.Array(s.Features),
		s.Icon,
		s.ImageURL,
		s.SortOrder,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *postgresServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	sql, args, err := query.PSQL.Select(serviceColumns...).From("services").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	s, err := scanService(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return s, nil
}

func (r *postgresServiceRepository) Update(ctx context.Context, s *model.Service) error {
	stmt := `
		UPDATE services SET
			title = $2, description = $3, features = $4, icon = $5, image_url = $6,
			sort_order = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, stmt,
		s.ID,
		s.Title,
		s.Description,
		pq.Array(s.Features),
		s.Icon,
		s.ImageURL,
		s.SortOrder,
		s.IsActive,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrServiceNotFound
	}
	return nil
}

func (r *postgresServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrServiceNotFound
	}
	return nil
}

func (r *postgresServiceRepository) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	b := query.PSQL.Select(serviceColumns...).From("services").OrderBy("sort_order ASC", "id ASC")
	if activeOnly {
		b = b.Where(sq.Eq{"is_active": true})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := make([]*model.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *postgresServiceRepository) Counts(ctx context.Context) (*model.Counts, error) {
	c := &model.Counts{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM services`,
	).Scan(&c.Total, &c.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}
	return c, nil
}
