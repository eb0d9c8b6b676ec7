package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lawfirm-backend/internal/domains/faq/model"
	"lawfirm-backend/internal/shared/query"
)

type postgresFaqRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresFaqRepository{pool: pool}
}

var faqColumns = []string{
	"id", "question", "answer", "category", "sort_order", "is_published", "created_at", "updated_at",
}

func scanFaq(row pgx.Row) (*model.Faq, error) {
	f := &model.Faq{}
	err := row.Scan(
		&f.ID,
		&f.Question,
		&f.Answer,
		&f.Category,
		&f.SortOrder,
		&f.IsPublished,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

func (r *postgresFaqRepository) Create(ctx context.Context, f *model.Faq) error {
	sql, args, err := query.PSQL.Insert("faqs").
		Columns(faqColumns...).
		Values(f.ID, f.Question, f.Answer, f.Category, f.SortOrder, f.IsPublished, f.CreatedAt, f.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}
	return nil
}

func (r *postgresFaqRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Faq, error) {
	sql, args, err := query.PSQL.Select(faqColumns...).From("faqs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	f, err := scanFaq(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrFaqNotFound
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return f, nil
}

func (r *postgresFaqRepository) Update(ctx context.Context, f *model.Faq) error {
	sql, args, err := query.PSQL.Update("faqs").
		SetMap(map[string]interface{}{
			"question":     f.Question,
			"answer":       f.Answer,
			"category":     f.Category,
			"sort_order":   f.SortOrder,
			"is_published": f.IsPublished,
			"updated_at":   f.UpdatedAt,
		}).
		Where(sq.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrFaqNotFound
	}
	return nil
}

func (r *postgresFaqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrFaqNotFound
	}
	return nil
}

func (r *postgresFaqRepository) List(ctx context.Context, publishedOnly bool) ([]*model.Faq, error) {
	b := query.PSQL.Select(faqColumns...).From("faqs").OrderBy("sort_order ASC", "id ASC")
	if publishedOnly {
		b = b.Where(sq.Eq{"is_published": true})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	faqs := make([]*model.Faq, 0)
	for rows.Next() {
		f, err := scanFaq(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (r *postgresFaqRepository) Counts(ctx context.Context) (*model.Counts, error) {
	c := &model.Counts{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_published) FROM faqs`,
	).Scan(&c.Total, &c.Published)
	if err != nil {
		return nil, fmt.Errorf("failed to count faqs: %w", err)
	}
	return c, nil
}
