package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"lawfirm-backend/internal/domains/article/model"
	"lawfirm-backend/internal/shared/query"
)

type postgresArticleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresArticleRepository{pool: pool}
}

var articleColumns = []string{
	"id", "title", "slug", "excerpt", "content", "featured_image",
	"category", "tags", "status", "is_featured",
	"meta_title", "meta_description", "read_time", "published_at",
	"views", "created_at", "updated_at",
}

var articleFilterColumns = query.Columns{
	Status:   "status",
	Category: "category",
	Search:   []string{"title", "content", "excerpt"},
}

func scanArticle(row pgx.Row) (*model.Article, error) {
	a := &model.Article{}
	var tags []string
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.Excerpt,
		&a.Content,
		&a.FeaturedImage,
		&a.Category,
		pq.Array(&tags),
		&a.Status,
		&a.IsFeatured,
		&a.MetaTitle,
		&a.MetaDescription,
		&a.ReadTime,
		&a.PublishedAt,
		&a.Views,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Tags = tags
	return a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// =====================================================
// CRUD
// =====================================================

func (r *postgresArticleRepository) Create(ctx context.Context, a *model.Article) error {
	stmt := `
		INSERT INTO articles (
			id, title, slug, excerpt, content, featured_image,
			category, tags, status, is_featured,
			meta_title, meta_description, read_time, published_at,
			views, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.pool.Exec(ctx, stmt,
		a.ID,
		a.Title,
		a.Slug,
		a.Excerpt,
		a.Content,
		a.FeaturedImage,
		a.Category,
		pq.Array(a.Tags),
		a.Status,
		a.IsFeatured,
		a.MetaTitle,
		a.MetaDescription,
		a.ReadTime,
		a.PublishedAt,
		a.Views,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (r *postgresArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *postgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	return r.getOne(ctx, sq.Eq{"slug": slug})
}

func (r *postgresArticleRepository) getOne(ctx context.Context, where sq.Eq) (*model.Article, error) {
	sql, args, err := query.PSQL.Select(articleColumns...).From("articles").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	a, err := scanArticle(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return a, nil
}

func (r *postgresArticleRepository) Update(ctx context.Context, a *model.Article) error {
	stmt := `
		UPDATE articles SET
			title = $2, slug = $3, excerpt = $4, content = $5, featured_image = $6,
			category = $7, tags = $8, status = $9, is_featured = $10,
			meta_title = $11, meta_description = $12, read_time = $13, published_at = $14,
			updated_at = $15
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, stmt,
		a.ID,
		a.Title,
		a.Slug,
		a.Excerpt,
		a.Content,
		a.FeaturedImage,
		a.Category,
		pq.Array(a.Tags),
		a.Status,
		a.IsFeatured,
		a.MetaTitle,
		a.MetaDescription,
		a.ReadTime,
		a.PublishedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *postgresArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *postgresArticleRepository) SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`,
		slug, exclude,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// =====================================================
// LISTING
// =====================================================

func applyScopes(b sq.SelectBuilder, p ListParams) sq.SelectBuilder {
	b = query.Where(b, p.Filter, articleFilterColumns)
	if p.LiveAt != nil {
		b = b.Where(sq.Eq{"status": model.StatusPublished}).
			Where(sq.LtOrEq{"published_at": *p.LiveAt})
	}
	if p.FeaturedOnly {
		b = b.Where(sq.Eq{"is_featured": true})
	}
	if p.ExcludeID != uuid.Nil {
		b = b.Where(sq.NotEq{"id": p.ExcludeID})
	}
	return b
}

func (r *postgresArticleRepository) List(ctx context.Context, p ListParams) ([]*model.Article, int, error) {
	countSQL, countArgs, err := applyScopes(query.PSQL.Select("COUNT(*)").From("articles"), p).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	b := applyScopes(query.PSQL.Select(articleColumns...).From("articles"), p)
	switch p.Order {
	case OrderPublished:
		b = b.OrderBy("published_at DESC NULLS LAST", "id DESC")
	default:
		b = b.OrderBy("created_at DESC", "id DESC")
	}
	b = query.Page(b, p.Page, p.PerPage)

	listSQL, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*model.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *postgresArticleRepository) Stats(ctx context.Context) (*model.Stats, error) {
	stmt := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'published'),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE is_featured)
		FROM articles
	`

	s := &model.Stats{}
	if err := r.pool.QueryRow(ctx, stmt).Scan(&s.Total, &s.Published, &s.Draft, &s.Featured); err != nil {
		return nil, fmt.Errorf("failed to get article stats: %w", err)
	}
	return s, nil
}

func (r *postgresArticleRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	var views int64
	err := r.pool.QueryRow(ctx,
		`UPDATE articles SET views = views + 1 WHERE id = $1 RETURNING views`, id,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrArticleNotFound
		}
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return views, nil
}
