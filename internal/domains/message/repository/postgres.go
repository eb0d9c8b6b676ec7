package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/shared/query"
)

// ===== Shared table access =====

// messageTable holds what differs between the contacts and inquiries tables
type messageTable[T any] struct {
	pool     *pgxpool.Pool
	name     string
	columns  []string
	filter   query.Columns
	scan     func(pgx.Row) (*T, error)
	values   func(*T) []interface{}
	notFound error
}

func (t *messageTable[T]) Create(ctx context.Context, m *T) error {
	sql, args, err := query.PSQL.Insert(t.name).Columns(t.columns...).Values(t.values(m)...).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}
	if _, err := t.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}
	return nil
}

func (t *messageTable[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	sql, args, err := query.PSQL.Select(t.columns...).From(t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	m, err := t.scan(t.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, t.notFound
		}
		return nil, fmt.Errorf("failed to get from %s: %w", t.name, err)
	}
	return m, nil
}

func (t *messageTable[T]) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := t.pool.Exec(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return t.notFound
	}
	return nil
}

func (t *messageTable[T]) List(ctx context.Context, p ListParams) ([]*T, int, error) {
	countSQL, countArgs, err := query.Where(query.PSQL.Select("COUNT(*)").From(t.name), p.Filter, t.filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := t.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", t.name, err)
	}

	b := query.Where(query.PSQL.Select(t.columns...).From(t.name), p.Filter, t.filter).
		OrderBy("created_at DESC", "id DESC")
	listSQL, args, err := query.Page(b, p.Page, p.PerPage).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := t.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		m, err := t.scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s row: %w", t.name, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (t *messageTable[T]) Stats(ctx context.Context) (*model.Stats, error) {
	stmt := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'unread'),
			COUNT(*) FILTER (WHERE status = 'read'),
			COUNT(*) FILTER (WHERE status = 'replied')
		FROM ` + t.name

	s := &model.Stats{}
	if err := t.pool.QueryRow(ctx, stmt).Scan(&s.Total, &s.Unread, &s.Read, &s.Replied); err != nil {
		return nil, fmt.Errorf("failed to count %s by status: %w", t.name, err)
	}
	return s, nil
}

func (t *messageTable[T]) MarkAsRead(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	stmt := `UPDATE ` + t.name + ` SET status = 'read', updated_at = $2 WHERE id = $1 AND status = 'unread'`

	tag, err := t.pool.Exec(ctx, stmt, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark %s row as read: %w", t.name, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *messageTable[T]) Reply(ctx context.Context, id uuid.UUID, reply string, at time.Time) error {
	stmt := `
		UPDATE ` + t.name + `
		SET status = 'replied', admin_reply = $2, replied_at = $3, updated_at = $3
		WHERE id = $1
	`

	tag, err := t.pool.Exec(ctx, stmt, id, reply, at)
	if err != nil {
		return fmt.Errorf("failed to reply to %s row: %w", t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return t.notFound
	}
	return nil
}

// ===== Contacts =====

func NewPostgresContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &messageTable[model.Contact]{
		pool: pool,
		name: "contacts",
		columns: []string{
			"id", "name", "email", "phone", "subject", "message",
			"status", "admin_reply", "replied_at", "created_at", "updated_at",
		},
		filter: query.Columns{
			Status: "status",
			Search: []string{"name", "email", "subject", "message"},
		},
		scan:     scanContact,
		values:   contactValues,
		notFound: model.ErrContactNotFound,
	}
}

func scanContact(row pgx.Row) (*model.Contact, error) {
	c := &model.Contact{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Subject,
		&c.Message,
		&c.Status,
		&c.AdminReply,
		&c.RepliedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func contactValues(c *model.Contact) []interface{} {
	return []interface{}{
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message,
		c.Status, c.AdminReply, c.RepliedAt, c.CreatedAt, c.UpdatedAt,
	}
}

// ===== Inquiries =====

func NewPostgresInquiryRepository(pool *pgxpool.Pool) InquiryRepository {
	return &messageTable[model.Inquiry]{
		pool: pool,
		name: "inquiries",
		columns: []string{
			"id", "name", "email", "message", "ip_address",
			"status", "admin_reply", "replied_at", "created_at", "updated_at",
		},
		filter: query.Columns{
			Status: "status",
			Search: []string{"name", "email", "message"},
		},
		scan:     scanInquiry,
		values:   inquiryValues,
		notFound: model.ErrInquiryNotFound,
	}
}

func scanInquiry(row pgx.Row) (*model.Inquiry, error) {
	i := &model.Inquiry{}
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Message,
		&i.IPAddress,
		&i.Status,
		&i.AdminReply,
		&i.RepliedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func inquiryValues(i *model.Inquiry) []interface{} {
	return []interface{}{
		i.ID, i.Name, i.Email, i.Message, i.IPAddress,
		i.Status, i.AdminReply, i.RepliedAt, i.CreatedAt, i.UpdatedAt,
	}
}
