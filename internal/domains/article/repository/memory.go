package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"lawfirm-backend/internal/domains/article/model"
	"lawfirm-backend/internal/infrastructure/memstore"
	"lawfirm-backend/internal/shared/query"
)

type memoryArticleRepository struct {
	// writes serializes slug checks with the write that depends on them
	writes sync.Mutex
	rows   *memstore.Table[uuid.UUID, model.Article]
}

func NewMemoryRepository() Repository {
	return &memoryArticleRepository{
		rows: memstore.NewTable(func(a model.Article) uuid.UUID { return a.ID }, model.Article.Clone),
	}
}

func (r *memoryArticleRepository) slugTaken(slug string, exclude uuid.UUID) bool {
	_, taken := r.rows.Find(func(a model.Article) bool { return a.Slug == slug && a.ID != exclude })
	return taken
}

func (r *memoryArticleRepository) Create(ctx context.Context, a *model.Article) error {
	r.writes.Lock()
	defer r.writes.Unlock()

	if r.slugTaken(a.Slug, a.ID) {
		return model.ErrSlugTaken
	}
	r.rows.Insert(*a)
	return nil
}

func (r *memoryArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	a, ok := r.rows.Get(id)
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	return &a, nil
}

func (r *memoryArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	a, ok := r.rows.Find(func(a model.Article) bool { return a.Slug == slug })
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	return &a, nil
}

func (r *memoryArticleRepository) Update(ctx context.Context, a *model.Article) error {
	r.writes.Lock()
	defer r.writes.Unlock()

	if r.slugTaken(a.Slug, a.ID) {
		return model.ErrSlugTaken
	}
	_, ok := r.rows.Update(a.ID, func(stored *model.Article) bool {
		views, created := stored.Views, stored.CreatedAt
		*stored = a.Clone()
		stored.Views, stored.CreatedAt = views, created
		return true
	})
	if !ok {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *memoryArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.rows.Delete(id) {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *memoryArticleRepository) SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	return r.slugTaken(slug, exclude), nil
}

func (r *memoryArticleRepository) List(ctx context.Context, p ListParams) ([]*model.Article, int, error) {
	var scopes []query.Predicate[model.Article]
	if p.LiveAt != nil {
		scopes = append(scopes, model.Published(*p.LiveAt))
	}
	if p.FeaturedOnly {
		scopes = append(scopes, model.Featured)
	}
	if p.ExcludeID != uuid.Nil {
		scopes = append(scopes, model.Excluding(p.ExcludeID))
	}

	spec := model.AdminSpec
	if p.Order == OrderPublished {
		spec = model.BlogSpec
	}

	matched := query.Apply(r.rows.All(), p.Filter, spec, scopes...)
	page := query.Paginate(matched, p.Page, p.PerPage)

	out := make([]*model.Article, len(page.Items))
	for i := range page.Items {
		out[i] = &page.Items[i]
	}
	return out, len(matched), nil
}

func (r *memoryArticleRepository) Stats(ctx context.Context) (*model.Stats, error) {
	s := model.ComputeStats(r.rows.All())
	return &s, nil
}

func (r *memoryArticleRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	a, ok := r.rows.Update(id, func(a *model.Article) bool {
		a.Views++
		return true
	})
	if !ok {
		return 0, model.ErrArticleNotFound
	}
	return a.Views, nil
}
