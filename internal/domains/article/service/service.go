package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/article/model"
	"lawfirm-backend/internal/domains/article/repository"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/internal/metrics"
	"lawfirm-backend/internal/shared/content"
	"lawfirm-backend/internal/shared/query"
	"lawfirm-backend/pkg/cache"
)

const (
	imageDir = "articles"

	featuredLimit = 3
	recentLimit   = 5
	relatedLimit  = 3

	// slugAttempts bounds the numeric suffixes tried for a taken slug
	slugAttempts = 100
	fallbackSlug = "article"
	// width of the slug column
	maxSlugLen = 255
)

type Config struct {
	AdminPerPage int
	BlogPerPage  int
	CacheTTL     time.Duration
	// Clock is time.Now unless a test pins it
	Clock func() time.Time
}

type articleService struct {
	repo   repository.Repository
	images ImageStore
	cache  cache.Cache
	cfg    Config
}

func NewArticleService(repo repository.Repository, images ImageStore, c cache.Cache, cfg Config) ServiceInterface {
	if c == nil {
		c = cache.Nop{}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.AdminPerPage <= 0 {
		cfg.AdminPerPage = 15
	}
	if cfg.BlogPerPage <= 0 {
		cfg.BlogPerPage = 12
	}
	return &articleService{repo: repo, images: images, cache: c, cfg: cfg}
}

func (s *articleService) toResponse(a *model.Article) model.ArticleResponse {
	return model.ToResponse(*a, s.images.URL)
}

func (s *articleService) toResponses(list []*model.Article) []model.ArticleResponse {
	out := make([]model.ArticleResponse, len(list))
	for i, a := range list {
		out[i] = s.toResponse(a)
	}
	return out
}

// =====================================================
// ADMIN
// =====================================================

func (s *articleService) List(ctx context.Context, f query.Filter, page int) (*model.AdminListResponse, error) {
	f = f.Normalize()

	articles, total, err := s.repo.List(ctx, repository.ListParams{
		Filter:  f,
		Order:   repository.OrderCreated,
		Page:    page,
		PerPage: s.cfg.AdminPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	return &model.AdminListResponse{
		Articles:   query.NewPaginator(s.toResponses(articles), total, page, s.cfg.AdminPerPage),
		Filters:    f,
		Categories: model.Categories(),
		Stats:      *stats,
	}, nil
}

func (s *articleService) Get(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(a)
	return &resp, nil
}

func (s *articleService) find(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return a, nil
}

// validate runs the form rules and the image check together so the form
// shows every problem at once
func (s *articleService) validate(req *model.ArticleRequest, image *storage.Upload) error {
	req.Normalize()

	errs := validation.Errors{}
	if err := req.Validate(); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}
	if err := s.images.Validate(image); err != nil {
		errs["featured_image"] = err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// uniqueSlug derives the slug from title and appends -2, -3, ... while it
// collides with another article
func (s *articleService) uniqueSlug(ctx context.Context, title string, exclude uuid.UUID) (string, error) {
	base := clipSlug(content.Slugify(title), maxSlugLen)
	if base == "" {
		base = fallbackSlug
	}

	candidate := base
	for i := 2; i <= slugAttempts+1; i++ {
		taken, err := s.repo.SlugExists(ctx, candidate, exclude)
		if err != nil {
			return "", err
		}
		if !taken {
			if candidate != base {
				log.Info().Str("slug", candidate).Str("base", base).Msg("[ARTICLE] slug collision resolved")
			}
			return candidate, nil
		}
		suffix := fmt.Sprintf("-%d", i)
		candidate = clipSlug(base, maxSlugLen-len(suffix)) + suffix
	}
	return "", model.NewSlugTakenError(base)
}

// clipSlug cuts an ASCII slug to n bytes without leaving a trailing hyphen
func clipSlug(slug string, n int) string {
	if len(slug) <= n {
		return slug
	}
	return strings.TrimRight(slug[:n], "-")
}

func (s *articleService) Create(ctx context.Context, req model.ArticleRequest, image *storage.Upload) (*model.ArticleResponse, error) {
	if err := s.validate(&req, image); err != nil {
		return nil, err
	}

	id := uuid.New()
	slug, err := s.uniqueSlug(ctx, req.Title, id)
	if err != nil {
		return nil, err
	}

	now := s.cfg.Clock()
	article := &model.Article{
		ID:              id,
		Title:           req.Title,
		Slug:            slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Category:        req.Category,
		Tags:            req.Tags,
		Status:          req.Status,
		IsFeatured:      req.IsFeatured,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Status == model.StatusPublished {
		article.PublishedAt = &now
	}

	if !image.Empty() {
		key, err := s.images.Save(ctx, imageDir, image)
		if err != nil {
			return nil, fmt.Errorf("failed to store featured image: %w", err)
		}
		article.FeaturedImage = &key
	}

	if err := s.repo.Create(ctx, article); err != nil {
		if article.FeaturedImage != nil {
			s.images.Release(ctx, *article.FeaturedImage)
		}
		if errors.Is(err, model.ErrSlugTaken) {
			return nil, model.NewSlugTakenError(slug)
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.invalidate(ctx)
	resp := s.toResponse(article)
	return &resp, nil
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req model.ArticleRequest, image *storage.Upload) (*model.ArticleResponse, error) {
	article, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(&req, image); err != nil {
		return nil, err
	}

	if req.Title != article.Title {
		slug, err := s.uniqueSlug(ctx, req.Title, article.ID)
		if err != nil {
			return nil, err
		}
		article.Slug = slug
	}

	now := s.cfg.Clock()
	// published_at is stamped only on the move into published
	if req.Status == model.StatusPublished && article.Status != model.StatusPublished {
		article.PublishedAt = &now
	}

	article.Title = req.Title
	article.Excerpt = req.Excerpt
	article.Content = req.Content
	article.Category = req.Category
	article.Tags = req.Tags
	article.Status = req.Status
	article.IsFeatured = req.IsFeatured
	article.MetaTitle = req.MetaTitle
	article.MetaDescription = req.MetaDescription
	article.UpdatedAt = now

	// New image first, row second, old image last
	var oldImage string
	if !image.Empty() {
		key, err := s.images.Save(ctx, imageDir, image)
		if err != nil {
			return nil, fmt.Errorf("failed to store featured image: %w", err)
		}
		if article.FeaturedImage != nil {
			oldImage = *article.FeaturedImage
		}
		article.FeaturedImage = &key
	}

	if err := s.repo.Update(ctx, article); err != nil {
		if !image.Empty() {
			s.images.Release(ctx, *article.FeaturedImage)
		}
		switch {
		case errors.Is(err, model.ErrArticleNotFound):
			return nil, model.NewArticleNotFoundError()
		case errors.Is(err, model.ErrSlugTaken):
			return nil, model.NewSlugTakenError(article.Slug)
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	s.images.Release(ctx, oldImage)

	s.invalidate(ctx)
	resp := s.toResponse(article)
	return &resp, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	article, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return model.NewArticleNotFoundError()
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if article.FeaturedImage != nil {
		s.images.Release(ctx, *article.FeaturedImage)
	}

	s.invalidate(ctx)
	return nil
}

// =====================================================
// PUBLIC BLOG
// =====================================================

// live lists published articles newest first
func (s *articleService) live(ctx context.Context, p repository.ListParams) ([]*model.Article, int, error) {
	now := s.cfg.Clock()
	p.LiveAt = &now
	p.Order = repository.OrderPublished
	return s.repo.List(ctx, p)
}

func (s *articleService) BlogIndex(ctx context.Context, f query.Filter, page int) (*model.BlogIndexResponse, error) {
	// the blog never filters on status, only live articles are listed
	f = query.Filter{Category: f.Category, Search: f.Search}.Normalize()

	var resp model.BlogIndexResponse
	if s.cached(ctx, indexKey(f, page), &resp) {
		return &resp, nil
	}

	articles, total, err := s.live(ctx, repository.ListParams{Filter: f, Page: page, PerPage: s.cfg.BlogPerPage})
	if err != nil {
		return nil, fmt.Errorf("failed to list blog articles: %w", err)
	}
	featured, _, err := s.live(ctx, repository.ListParams{FeaturedOnly: true, Page: 1, PerPage: featuredLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to list featured articles: %w", err)
	}
	recent, err := s.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	resp = model.BlogIndexResponse{
		Articles:         query.NewPaginator(s.toResponses(articles), total, page, s.cfg.BlogPerPage),
		FeaturedArticles: s.toResponses(featured),
		RecentArticles:   recent,
		Categories:       model.Categories(),
		Filters:          f,
	}
	s.store(ctx, indexKey(f, page), resp)
	return &resp, nil
}

func (s *articleService) BlogCategory(ctx context.Context, category string, page int) (*model.BlogCategoryResponse, error) {
	name, ok := model.CategoryName(category)
	if !ok {
		return nil, model.NewUnknownCategoryError(category)
	}

	var resp model.BlogCategoryResponse
	if s.cached(ctx, categoryKey(category, page), &resp) {
		return &resp, nil
	}

	articles, total, err := s.live(ctx, repository.ListParams{
		Filter:  query.Filter{Category: category},
		Page:    page,
		PerPage: s.cfg.BlogPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list category articles: %w", err)
	}

	resp = model.BlogCategoryResponse{
		Articles:     query.NewPaginator(s.toResponses(articles), total, page, s.cfg.BlogPerPage),
		Category:     category,
		CategoryName: name,
		Categories:   model.Categories(),
	}
	s.store(ctx, categoryKey(category, page), resp)
	return &resp, nil
}

// BlogShow counts a view, so it is never served from cache
func (s *articleService) BlogShow(ctx context.Context, slug string) (*model.BlogShowResponse, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if !article.IsPublished(s.cfg.Clock()) {
		return nil, model.NewArticleNotFoundError()
	}

	views, err := s.repo.IncrementViews(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count view: %w", err)
	}
	article.Views = views
	metrics.ArticleViews.Inc()

	related, _, err := s.live(ctx, repository.ListParams{
		Filter:    query.Filter{Category: article.Category},
		ExcludeID: article.ID,
		Page:      1,
		PerPage:   relatedLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list related articles: %w", err)
	}

	return &model.BlogShowResponse{
		Article:         s.toResponse(article),
		RelatedArticles: s.toResponses(related),
	}, nil
}

func (s *articleService) Recent(ctx context.Context, limit int) ([]model.ArticleResponse, error) {
	key := fmt.Sprintf("blog:recent:%d", limit)

	var resp []model.ArticleResponse
	if s.cached(ctx, key, &resp) {
		return resp, nil
	}

	articles, _, err := s.live(ctx, repository.ListParams{Page: 1, PerPage: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent articles: %w", err)
	}

	resp = s.toResponses(articles)
	s.store(ctx, key, resp)
	return resp, nil
}

func (s *articleService) RefreshCache(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, cachePattern); err != nil {
		return fmt.Errorf("failed to drop blog cache: %w", err)
	}
	return nil
}
