package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/config"
	infraCache "lawfirm-backend/internal/infrastructure/cache"
	"lawfirm-backend/internal/infrastructure/database"
	"lawfirm-backend/internal/infrastructure/queue"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/internal/metrics"
	"lawfirm-backend/pkg/cache"
	"lawfirm-backend/pkg/jwt"

	articleHandler "lawfirm-backend/internal/domains/article/handler"
	articleRepo "lawfirm-backend/internal/domains/article/repository"
	articleService "lawfirm-backend/internal/domains/article/service"
	faqHandler "lawfirm-backend/internal/domains/faq/handler"
	faqRepo "lawfirm-backend/internal/domains/faq/repository"
	faqService "lawfirm-backend/internal/domains/faq/service"
	legalHandler "lawfirm-backend/internal/domains/legalservice/handler"
	legalRepo "lawfirm-backend/internal/domains/legalservice/repository"
	legalService "lawfirm-backend/internal/domains/legalservice/service"
	messageHandler "lawfirm-backend/internal/domains/message/handler"
	messageRepo "lawfirm-backend/internal/domains/message/repository"
	messageService "lawfirm-backend/internal/domains/message/service"
	settingHandler "lawfirm-backend/internal/domains/setting/handler"
	settingRepo "lawfirm-backend/internal/domains/setting/repository"
	settingService "lawfirm-backend/internal/domains/setting/service"
	siteHandler "lawfirm-backend/internal/domains/site/handler"
	siteService "lawfirm-backend/internal/domains/site/service"
)

const (
	cachePrefix  = "lawfirm:"
	tokenIssuer  = "lawfirm-backend"
	poolInterval = 15 * time.Second
)

// Container holds every dependency of the application.
// Build order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB // nil with DB_DRIVER=memory
	Redis       *infraCache.RedisClient
	Cache       cache.Cache
	Blobs       storage.BlobStore
	Images      *storage.Images
	Queue       *queue.Client // nil when the queue is disabled
	JWTManager  *jwt.Manager
	poolMetrics *metrics.PoolStatsCollector

	// ========================================
	// REPOSITORIES
	// ========================================
	ArticleRepo articleRepo.Repository
	ServiceRepo legalRepo.Repository
	FaqRepo     faqRepo.Repository
	ContactRepo messageRepo.ContactRepository
	InquiryRepo messageRepo.InquiryRepository
	SettingRepo settingRepo.Repository

	// ========================================
	// SERVICES
	// ========================================
	ArticleService articleService.ServiceInterface
	LegalService   legalService.ServiceInterface
	FaqService     faqService.ServiceInterface
	ContactService messageService.ContactService
	InquiryService messageService.InquiryService
	SettingService settingService.ServiceInterface
	SiteService    siteService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	ArticleHandler *articleHandler.ArticleHandler
	ServiceHandler *legalHandler.ServiceHandler
	FaqHandler     *faqHandler.FaqHandler
	ContactHandler *messageHandler.ContactHandler
	InquiryHandler *messageHandler.InquiryHandler
	SettingHandler *settingHandler.SettingHandler
	SiteHandler    *siteHandler.SiteHandler
}

// NewContainer builds the whole dependency graph.
// A failure at any step aborts startup; Redis is the only optional piece.
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("Config loaded")

	if err := c.initDatabase(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initCache(ctx)
	if err := c.initStorage(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.JWTManager = jwt.NewManager(cfg.Admin.TokenSecret, tokenIssuer)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container initialized")
	return c, nil
}

// ========================================
// INFRASTRUCTURE
// ========================================

func (c *Container) initDatabase(ctx context.Context) error {
	if c.Config.Database.Driver == "memory" {
		log.Warn().Msg("Using in-memory store, data is lost on restart")
		return nil
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	c.poolMetrics = metrics.NewPoolStatsCollector(db.Pool)
	c.poolMetrics.Start(poolInterval)
	return nil
}

// initCache falls back to an in-process cache when Redis is disabled or down
func (c *Container) initCache(ctx context.Context) {
	cfg := c.Config.Redis
	if !cfg.Enabled {
		c.Cache = cache.NewMemory()
		return
	}

	client := infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)
	if err := client.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory cache")
		_ = client.Close()
		c.Cache = cache.NewMemory()
		return
	}
	c.Redis = client
	c.Cache = infraCache.NewRedisCache(client, cachePrefix)
}

func (c *Container) initStorage(ctx context.Context) error {
	blobs, err := storage.New(ctx, c.Config.Storage)
	if err != nil {
		return fmt.Errorf("failed to init blob storage: %w", err)
	}
	c.Blobs = blobs

	var cleaner storage.Cleaner
	if c.Config.Queue.Enabled {
		c.Queue = queue.NewClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		cleaner = c.Queue
	}
	c.Images = storage.NewImages(blobs, storage.NewImageProcessor(c.Config.Storage.MaxUpload), cleaner)
	return nil
}

// ========================================
// DOMAIN LAYERS
// ========================================

func (c *Container) initRepositories() {
	if c.DB == nil {
		c.ArticleRepo = articleRepo.NewMemoryRepository()
		c.ServiceRepo = legalRepo.NewMemoryRepository()
		c.FaqRepo = faqRepo.NewMemoryRepository()
		c.ContactRepo = messageRepo.NewMemoryContactRepository()
		c.InquiryRepo = messageRepo.NewMemoryInquiryRepository()
		c.SettingRepo = settingRepo.NewMemoryRepository()
		return
	}

	pool := c.pool()
	c.ArticleRepo = articleRepo.NewPostgresRepository(pool)
	c.ServiceRepo = legalRepo.NewPostgresRepository(pool)
	c.FaqRepo = faqRepo.NewPostgresRepository(pool)
	c.ContactRepo = messageRepo.NewPostgresContactRepository(pool)
	c.InquiryRepo = messageRepo.NewPostgresInquiryRepository(pool)
	c.SettingRepo = settingRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.Images, c.Cache, articleService.Config{
		AdminPerPage: cfg.Pagination.AdminPerPage,
		BlogPerPage:  cfg.Pagination.BlogPerPage,
		CacheTTL:     cfg.Cache.BlogTTL,
	})
	c.LegalService = legalService.NewLegalService(c.ServiceRepo, c.Images)
	c.FaqService = faqService.NewFaqService(c.FaqRepo)
	c.SettingService = settingService.NewSettingService(c.SettingRepo, c.Cache, cfg.Cache.SettingsTTL)

	inbox := messageService.Config{PerPage: cfg.Pagination.AdminPerPage}
	c.ContactService = messageService.NewContactService(c.ContactRepo, inbox)
	c.InquiryService = messageService.NewInquiryService(c.InquiryRepo, inbox)

	c.SiteService = siteService.NewSiteService(siteService.Deps{
		Articles:  c.ArticleService,
		Services:  c.LegalService,
		Faqs:      c.FaqService,
		Settings:  c.SettingService,
		Contacts:  c.ContactService,
		Inquiries: c.InquiryService,
	})
}

func (c *Container) initHandlers() {
	maxUpload := c.Config.Storage.MaxUpload

	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService, maxUpload)
	c.ServiceHandler = legalHandler.NewServiceHandler(c.LegalService, maxUpload)
	c.FaqHandler = faqHandler.NewFaqHandler(c.FaqService)
	c.ContactHandler = messageHandler.NewContactHandler(c.ContactService)
	c.InquiryHandler = messageHandler.NewInquiryHandler(c.InquiryService)
	c.SettingHandler = settingHandler.NewSettingHandler(c.SettingService)
	c.SiteHandler = siteHandler.NewSiteHandler(c.SiteService)
}

func (c *Container) pool() *pgxpool.Pool {
	if c.DB == nil {
		return nil
	}
	return c.DB.Pool
}

// Cleanup releases connections on shutdown. Safe on a partly built container.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.poolMetrics != nil {
		c.poolMetrics.Stop()
	}
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close queue client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
}
