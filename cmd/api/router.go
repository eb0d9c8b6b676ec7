package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lawfirm-backend/internal/shared/flash"
	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.ClientIPMiddleware(),
		flash.Middleware(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupPublicRoutes(router, c)
	setupBlogRoutes(router, c)
	setupAdminRoutes(router, c)

	return router
}

// ========================================
// PUBLIC ROUTES
// ========================================
func setupPublicRoutes(r *gin.Engine, c *container.Container) {
	r.GET("/", c.SiteHandler.Home)
	r.GET("/about", c.SiteHandler.About)
	r.GET("/services", c.SiteHandler.Services)
	r.GET("/contact", c.SiteHandler.Contact)

	r.POST("/contact", c.ContactHandler.Submit)
	r.POST("/inquiry", c.InquiryHandler.Submit)
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(r *gin.Engine, c *container.Container) {
	blog := r.Group("/blog")
	{
		blog.GET("", c.ArticleHandler.BlogIndex)
		blog.GET("/category/:category", c.ArticleHandler.BlogCategory)
		blog.GET("/:slug", c.ArticleHandler.BlogShow)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(r *gin.Engine, c *container.Container) {
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(c.JWTManager))

	admin.GET("", c.SiteHandler.Dashboard)

	articles := admin.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.Index)
		articles.POST("", c.ArticleHandler.Store)
		articles.GET("/:id", c.ArticleHandler.Show)
		articles.PUT("/:id", c.ArticleHandler.Update)
		// multipart forms cannot PUT
		articles.POST("/:id", c.ArticleHandler.Update)
		articles.DELETE("/:id", c.ArticleHandler.Destroy)
	}

	services := admin.Group("/services")
	{
		services.GET("", c.ServiceHandler.Index)
		services.POST("", c.ServiceHandler.Store)
		services.GET("/:id", c.ServiceHandler.Show)
		services.PUT("/:id", c.ServiceHandler.Update)
		services.POST("/:id", c.ServiceHandler.Update)
		services.DELETE("/:id", c.ServiceHandler.Destroy)
	}

	faqs := admin.Group("/faqs")
	{
		faqs.GET("", c.FaqHandler.Index)
		faqs.POST("", c.FaqHandler.Store)
		faqs.GET("/:id", c.FaqHandler.Show)
		faqs.PUT("/:id", c.FaqHandler.Update)
		faqs.DELETE("/:id", c.FaqHandler.Destroy)
	}

	contacts := admin.Group("/contacts")
	{
		contacts.GET("", c.ContactHandler.Index)
		contacts.GET("/export", c.ContactHandler.Export)
		contacts.GET("/:id", c.ContactHandler.Show)
		contacts.PUT("/:id", c.ContactHandler.Update)
		contacts.DELETE("/:id", c.ContactHandler.Destroy)
	}

	inquiries := admin.Group("/inquiries")
	{
		inquiries.GET("", c.InquiryHandler.Index)
		inquiries.GET("/export", c.InquiryHandler.Export)
		inquiries.GET("/:id", c.InquiryHandler.Show)
		inquiries.PUT("/:id", c.InquiryHandler.Update)
		inquiries.DELETE("/:id", c.InquiryHandler.Destroy)
	}

	settings := admin.Group("/settings")
	{
		settings.GET("", c.SettingHandler.Index)
		settings.POST("", c.SettingHandler.Update)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"

		dbStatus := "memory"
		if appCtx.DB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			dbStatus = "ok"
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
				status = "degraded"
			}
		}

		cacheStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error: " + err.Error()
		}

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": dbStatus,
				"cache":    cacheStatus,
			},
		})
	}
}
