package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-notion-site/internal/api/handlers"
	"github.com/prefeitura-rio/app-notion-site/internal/config"
	middlewares "github.com/prefeitura-rio/app-notion-site/internal/middleware"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/prefeitura-rio/app-notion-site/internal/services"
	"github.com/prefeitura-rio/app-notion-site/internal/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Services agrupa as dependências dos handlers
type Services struct {
	Navigation handlers.NavigationLister
	Content    handlers.ContentSource
	Pages      handlers.PageFetcher
	Router     handlers.RouteResolver
	Notion     handlers.Pinger
}

// NewServices monta os serviços sobre um cliente Notion
func NewServices(cfg *config.Config, client *notion.Client, logger *zap.Logger) Services {
	navigation := services.NewNavigationService(client, cfg, logger)
	content := services.NewContentService(client, cfg, logger)

	return Services{
		Navigation: navigation,
		Content:    content,
		Pages:      services.NewPageService(client, logger),
		Router:     services.NewCategoryRouter(navigation, content, logger),
		Notion:     client,
	}
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, svc Services) (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middlewares.RequestLogger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic na requisição", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	r.Use(middlewares.RequestTiming())
	r.Use(corsMiddleware())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	healthHandler := handlers.NewHealthHandler(svc.Notion, cfg.NotionNavigationDBID != "", cfg.NotionDatabaseID != "", logger)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	navigationHandler := handlers.NewNavigationHandler(svc.Navigation)
	galleryHandler := handlers.NewGalleryHandler(svc.Content)
	pageHandler := handlers.NewPageHandler(svc.Pages)

	api := r.Group("/api")
	{
		api.GET("/navigation", middlewares.CacheControl(middlewares.ListCachePolicy), navigationHandler.GetNavigation)
		api.GET("/notion-gallery", middlewares.CacheControl(middlewares.ListCachePolicy), galleryHandler.GetGallery)
		api.GET("/notion-page", middlewares.CacheControl(middlewares.PageCachePolicy), pageHandler.GetPage)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	siteHandler := handlers.NewSiteHandler(cfg, svc.Router, svc.Content, svc.Pages, logger)
	site := r.Group("/", middlewares.CacheControl(middlewares.ListCachePolicy))
	{
		site.GET("/", siteHandler.Home)
		site.GET("/:segment", siteHandler.Segment)
	}

	r.NoRoute(siteHandler.NotFound)
	r.NoMethod(middlewares.MethodNotAllowed)

	return r, nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
