package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/prefeitura-rio/app-notion-site/docs"
	"github.com/prefeitura-rio/app-notion-site/internal/api/routes"
	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"github.com/prefeitura-rio/app-notion-site/internal/logging"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/prefeitura-rio/app-notion-site/internal/observability"
	"go.uber.org/zap"
)

// @title           Notion Site API
// @version         1.0
// @description     Site renderizado no servidor a partir de um workspace do Notion: navegação, galeria e páginas

// @BasePath  /

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Erro ao inicializar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracer, err := observability.InitTracer(ctx, cfg, logger)
	if err != nil {
		logger.Warn("Tracing indisponível, seguindo sem exporter", zap.Error(err))
	}
	defer tracer.Shutdown(context.Background())

	if cfg.NotionAPIKey == "" {
		logger.Warn("NOTION_API_KEY não definido; as chamadas ao Notion vão falhar")
	}
	if cfg.NotionNavigationDBID == "" {
		logger.Warn("NOTION_NAVIGATION_DB_ID não definido; a navegação responderá 400")
	}
	if cfg.NotionDatabaseID == "" {
		logger.Warn("NOTION_DATABASE_ID não definido; a galeria responderá 400")
	}

	client := notion.NewClient(cfg, logger)
	defer client.CloseIdleConnections()

	r, err := routes.SetupRouter(cfg, logger, routes.NewServices(cfg, client, logger))
	if err != nil {
		logger.Fatal("Erro ao configurar rotas", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Servidor iniciado", zap.String("port", cfg.ServerPort), zap.String("site", cfg.SiteName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Erro ao encerrar servidor", zap.Error(err))
	}
}
