package handlers

import (
	"context"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/prefeitura-rio/app-notion-site/internal/services"
)

// Dependências dos handlers, implementadas pelos serviços em internal/services

type NavigationLister interface {
	List(ctx context.Context) ([]models.NavigationItem, error)
}

type ContentSource interface {
	DatabaseID() string
	QuerySource(ctx context.Context, databaseID, category string) ([]models.ContentItem, error)
}

type PageFetcher interface {
	Fetch(ctx context.Context, pageID string) (*notion.Page, []notion.Block, error)
	Render(ctx context.Context, pageID string) (*services.PageView, error)
}

type RouteResolver interface {
	Resolve(ctx context.Context, segment string) (*services.RouteDecision, error)
	ResolveHome(ctx context.Context) (*services.RouteDecision, error)
}

// Pinger verifica a conectividade com o Notion
type Pinger interface {
	Ping(ctx context.Context) error
}
