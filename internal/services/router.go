package services

import (
	"context"
	"errors"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/utils"
	"go.uber.org/zap"
)

// NavigationLister fornece a lista de categorias ativas
type NavigationLister interface {
	List(ctx context.Context) ([]models.NavigationItem, error)
}

// ContentQuerier lista conteúdo filtrado por categoria
type ContentQuerier interface {
	Query(ctx context.Context, category string) ([]models.ContentItem, error)
}

// RouteKind é o tipo de renderização decidido para um segmento
type RouteKind string

const (
	RouteDirectPage         RouteKind = "direct_page"
	RouteCategoryGallery    RouteKind = "category_gallery"
	RouteCategorySinglePage RouteKind = "category_single_page"
)

// RouteDecision é o resultado da resolução de um segmento de URL.
// Navigation é a lista usada na decisão, reaproveitada pelo menu.
type RouteDecision struct {
	Kind              RouteKind               `json:"kind"`
	PageID            string                  `json:"pageId,omitempty"`
	Category          *models.NavigationItem  `json:"category,omitempty"`
	SelectedContentID string                  `json:"selectedContentId,omitempty"`
	Navigation        []models.NavigationItem `json:"navigation"`
}

// HasSelection indica se uma categoria "Single Page" tem página para exibir
func (d *RouteDecision) HasSelection() bool {
	return d.SelectedContentID != ""
}

// CategoryRouter decide se um segmento é uma categoria ou uma página do Notion
type CategoryRouter struct {
	navigation NavigationLister
	content    ContentQuerier
	logger     *zap.Logger
}

func NewCategoryRouter(navigation NavigationLister, content ContentQuerier, logger *zap.Logger) *CategoryRouter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryRouter{
		navigation: navigation,
		content:    content,
		logger:     logger.Named("router"),
	}
}

// Resolve resolve GET /{segment}.
//
// Sem navegação configurada o segmento segue como página direta; outras
// falhas da navegação são retornadas.
func (r *CategoryRouter) Resolve(ctx context.Context, segment string) (*RouteDecision, error) {
	segment = utils.NormalizeSegment(segment)

	items, err := r.navigation.List(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrNotConfigured) {
			return nil, err
		}
		r.logger.Warn("Navegação não configurada; tratando segmento como página", zap.String("segment", segment))
		items = nil
	}

	category, ok := MatchCategory(items, segment)
	if !ok {
		return &RouteDecision{
			Kind:       RouteDirectPage,
			PageID:     segment,
			Navigation: items,
		}, nil
	}

	return r.resolveCategory(ctx, category, items)
}

// ResolveHome resolve GET /: categoria com URL "/", depois a que casa com
// "home", depois a primeira da lista. Sem navegação disponível, usa a
// galeria padrão sem filtro.
func (r *CategoryRouter) ResolveHome(ctx context.Context) (*RouteDecision, error) {
	items, err := r.navigation.List(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		r.logger.Warn("Navegação indisponível na home; usando galeria padrão", zap.Error(err))
		items = nil
	}

	home := findHomeCategory(items)
	return r.resolveCategory(ctx, home, items)
}

func (r *CategoryRouter) resolveCategory(ctx context.Context, category models.NavigationItem, items []models.NavigationItem) (*RouteDecision, error) {
	decision := &RouteDecision{
		Kind:       RouteCategoryGallery,
		Category:   &category,
		Navigation: items,
	}
	if !category.IsSinglePage() {
		return decision, nil
	}

	decision.Kind = RouteCategorySinglePage
	candidates, err := r.content.Query(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	if selected, ok := SelectSinglePage(candidates); ok {
		decision.SelectedContentID = selected.ID
	} else {
		r.logger.Info("Categoria de página única sem candidatos",
			zap.String("category_id", category.ID),
			zap.String("category", category.DisplayName))
	}
	return decision, nil
}

// MatchCategory procura a categoria de um segmento. URLPath (sensível a
// maiúsculas) tem precedência sobre CategoryName (insensível); dentro de
// cada critério vence o primeiro item.
func MatchCategory(items []models.NavigationItem, segment string) (models.NavigationItem, bool) {
	segment = utils.NormalizeSegment(segment)
	if segment == "" {
		return models.NavigationItem{}, false
	}

	withSlash := "/" + segment
	for _, item := range items {
		if item.URLPath == withSlash || item.URLPath == segment {
			return item, true
		}
	}

	folded := utils.FoldName(segment)
	for _, item := range items {
		if item.CategoryName != "" && utils.FoldName(item.CategoryName) == folded {
			return item, true
		}
	}

	return models.NavigationItem{}, false
}

func findHomeCategory(items []models.NavigationItem) models.NavigationItem {
	for _, item := range items {
		if item.URLPath == "/" {
			return item
		}
	}
	home := utils.FoldName(models.DefaultHomeCategory().CategoryName)
	for _, item := range items {
		if utils.FoldName(item.CategoryName) == home {
			return item
		}
	}
	if len(items) > 0 {
		return items[0]
	}
	return models.DefaultHomeCategory()
}
