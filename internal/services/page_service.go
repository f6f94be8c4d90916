package services

import (
	"context"
	"errors"
	"html/template"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/prefeitura-rio/app-notion-site/internal/render"
	"github.com/prefeitura-rio/app-notion-site/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// descriptionLength é o tamanho máximo da meta description de uma página
const descriptionLength = 160

// PageSource é a parte do cliente Notion usada para ler páginas
type PageSource interface {
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	GetBlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

// PageView é uma página do Notion pronta para renderização
type PageView struct {
	Page        *notion.Page
	Blocks      []notion.Block
	Title       string
	HTML        template.HTML
	Description string
}

// PageService busca páginas do Notion e converte o conteúdo em HTML
type PageService struct {
	source PageSource
	logger *zap.Logger
}

func NewPageService(source PageSource, logger *zap.Logger) *PageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageService{
		source: source,
		logger: logger.Named("page"),
	}
}

// Fetch busca metadados e blocos da página em paralelo.
// IDs inválidos ou inexistentes retornam models.ErrPageNotFound.
func (s *PageService) Fetch(ctx context.Context, pageID string) (*notion.Page, []notion.Block, error) {
	id, ok := utils.ParseNotionID(pageID)
	if !ok {
		return nil, nil, models.ErrPageNotFound
	}

	var (
		page   *notion.Page
		blocks []notion.Block
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.source.GetPage(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		blocks, err = s.source.GetBlockChildren(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, s.mapError(id, err)
	}
	if blocks == nil {
		blocks = []notion.Block{}
	}

	return page, blocks, nil
}

// Render busca a página e gera o HTML do conteúdo
func (s *PageService) Render(ctx context.Context, pageID string) (*PageView, error) {
	page, blocks, err := s.Fetch(ctx, pageID)
	if err != nil {
		return nil, err
	}

	md := render.BlocksToMarkdown(blocks)
	title := page.Title()
	if title == "" {
		title = ExtractFields(page.Properties).Title
	}

	return &PageView{
		Page:        page,
		Blocks:      blocks,
		Title:       title,
		HTML:        render.MarkdownToHTML(md),
		Description: render.Summary(md, descriptionLength),
	}, nil
}

func (s *PageService) mapError(pageID string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if notion.IsNotFound(err) {
		s.logger.Debug("Página não encontrada", zap.String("page_id", pageID))
		return models.ErrPageNotFound
	}
	s.logger.Error("Erro ao buscar página", zap.String("page_id", pageID), zap.Error(err))
	return &models.UpstreamError{Reason: "Failed to fetch page", Err: err}
}
