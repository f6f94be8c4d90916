package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/prefeitura-rio/app-notion-site/internal/utils"
	"go.uber.org/zap"
)

// MaxContentItems é o limite de linhas buscadas por consulta
const MaxContentItems = 50

const contentRemediation = "Database ID is required. Set NOTION_DATABASE_ID environment variable or provide databaseId query parameter."

// DatabaseQuerier é a parte do cliente Notion usada para listar databases
type DatabaseQuerier interface {
	QueryDatabase(ctx context.Context, databaseID string, req *notion.QueryRequest) (*notion.QueryResponse, error)
}

// ContentService lista os itens de conteúdo (galeria / candidatos de página única)
type ContentService struct {
	source               DatabaseQuerier
	databaseID           string
	categoryProperty     string
	displayOrderProperty string
	logger               *zap.Logger
}

// NewContentService cria o serviço sobre a database configurada em NOTION_DATABASE_ID
func NewContentService(source DatabaseQuerier, cfg *config.Config, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{
		source:               source,
		databaseID:           cfg.NotionDatabaseID,
		categoryProperty:     cfg.NotionCategoryProperty,
		displayOrderProperty: cfg.NotionDisplayOrderProperty,
		logger:               logger.Named("content"),
	}
}

// DatabaseID retorna a database configurada (vazia quando não configurada)
func (s *ContentService) DatabaseID() string {
	return s.databaseID
}

// Query lista o conteúdo da database configurada, opcionalmente filtrado por categoria
func (s *ContentService) Query(ctx context.Context, category string) ([]models.ContentItem, error) {
	return s.QuerySource(ctx, s.databaseID, category)
}

// QuerySource lista até MaxContentItems linhas de uma database.
//
// Se category for um ID do Notion, filtra pela relation de categoria; um nome
// em texto livre não é filtrável e retorna o conjunto completo (limitação conhecida).
// O resultado é ordenado por CompareContent.
func (s *ContentService) QuerySource(ctx context.Context, databaseID, category string) ([]models.ContentItem, error) {
	if databaseID == "" {
		return nil, models.NewConfigError("NOTION_DATABASE_ID", contentRemediation)
	}

	req := &notion.QueryRequest{
		PageSize: MaxContentItems,
		Sorts: []notion.Sort{
			{Timestamp: notion.TimestampCreated, Direction: notion.SortDescending},
		},
	}

	if category != "" {
		if categoryID, ok := utils.ParseNotionID(category); ok {
			req.Filter = &notion.Filter{
				Property: s.categoryProperty,
				Relation: &notion.RelationCondition{Contains: categoryID},
			}
		} else {
			s.logger.Debug("Categoria não é um ID; retornando conteúdo sem filtro",
				zap.String("category", category))
		}
	}

	resp, err := s.source.QueryDatabase(ctx, databaseID, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.logger.Error("Erro ao consultar database de conteúdo",
			zap.String("database_id", databaseID),
			zap.String("category", category),
			zap.Error(err))
		return nil, &models.UpstreamError{Reason: "Failed to fetch gallery data", Err: err}
	}

	items := make([]models.ContentItem, 0, len(resp.Results))
	for i := range resp.Results {
		if len(items) == MaxContentItems {
			break
		}
		items = append(items, s.toContentItem(&resp.Results[i]))
	}

	SortContentItems(items)
	return items, nil
}

func (s *ContentService) toContentItem(page *notion.Page) models.ContentItem {
	fields := ExtractFields(page.Properties)

	return models.ContentItem{
		ID:             page.ID,
		Title:          fields.Title,
		Description:    fields.Description,
		MediaURL:       fields.MediaURL,
		MediaType:      fields.MediaType,
		URL:            fmt.Sprintf("/%s", utils.CompactNotionID(page.ID)),
		CreatedTime:    page.CreatedTime,
		LastEditedTime: page.LastEditedTime,
		FormattedDate:  formatKoreanDate(page.LastEditedTime),
		DisplayOrder:   getNumberPtr(page.Properties, s.displayOrderProperty),
	}
}
