package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/prefeitura-rio/app-notion-site/internal/utils"
	"go.uber.org/zap"
)

// Propriedades da database de navegação
const (
	NavDisplayNameProperty = "표시명"
	NavOrderProperty       = "네비게이션 순서"
	NavDisplayTypeProperty = "표시 방식"
	NavActiveProperty      = "활성화"
	NavURLPathProperty     = "URL 경로"

	// defaultNavigationOrder é usado quando a ordem está ausente ou é zero
	defaultNavigationOrder = 999
)

const navigationRemediation = "Navigation Database ID is required. Set NOTION_NAVIGATION_DB_ID environment variable."

// NavigationService lista as categorias ativas da navegação
type NavigationService struct {
	source     DatabaseQuerier
	databaseID string
	validator  *validator.Validate
	logger     *zap.Logger
}

func NewNavigationService(source DatabaseQuerier, cfg *config.Config, logger *zap.Logger) *NavigationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NavigationService{
		source:     source,
		databaseID: cfg.NotionNavigationDBID,
		validator:  newNavigationValidator(),
		logger:     logger.Named("navigation"),
	}
}

// List retorna as categorias ativas ordenadas por NavigationOrder (empates na ordem da fonte).
// Sem NOTION_NAVIGATION_DB_ID retorna ConfigError, nunca lista vazia.
func (s *NavigationService) List(ctx context.Context) ([]models.NavigationItem, error) {
	if s.databaseID == "" {
		return nil, models.NewConfigError("NOTION_NAVIGATION_DB_ID", navigationRemediation)
	}

	resp, err := s.source.QueryDatabase(ctx, s.databaseID, &notion.QueryRequest{
		Filter: &notion.Filter{
			Property: NavActiveProperty,
			Checkbox: &notion.CheckboxCondition{Equals: true},
		},
		Sorts: []notion.Sort{
			{Property: NavOrderProperty, Direction: notion.SortAscending},
		},
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.logger.Error("Erro ao consultar database de navegação",
			zap.String("database_id", s.databaseID),
			zap.Error(err))
		return nil, &models.UpstreamError{Reason: "Failed to fetch navigation data", Err: err}
	}

	items := make([]models.NavigationItem, 0, len(resp.Results))
	for i := range resp.Results {
		item := toNavigationItem(&resp.Results[i])
		if !item.IsActive {
			continue
		}
		if err := s.validator.Struct(item); err != nil {
			s.logger.Warn("Item de navegação ignorado",
				zap.String("id", item.ID),
				zap.String("display_name", item.DisplayName),
				zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NavigationOrder < items[j].NavigationOrder
	})

	return items, nil
}

// newNavigationValidator registra url_path: "/" ou um único segmento, o
// único formato alcançável pelas rotas "/" e "/:segment"
func newNavigationValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("url_path", func(fl validator.FieldLevel) bool {
		return isRoutableURLPath(fl.Field().String())
	})
	return v
}

func isRoutableURLPath(path string) bool {
	if path == "/" {
		return true
	}
	segment := strings.TrimPrefix(path, "/")
	return strings.TrimSpace(segment) != "" && !strings.ContainsAny(segment, "/?#")
}

func toNavigationItem(page *notion.Page) models.NavigationItem {
	props := page.Properties

	displayName := getTitle(props, NavDisplayNameProperty)

	order := defaultNavigationOrder
	if n := getNumberPtr(props, NavOrderProperty); n != nil && *n != 0 {
		order = int(*n)
	}

	urlPath := getFirstRichText(props, NavURLPathProperty)
	if urlPath == "" {
		urlPath = utils.DefaultURLPath(displayName)
	}

	return models.NavigationItem{
		ID:              page.ID,
		CategoryName:    displayName,
		DisplayName:     displayName,
		NavigationOrder: order,
		DisplayType:     models.ParseDisplayType(getSelectName(props, NavDisplayTypeProperty)),
		IsActive:        getCheckbox(props, NavActiveProperty),
		URLPath:         urlPath,
	}
}
