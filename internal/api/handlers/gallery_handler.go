package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/utils"
)

// GalleryQuery são os parâmetros de /api/notion-gallery
type GalleryQuery struct {
	Category   string `form:"category" validate:"max=200"`
	DatabaseID string `form:"databaseId" validate:"omitempty,notion_id"`
}

// GalleryHandler expõe o conteúdo da galeria
type GalleryHandler struct {
	content  ContentSource
	validate *validator.Validate
}

// NewGalleryHandler cria um novo handler de galeria
func NewGalleryHandler(content ContentSource) *GalleryHandler {
	return &GalleryHandler{
		content:  content,
		validate: newValidator(),
	}
}

// newValidator registra a regra notion_id (UUID com ou sem hífens)
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notion_id", func(fl validator.FieldLevel) bool {
		return utils.IsNotionID(fl.Field().String())
	})
	return v
}

// GetGallery godoc
// @Summary Lista os itens da galeria
// @Description Consulta a database de conteúdo (NOTION_DATABASE_ID, ou o parâmetro databaseId quando a variável não está definida), filtrando pela categoria quando ela é um ID do Notion. Itens ordenados por ordem de exibição e depois pela última edição.
// @Tags gallery
// @Produce json
// @Param category query string false "ID da categoria (relation); nomes em texto não filtram"
// @Param databaseId query string false "ID da database de conteúdo"
// @Success 200 {object} models.ListResponse[models.ContentItem]
// @Failure 400 {object} models.ErrorResponse "Database não configurada ou parâmetros inválidos"
// @Failure 500 {object} models.ErrorResponse "Falha ao consultar o Notion"
// @Router /api/notion-gallery [get]
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	var query GalleryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBadRequest(c, "Invalid query parameters", err)
		return
	}
	if err := h.validate.Struct(query); err != nil {
		writeBadRequest(c, "Invalid query parameters", err)
		return
	}

	databaseID := h.content.DatabaseID()
	if databaseID == "" {
		databaseID = query.DatabaseID
	}

	items, err := h.content.QuerySource(c.Request.Context(), databaseID, query.Category)
	if err != nil {
		writeAPIError(c, err, "Failed to fetch gallery data")
		return
	}

	c.JSON(http.StatusOK, models.NewListResponse(items))
}
