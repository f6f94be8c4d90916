package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
)

// PageHandler expõe páginas do Notion em JSON
type PageHandler struct {
	pages PageFetcher
}

// NewPageHandler cria um novo handler de páginas
func NewPageHandler(pages PageFetcher) *PageHandler {
	return &PageHandler{pages: pages}
}

// GetPage godoc
// @Summary Busca uma página do Notion
// @Description Retorna os metadados e os blocos de primeiro nível da página, sem transformação.
// @Tags pages
// @Produce json
// @Param pageId query string true "ID da página (com ou sem hífens)"
// @Success 200 {object} models.PageResponse
// @Failure 400 {object} models.ErrorResponse "pageId ausente"
// @Failure 404 {object} models.ErrorResponse "Página não encontrada"
// @Failure 500 {object} models.ErrorResponse "Falha ao consultar o Notion"
// @Router /api/notion-page [get]
func (h *PageHandler) GetPage(c *gin.Context) {
	pageID := strings.TrimSpace(c.Query("pageId"))
	if pageID == "" {
		writeBadRequest(c, "Page ID is required", nil)
		return
	}

	page, blocks, err := h.pages.Fetch(c.Request.Context(), pageID)
	if err != nil {
		writeAPIError(c, err, "Failed to fetch notion page")
		return
	}

	c.JSON(http.StatusOK, models.PageResponse{
		Success: true,
		Page:    page,
		Blocks:  blocks,
	})
}
