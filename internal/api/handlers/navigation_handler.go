package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
)

// NavigationHandler expõe a navegação do site
type NavigationHandler struct {
	navigation NavigationLister
}

// NewNavigationHandler cria um novo handler de navegação
func NewNavigationHandler(navigation NavigationLister) *NavigationHandler {
	return &NavigationHandler{navigation: navigation}
}

// GetNavigation godoc
// @Summary Lista as categorias ativas da navegação
// @Description Retorna as categorias marcadas como ativas na database de navegação, ordenadas pela ordem de navegação (ausente ou 0 equivale a 999).
// @Tags navigation
// @Produce json
// @Success 200 {object} models.ListResponse[models.NavigationItem]
// @Failure 400 {object} models.ErrorResponse "NOTION_NAVIGATION_DB_ID não configurado"
// @Failure 500 {object} models.ErrorResponse "Falha ao consultar o Notion"
// @Router /api/navigation [get]
func (h *NavigationHandler) GetNavigation(c *gin.Context) {
	items, err := h.navigation.List(c.Request.Context())
	if err != nil {
		writeAPIError(c, err, "Failed to fetch navigation data")
		return
	}

	c.JSON(http.StatusOK, models.NewListResponse(items))
}
