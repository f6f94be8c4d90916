package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-notion-site/internal/config"
	middlewares "github.com/prefeitura-rio/app-notion-site/internal/middleware"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/services"
	"github.com/prefeitura-rio/app-notion-site/internal/utils"
	"github.com/prefeitura-rio/app-notion-site/internal/web"
	"go.uber.org/zap"
)

// SiteHandler renderiza as páginas HTML do site
type SiteHandler struct {
	router   RouteResolver
	content  ContentSource
	pages    PageFetcher
	siteName string
	baseURL  string
	logger   *zap.Logger
}

// NewSiteHandler cria o handler das páginas HTML
func NewSiteHandler(cfg *config.Config, router RouteResolver, content ContentSource, pages PageFetcher, logger *zap.Logger) *SiteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteHandler{
		router:   router,
		content:  content,
		pages:    pages,
		siteName: cfg.SiteName,
		baseURL:  siteBaseURL(cfg.SiteDomain),
		logger:   logger.Named("site"),
	}
}

func siteBaseURL(domain string) string {
	domain = strings.TrimRight(strings.TrimSpace(domain), "/")
	if domain == "" {
		return ""
	}
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	if strings.HasPrefix(domain, "localhost") {
		return "http://" + domain
	}
	return "https://" + domain
}

// Home renderiza GET /
func (h *SiteHandler) Home(c *gin.Context) {
	decision, err := h.router.ResolveHome(c.Request.Context())
	if err != nil {
		h.renderError(c, err, nil)
		return
	}
	h.renderDecision(c, decision, "/")
}

// Segment renderiza GET /:segment (categoria ou página direta)
func (h *SiteHandler) Segment(c *gin.Context) {
	segment := utils.NormalizeSegment(c.Param("segment"))
	if segment == "" {
		h.renderError(c, models.ErrPageNotFound, nil)
		return
	}

	decision, err := h.router.Resolve(c.Request.Context(), segment)
	if err != nil {
		h.renderError(c, err, nil)
		return
	}
	h.renderDecision(c, decision, "/"+segment)
}

func (h *SiteHandler) renderDecision(c *gin.Context, decision *services.RouteDecision, path string) {
	data := h.baseData(decision.Navigation, path)

	switch decision.Kind {
	case services.RouteCategoryGallery:
		h.renderGallery(c, decision, data)
	case services.RouteCategorySinglePage:
		h.renderSinglePage(c, decision, data)
	default:
		h.renderDirectPage(c, decision, data)
	}
}

func (h *SiteHandler) renderGallery(c *gin.Context, decision *services.RouteDecision, data web.PageData) {
	items, err := h.content.QuerySource(c.Request.Context(), h.content.DatabaseID(), decision.Category.ID)
	if err != nil {
		h.renderError(c, err, decision.Navigation)
		return
	}

	data.Title = decision.Category.DisplayName
	data.Category = decision.Category
	data.Items = items
	if len(items) > 0 && items[0].Description != "" {
		data.Description = items[0].Description
	}
	c.HTML(http.StatusOK, web.GalleryTemplate, data)
}

func (h *SiteHandler) renderSinglePage(c *gin.Context, decision *services.RouteDecision, data web.PageData) {
	data.Title = decision.Category.DisplayName
	data.Category = decision.Category

	if !decision.HasSelection() {
		data.Empty = true
		c.HTML(http.StatusOK, web.SinglePageTemplate, data)
		return
	}

	view, err := h.pages.Render(c.Request.Context(), decision.SelectedContentID)
	if err != nil {
		h.renderError(c, err, decision.Navigation)
		return
	}

	data.ContentTitle = view.Title
	data.ContentHTML = view.HTML
	data.Description = view.Description
	c.HTML(http.StatusOK, web.SinglePageTemplate, data)
}

func (h *SiteHandler) renderDirectPage(c *gin.Context, decision *services.RouteDecision, data web.PageData) {
	if !utils.IsNotionID(decision.PageID) {
		h.renderError(c, models.ErrPageNotFound, decision.Navigation)
		return
	}

	view, err := h.pages.Render(c.Request.Context(), decision.PageID)
	if err != nil {
		h.renderError(c, err, decision.Navigation)
		return
	}

	data.Title = view.Title
	data.ContentTitle = view.Title
	data.ContentHTML = view.HTML
	data.Description = view.Description
	c.HTML(http.StatusOK, web.PageTemplate, data)
}

func (h *SiteHandler) baseData(navigation []models.NavigationItem, path string) web.PageData {
	data := web.PageData{
		SiteName:   h.siteName,
		ActivePath: path,
		Navigation: navigation,
	}
	if h.baseURL != "" {
		data.Canonical = h.baseURL + path
	}
	return data
}

// renderError renderiza a página de erro: 400 para configuração ausente,
// 404 para página inexistente e 500 para falhas do Notion
func (h *SiteHandler) renderError(c *gin.Context, err error, navigation []models.NavigationItem) {
	if errors.Is(err, context.Canceled) {
		c.Abort()
		return
	}

	_ = c.Error(err)
	middlewares.NoStore(c)

	status := statusFor(err)
	data := h.baseData(navigation, c.Request.URL.Path)
	data.Canonical = ""
	data.Status = status

	var cfgErr *models.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		data.Title = "Configuration required"
		data.Message = "The site is not configured yet."
		data.Remediation = cfgErr.Remediation
	case status == http.StatusNotFound:
		data.Title = "Page not found"
		data.Message = "The page you are looking for does not exist."
	default:
		h.logger.Error("Falha ao renderizar página",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		data.Title = "Something went wrong"
		data.Message = "We couldn't load this page right now. Please try again later."
	}

	c.HTML(status, web.ErrorTemplate, data)
}

// NotFound é o handler NoRoute do engine
func (h *SiteHandler) NotFound(c *gin.Context) {
	h.renderError(c, models.ErrPageNotFound, nil)
}
