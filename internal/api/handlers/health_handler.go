package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	notion               Pinger
	navigationConfigured bool
	contentConfigured    bool
	logger               *zap.Logger
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(notion Pinger, navigationConfigured, contentConfigured bool, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{
		notion:               notion,
		navigationConfigured: navigationConfigured,
		contentConfigured:    contentConfigured,
		logger:               logger.Named("health"),
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (valida a API do Notion)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.notion.Ping(ctx); err != nil {
		h.logger.Warn("Notion indisponível", zap.Error(err))
		response.Checks["notion"] = "failed"
		response.Status = "not_ready"
		response.Error = "Notion API not available"
	} else {
		response.Checks["notion"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação: conectividade com o Notion e configuração das databases
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.notion.Ping(ctx); err != nil {
		response.Checks["notion"] = "failed"
		response.Status = "unhealthy"
		response.Error = "Notion connectivity check failed"
	} else {
		response.Checks["notion"] = "ok"
	}

	// databases ausentes não derrubam o serviço: as páginas respondem 400
	response.Checks["navigation_database"] = configuredStatus(h.navigationConfigured)
	response.Checks["content_database"] = configuredStatus(h.contentConfigured)

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "missing"
}
