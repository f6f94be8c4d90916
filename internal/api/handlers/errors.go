package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	middlewares "github.com/prefeitura-rio/app-notion-site/internal/middleware"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
)

// statusFor classifica um erro de serviço em status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotConfigured):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// genericUpstreamError é o único detalhe exposto para falhas sem motivo conhecido
const genericUpstreamError = "upstream unavailable"

// writeAPIError escreve o envelope de erro das APIs JSON.
// fallbackMessage é usado para falhas do Notion; o erro completo fica em
// c.Errors (e no log de acesso), nunca no corpo da resposta.
func writeAPIError(c *gin.Context, err error, fallbackMessage string) {
	_ = c.Error(err)
	middlewares.NoStore(c)

	status := statusFor(err)
	resp := models.ErrorResponse{Success: false, Message: fallbackMessage}

	var cfgErr *models.ConfigError
	var upErr *models.UpstreamError
	switch {
	case errors.As(err, &cfgErr):
		resp.Message = cfgErr.Remediation
	case status == http.StatusNotFound:
		resp.Message = "Page not found"
	case errors.As(err, &upErr) && upErr.Reason != "":
		resp.Error = upErr.Reason
	default:
		resp.Error = genericUpstreamError
	}

	c.JSON(status, resp)
}

// writeBadRequest responde 400 para parâmetros inválidos
func writeBadRequest(c *gin.Context, message string, err error) {
	middlewares.NoStore(c)
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}
