package notion

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("notion: API indisponível (circuit breaker aberto)")
	ErrEmptyID     = errors.New("notion: identificador vazio")
)

// APIError é o corpo de erro devolvido pela API do Notion
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound indica que a página/database não existe ou não foi compartilhada
// com a integração, ou que o identificador é inválido.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch {
	case apiErr.Status == http.StatusNotFound, apiErr.Code == "object_not_found":
		return true
	case apiErr.Status == http.StatusBadRequest && apiErr.Code == "validation_error":
		return true
	}
	return false
}

// isUpstreamFailure decide o que conta como falha para o circuit breaker:
// erros de transporte, 5xx e 429. Erros 4xx são respostas válidas.
func isUpstreamFailure(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError || apiErr.Status == http.StatusTooManyRequests
	}
	return true
}
