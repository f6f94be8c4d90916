package models

import "github.com/prefeitura-rio/app-notion-site/internal/notion"

// ListResponse é o envelope das APIs de listagem.
// Success=false sempre acompanha status não-2xx e Message.
type ListResponse[T any] struct {
	Success bool   `json:"success"`
	Items   []T    `json:"items"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewListResponse monta uma resposta de sucesso; items vazio é serializado como []
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	total := len(items)
	return ListResponse[T]{
		Success: true,
		Items:   items,
		Total:   &total,
	}
}

// ErrorResponse é o corpo de erro das APIs
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// PageResponse é a resposta de /api/notion-page: metadados e blocos repassados sem alteração
type PageResponse struct {
	Success bool           `json:"success"`
	Page    *notion.Page   `json:"page"`
	Blocks  []notion.Block `json:"blocks"`
}
