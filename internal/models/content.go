package models

import (
	"math"
	"time"
)

// MediaType é derivado da URL da mídia, nunca atribuído diretamente
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ContentItem representa uma linha da database de conteúdo
type ContentItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	MediaURL       *string   `json:"imageUrl"`
	MediaType      MediaType `json:"mediaType"`
	URL            string    `json:"url"`
	CreatedTime    time.Time `json:"createdTime"`
	LastEditedTime time.Time `json:"lastEditedTime"`
	FormattedDate  string    `json:"formattedDate"`
	DisplayOrder   *float64  `json:"displayOrder"`
}

// HasDisplayOrder indica se o item tem ordem de exibição definida (não nula, não NaN)
func (c *ContentItem) HasDisplayOrder() bool {
	return c.DisplayOrder != nil && !math.IsNaN(*c.DisplayOrder)
}

// Initial retorna a primeira letra do título para o placeholder da galeria
func (c *ContentItem) Initial() string {
	for _, r := range c.Title {
		return string(r)
	}
	return "?"
}
