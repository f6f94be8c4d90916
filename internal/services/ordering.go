package services

import (
	"cmp"
	"slices"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
)

// CompareContent é a ordem da galeria: a de compareSelection, com empates de
// ordem de exibição desfeitos pela última edição (decrescente).
func CompareContent(a, b models.ContentItem) int {
	if c := compareSelection(a, b); c != 0 {
		return c
	}
	return b.LastEditedTime.Compare(a.LastEditedTime)
}

// SortContentItems ordena in-place; empates completos mantêm a ordem da fonte
func SortContentItems(items []models.ContentItem) {
	slices.SortStableFunc(items, CompareContent)
}

// compareSelection ordena candidatos de página única: com ordem de exibição
// primeiro (crescente, empates na ordem de entrada), depois os sem ordem por
// última edição (decrescente).
func compareSelection(a, b models.ContentItem) int {
	aHas, bHas := a.HasDisplayOrder(), b.HasDisplayOrder()
	switch {
	case aHas && bHas:
		return cmp.Compare(*a.DisplayOrder, *b.DisplayOrder)
	case aHas:
		return -1
	case bHas:
		return 1
	}
	return b.LastEditedTime.Compare(a.LastEditedTime)
}

// SelectSinglePage escolhe a página exibida por uma categoria "Single Page".
// Retorna false apenas quando não há candidatos. Não altera a entrada.
func SelectSinglePage(candidates []models.ContentItem) (models.ContentItem, bool) {
	if len(candidates) == 0 {
		return models.ContentItem{}, false
	}
	// MinFunc devolve o primeiro dos mínimos
	return slices.MinFunc(candidates, compareSelection), true
}
