package services

import (
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-notion-site/internal/notion"
)

// Helper functions for extracting values from Notion property bags
func getTitle(props notion.Properties, key string) string {
	if prop, ok := props[key]; ok {
		return notion.JoinPlainText(prop.Title)
	}
	return ""
}

func getRichText(props notion.Properties, key string) string {
	if prop, ok := props[key]; ok {
		return notion.JoinPlainText(prop.RichText)
	}
	return ""
}

func getFirstRichText(props notion.Properties, key string) string {
	if prop, ok := props[key]; ok && len(prop.RichText) > 0 {
		return prop.RichText[0].PlainText
	}
	return ""
}

func getNumberPtr(props notion.Properties, key string) *float64 {
	if prop, ok := props[key]; ok && prop.Number != nil {
		n := *prop.Number
		return &n
	}
	return nil
}

func getCheckbox(props notion.Properties, key string) bool {
	if prop, ok := props[key]; ok {
		return prop.Checkbox
	}
	return false
}

func getSelectName(props notion.Properties, key string) string {
	if prop, ok := props[key]; ok && prop.Select != nil {
		return prop.Select.Name
	}
	return ""
}

var kst = time.FixedZone("KST", 9*60*60)

// formatKoreanDate formata a data no padrão longo ko-KR, ex: "2024년 6월 1일"
func formatKoreanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	local := t.In(kst)
	return fmt.Sprintf("%d년 %d월 %d일", local.Year(), int(local.Month()), local.Day())
}
