package services

import (
	"context"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
)

const (
	contentDBID    = "11111111111111111111111111111111"
	navigationDBID = "22222222222222222222222222222222"
)

func testConfig() *config.Config {
	return &config.Config{
		NotionDatabaseID:           contentDBID,
		NotionNavigationDBID:       navigationDBID,
		NotionCategoryProperty:     "카테고리",
		NotionDisplayOrderProperty: "노출 순서",
	}
}

// fakeQuerier responde consultas a partir de respostas fixas por database
type fakeQuerier struct {
	mu        sync.Mutex
	responses map[string]*notion.QueryResponse
	err       error
	requests  []*notion.QueryRequest
	databases []string
}

func (f *fakeQuerier) QueryDatabase(_ context.Context, databaseID string, req *notion.QueryRequest) (*notion.QueryResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	f.databases = append(f.databases, databaseID)
	if f.err != nil {
		return nil, f.err
	}
	if resp, ok := f.responses[databaseID]; ok {
		return resp, nil
	}
	return &notion.QueryResponse{}, nil
}

func (f *fakeQuerier) lastRequest() *notion.QueryRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

// fakeNavigation e fakeContent alimentam o CategoryRouter
type fakeNavigation struct {
	items []models.NavigationItem
	err   error
	calls int
}

func (f *fakeNavigation) List(context.Context) ([]models.NavigationItem, error) {
	f.calls++
	return f.items, f.err
}

type fakeContent struct {
	items      []models.ContentItem
	err        error
	categories []string
}

func (f *fakeContent) Query(_ context.Context, category string) ([]models.ContentItem, error) {
	f.categories = append(f.categories, category)
	return f.items, f.err
}

func richText(text string) []notion.RichText {
	return []notion.RichText{{PlainText: text}}
}

func titleProp(text string) notion.Property {
	return notion.Property{Type: "title", Title: richText(text)}
}

func numberProp(n float64) notion.Property {
	return notion.Property{Type: "number", Number: &n}
}

func filesProp(url string) notion.Property {
	return notion.Property{Type: "files", Files: []notion.File{{Type: "external", External: &notion.FileRef{URL: url}}}}
}

func navPage(id, name string, order *float64, displayType string, active bool, urlPath string) notion.Page {
	props := notion.Properties{
		NavDisplayNameProperty: titleProp(name),
		NavActiveProperty:      {Type: "checkbox", Checkbox: active},
		NavOrderProperty:       {Type: "number", Number: order},
	}
	if displayType != "" {
		props[NavDisplayTypeProperty] = notion.Property{Type: "select", Select: &notion.SelectOption{Name: displayType}}
	}
	if urlPath != "" {
		props[NavURLPathProperty] = notion.Property{Type: "rich_text", RichText: richText(urlPath)}
	}
	return notion.Page{ID: id, Properties: props}
}

func ptr(f float64) *float64 { return &f }

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 12, 0, 0, 0, time.UTC)
}

func item(id string, order *float64, edited time.Time) models.ContentItem {
	return models.ContentItem{ID: id, Title: id, DisplayOrder: order, LastEditedTime: edited}
}

func ids(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
