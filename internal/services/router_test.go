package services

import (
	"context"
	"testing"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	workCategory = models.NavigationItem{
		ID: "nav-work", CategoryName: "Work", DisplayName: "Work",
		NavigationOrder: 1, DisplayType: models.DisplayTypeGallery, IsActive: true, URLPath: "/work",
	}
	aboutCategory = models.NavigationItem{
		ID: "nav-about", CategoryName: "About", DisplayName: "About",
		NavigationOrder: 2, DisplayType: models.DisplayTypeSinglePage, IsActive: true, URLPath: "/about",
	}
)

func TestMatchCategory(t *testing.T) {
	shadow := models.NavigationItem{ID: "nav-shadow", CategoryName: "About", URLPath: "/x"}
	byPath := models.NavigationItem{ID: "nav-path", CategoryName: "Other", URLPath: "/about"}

	tests := []struct {
		name    string
		items   []models.NavigationItem
		segment string
		wantID  string
		found   bool
	}{
		{"url path with slash", []models.NavigationItem{workCategory}, "work", "nav-work", true},
		{"url path without slash", []models.NavigationItem{{ID: "nav-bare", CategoryName: "Bare", URLPath: "bare"}}, "bare", "nav-bare", true},
		{"url path beats earlier name match", []models.NavigationItem{shadow, byPath}, "about", "nav-path", true},
		{"name is case insensitive", []models.NavigationItem{aboutCategory}, "ABOUT", "nav-about", true},
		{"url path is case sensitive", []models.NavigationItem{{ID: "nav-p", CategoryName: "Zzz", URLPath: "/Path"}}, "path", "", false},
		{"korean name", []models.NavigationItem{{ID: "nav-ko", CategoryName: "소개", URLPath: "/intro"}}, "소개", "nav-ko", true},
		{"leading slash in segment", []models.NavigationItem{workCategory}, "/work", "nav-work", true},
		{"empty segment", []models.NavigationItem{workCategory}, "", "", false},
		{"no match", []models.NavigationItem{workCategory}, "0123456789abcdef0123456789abcdef", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchCategory(tt.items, tt.segment)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestResolveGalleryCategory(t *testing.T) {
	nav := &fakeNavigation{items: []models.NavigationItem{workCategory, aboutCategory}}
	content := &fakeContent{}
	router := NewCategoryRouter(nav, content, nil)

	decision, err := router.Resolve(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, RouteCategoryGallery, decision.Kind)
	require.NotNil(t, decision.Category)
	assert.Equal(t, "nav-work", decision.Category.ID)
	assert.Len(t, decision.Navigation, 2)
	assert.Empty(t, content.categories, "galeria não consulta conteúdo na resolução")
}

func TestResolveSinglePageCategory(t *testing.T) {
	nav := &fakeNavigation{items: []models.NavigationItem{workCategory, aboutCategory}}
	content := &fakeContent{items: []models.ContentItem{
		item("old", nil, day(1)),
		item("ordered", ptr(1), day(1)),
	}}
	router := NewCategoryRouter(nav, content, nil)

	decision, err := router.Resolve(context.Background(), "About")
	require.NoError(t, err)
	assert.Equal(t, RouteCategorySinglePage, decision.Kind)
	assert.True(t, decision.HasSelection())
	assert.Equal(t, "ordered", decision.SelectedContentID)
	assert.Equal(t, []string{"nav-about"}, content.categories)
}

func TestResolveSinglePageWithoutCandidates(t *testing.T) {
	nav := &fakeNavigation{items: []models.NavigationItem{aboutCategory}}
	router := NewCategoryRouter(nav, &fakeContent{}, nil)

	decision, err := router.Resolve(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, RouteCategorySinglePage, decision.Kind)
	assert.False(t, decision.HasSelection())
}

func TestResolveSinglePageContentError(t *testing.T) {
	nav := &fakeNavigation{items: []models.NavigationItem{aboutCategory}}
	content := &fakeContent{err: &models.UpstreamError{Reason: "Failed to fetch gallery data", Err: assert.AnError}}
	router := NewCategoryRouter(nav, content, nil)

	_, err := router.Resolve(context.Background(), "about")
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestResolveDirectPage(t *testing.T) {
	nav := &fakeNavigation{items: []models.NavigationItem{workCategory}}
	router := NewCategoryRouter(nav, &fakeContent{}, nil)

	decision, err := router.Resolve(context.Background(), "0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, RouteDirectPage, decision.Kind)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", decision.PageID)
	assert.Nil(t, decision.Category)
}

func TestResolveIsIdempotent(t *testing.T) {
	nav := &fakeNavigation{items: []models.NavigationItem{workCategory, aboutCategory}}
	content := &fakeContent{items: []models.ContentItem{item("p1", ptr(1), day(1))}}
	router := NewCategoryRouter(nav, content, nil)

	first, err := router.Resolve(context.Background(), "about")
	require.NoError(t, err)
	second, err := router.Resolve(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveWithoutNavigationConfigured(t *testing.T) {
	nav := &fakeNavigation{err: models.NewConfigError("NOTION_NAVIGATION_DB_ID", "missing")}
	router := NewCategoryRouter(nav, &fakeContent{}, nil)

	decision, err := router.Resolve(context.Background(), "work")
	require.NoError(t, err)
	assert.Equal(t, RouteDirectPage, decision.Kind)
	assert.Equal(t, "work", decision.PageID)
}

func TestResolveNavigationUpstreamError(t *testing.T) {
	nav := &fakeNavigation{err: &models.UpstreamError{Reason: "Failed to fetch navigation data", Err: assert.AnError}}
	router := NewCategoryRouter(nav, &fakeContent{}, nil)

	_, err := router.Resolve(context.Background(), "work")
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestResolveHome(t *testing.T) {
	root := models.NavigationItem{ID: "nav-root", CategoryName: "Main", URLPath: "/", DisplayType: models.DisplayTypeGallery}
	home := models.NavigationItem{ID: "nav-home", CategoryName: "Home", URLPath: "/start", DisplayType: models.DisplayTypeGallery}
	homePath := models.NavigationItem{ID: "nav-home-path", CategoryName: "Start", URLPath: "/home", DisplayType: models.DisplayTypeGallery}

	tests := []struct {
		name   string
		nav    *fakeNavigation
		wantID string
	}{
		{"url path root wins", &fakeNavigation{items: []models.NavigationItem{workCategory, home, root}}, "nav-root"},
		{"home name", &fakeNavigation{items: []models.NavigationItem{workCategory, home}}, "nav-home"},
		{"home name beats home url path", &fakeNavigation{items: []models.NavigationItem{homePath, home}}, "nav-home"},
		{"home url path alone is not home", &fakeNavigation{items: []models.NavigationItem{workCategory, homePath}}, "nav-work"},
		{"first item", &fakeNavigation{items: []models.NavigationItem{workCategory, aboutCategory}}, "nav-work"},
		{"empty navigation", &fakeNavigation{}, "default"},
		{"navigation error", &fakeNavigation{err: assert.AnError}, "default"},
		{"navigation not configured", &fakeNavigation{err: models.NewConfigError("NOTION_NAVIGATION_DB_ID", "missing")}, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewCategoryRouter(tt.nav, &fakeContent{}, nil)
			decision, err := router.ResolveHome(context.Background())
			require.NoError(t, err)
			require.NotNil(t, decision.Category)
			assert.Equal(t, tt.wantID, decision.Category.ID)
		})
	}
}

func TestResolveHomeSinglePage(t *testing.T) {
	root := models.NavigationItem{ID: "nav-root", CategoryName: "Main", URLPath: "/", DisplayType: models.DisplayTypeSinglePage}
	nav := &fakeNavigation{items: []models.NavigationItem{root}}
	content := &fakeContent{items: []models.ContentItem{item("landing", nil, day(2))}}
	router := NewCategoryRouter(nav, content, nil)

	decision, err := router.ResolveHome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RouteCategorySinglePage, decision.Kind)
	assert.Equal(t, "landing", decision.SelectedContentID)
}
