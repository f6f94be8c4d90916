package web

import (
	"bytes"
	"html/template"
	"io/fs"
	"testing"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data PageData) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestNavHref(t *testing.T) {
	assert.Equal(t, "/work", NavHref(models.NavigationItem{URLPath: "/work"}))
	assert.Equal(t, "/work", NavHref(models.NavigationItem{URLPath: "work"}))
	assert.Equal(t, "/", NavHref(models.NavigationItem{URLPath: ""}))
}

func TestGalleryTemplate(t *testing.T) {
	video := "https://cdn.example.com/clip.mp4"
	image := "https://cdn.example.com/a.png"

	out := render(t, GalleryTemplate, PageData{
		SiteName:   "Studio",
		Title:      "Work",
		ActivePath: "/work",
		Navigation: []models.NavigationItem{
			{ID: "n1", DisplayName: "Work", URLPath: "/work"},
			{ID: "n2", DisplayName: "About", URLPath: "/about"},
		},
		Items: []models.ContentItem{
			{ID: "a", Title: "Clip", URL: "/a", MediaURL: &video, MediaType: models.MediaTypeVideo},
			{ID: "b", Title: "Photo", URL: "/b", MediaURL: &image, MediaType: models.MediaTypeImage},
			{ID: "c", Title: "Text", URL: "/c"},
		},
	})

	assert.Contains(t, out, "<title>Work | Studio</title>")
	assert.Contains(t, out, `<video class="media" src="https://cdn.example.com/clip.mp4" autoplay muted loop`)
	assert.Contains(t, out, `<img class="media" src="https://cdn.example.com/a.png"`)
	assert.Contains(t, out, "<span>T</span>")
	assert.Contains(t, out, `class="menu-item active">Work</a>`)
	assert.NotContains(t, out, "No gallery items found.")
}

func TestGalleryTemplateEmpty(t *testing.T) {
	out := render(t, GalleryTemplate, PageData{SiteName: "Studio"})
	assert.Contains(t, out, "No gallery items found.")
	assert.Contains(t, out, "<title>Studio</title>")
}

func TestPageTemplateEscapesTitle(t *testing.T) {
	out := render(t, PageTemplate, PageData{
		SiteName:     "Studio",
		ContentTitle: "<b>Lookbook</b>",
		ContentHTML:  template.HTML("<p>body</p>"),
	})
	assert.Contains(t, out, "&lt;b&gt;Lookbook&lt;/b&gt;")
	assert.Contains(t, out, "<p>body</p>")
}

func TestErrorTemplate(t *testing.T) {
	out := render(t, ErrorTemplate, PageData{
		SiteName:    "Studio",
		Status:      400,
		Message:     "Site is not configured",
		Remediation: "Set NOTION_DATABASE_ID environment variable.",
	})
	assert.Contains(t, out, "<h1>400</h1>")
	assert.Contains(t, out, "Set NOTION_DATABASE_ID environment variable.")
}

func TestStaticAssets(t *testing.T) {
	_, err := fs.Stat(Static(), "site.css")
	assert.NoError(t, err)
	_, err = fs.Stat(Static(), "site.js")
	assert.NoError(t, err)
}
