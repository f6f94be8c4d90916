// Package web contém os templates HTML e os assets estáticos do site,
// embutidos no binário.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Nomes dos templates de página
const (
	GalleryTemplate    = "gallery.html"
	SinglePageTemplate = "single_page.html"
	PageTemplate       = "page.html"
	ErrorTemplate      = "error.html"
)

// PageData é o contexto de todos os templates de página
type PageData struct {
	SiteName    string
	Title       string
	Description string
	Canonical   string
	ActivePath  string
	Navigation  []models.NavigationItem

	// Galeria
	Category *models.NavigationItem
	Items    []models.ContentItem

	// Página única / página direta
	ContentTitle string
	ContentHTML  template.HTML
	Empty        bool

	// Erros
	Status      int
	Message     string
	Remediation string
}

// FuncMap são as funções disponíveis nos templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"navHref":  NavHref,
		"isActive": isActive,
		"pageTitle": func(site, title string) string {
			if title == "" || title == site {
				return site
			}
			return title + " | " + site
		},
	}
}

// Templates faz o parse de todos os templates embutidos
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar templates: %w", err)
	}
	return tmpl, nil
}

// Static retorna os assets servidos em /static
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// o diretório é embutido em tempo de compilação
		panic(err)
	}
	return sub
}

// NavHref é o link de uma categoria no menu
func NavHref(item models.NavigationItem) string {
	path := strings.TrimSpace(item.URLPath)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

func isActive(item models.NavigationItem, activePath string) bool {
	return NavHref(item) == activePath
}
