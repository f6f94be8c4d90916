package models

// DisplayType define como uma categoria é renderizada
type DisplayType string

const (
	DisplayTypeSinglePage DisplayType = "Single Page"
	DisplayTypeGallery    DisplayType = "Gallery"
)

// ParseDisplayType converte o nome do select do Notion; qualquer valor
// diferente de "Single Page" é tratado como galeria
func ParseDisplayType(name string) DisplayType {
	if DisplayType(name) == DisplayTypeSinglePage {
		return DisplayTypeSinglePage
	}
	return DisplayTypeGallery
}

// NavigationItem representa uma categoria ativa da navegação
type NavigationItem struct {
	ID              string      `json:"id" validate:"required"`
	CategoryName    string      `json:"categoryName"`
	DisplayName     string      `json:"displayName"`
	NavigationOrder int         `json:"navigationOrder"`
	DisplayType     DisplayType `json:"displayType"`
	IsActive        bool        `json:"isActive"`
	URLPath         string      `json:"urlPath" validate:"url_path"`
}

// IsSinglePage indica se a categoria resolve para uma única página
func (n *NavigationItem) IsSinglePage() bool {
	return n.DisplayType == DisplayTypeSinglePage
}

// DefaultHomeCategory é usada na home quando a navegação não está disponível
func DefaultHomeCategory() NavigationItem {
	return NavigationItem{
		ID:              "default",
		CategoryName:    "Home",
		DisplayName:     "Home",
		NavigationOrder: 1,
		DisplayType:     DisplayTypeGallery,
		IsActive:        true,
		URLPath:         "/",
	}
}
