package services

import (
	"regexp"
	"strings"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
)

// Aliases de propriedades, em ordem de prioridade (coreano e inglês)
var (
	TitleAliases = []string{"제목", "Name", "Title", "이름", "name", "title"}
	MediaAliases = []string{"썸네일", "Cover", "Image", "Thumbnail", "Photo", "이미지", "커버", "Media", "미디어"}
)

// DescriptionProperty é a única propriedade lida como descrição
const DescriptionProperty = "Description"

var videoExtensions = map[string]bool{
	"mp4": true, "webm": true, "mov": true, "avi": true, "mkv": true, "m4v": true,
	"ogg": true, "ogv": true, "3gp": true, "flv": true, "wmv": true,
}

var videoExtensionPattern = regexp.MustCompile(`(?i)\.(mp4|webm|mov|avi|mkv|m4v|ogg|ogv|3gp|flv|wmv)(\?|$)`)

// fieldStrategy tenta extrair um valor de um property bag
type fieldStrategy func(props notion.Properties) (string, bool)

func titleStrategy(name string) fieldStrategy {
	return func(props notion.Properties) (string, bool) {
		prop, ok := props[name]
		if !ok || len(prop.Title) == 0 {
			return "", false
		}
		return notion.JoinPlainText(prop.Title), true
	}
}

func mediaStrategy(name string) fieldStrategy {
	return func(props notion.Properties) (string, bool) {
		prop, ok := props[name]
		if !ok || len(prop.Files) == 0 {
			return "", false
		}
		url := prop.Files[0].URL()
		return url, url != ""
	}
}

func strategies(build func(string) fieldStrategy, names []string) []fieldStrategy {
	out := make([]fieldStrategy, len(names))
	for i, name := range names {
		out[i] = build(name)
	}
	return out
}

var (
	titleStrategies = strategies(titleStrategy, TitleAliases)
	mediaStrategies = strategies(mediaStrategy, MediaAliases)
)

// firstMatch aplica as estratégias em ordem e para no primeiro acerto
func firstMatch(props notion.Properties, list []fieldStrategy) (string, bool) {
	for _, strategy := range list {
		if value, ok := strategy(props); ok {
			return value, true
		}
	}
	return "", false
}

// ExtractedFields são os campos de exibição extraídos de uma linha
type ExtractedFields struct {
	Title       string
	Description string
	MediaURL    *string
	MediaType   models.MediaType
}

// ExtractFields extrai título, descrição e mídia de um property bag. Função pura.
func ExtractFields(props notion.Properties) ExtractedFields {
	fields := ExtractedFields{MediaType: models.MediaTypeImage}

	fields.Title, _ = firstMatch(props, titleStrategies)
	fields.Description = getRichText(props, DescriptionProperty)

	if url, ok := firstMatch(props, mediaStrategies); ok {
		fields.MediaURL = &url
		fields.MediaType = ClassifyMedia(url)
	}

	return fields
}

// ClassifyMedia classifica a URL como vídeo ou imagem pela extensão do
// arquivo ou por padrões da URL. Heurística: não consulta a rede.
func ClassifyMedia(url string) models.MediaType {
	withoutQuery, _, _ := strings.Cut(url, "?")
	fileName := withoutQuery[strings.LastIndex(withoutQuery, "/")+1:]
	extension := strings.ToLower(fileName[strings.LastIndex(fileName, ".")+1:])

	if videoExtensions[extension] {
		return models.MediaTypeVideo
	}
	if videoExtensionPattern.MatchString(url) || strings.Contains(strings.ToLower(url), "/video/") {
		return models.MediaTypeVideo
	}
	return models.MediaTypeImage
}
