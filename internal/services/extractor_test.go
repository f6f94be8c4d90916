package services

import (
	"testing"

	"github.com/prefeitura-rio/app-notion-site/internal/models"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		url      string
		expected models.MediaType
	}{
		{"https://x/clip.MP4?sig=1", models.MediaTypeVideo},
		{"https://x/photo.jpg", models.MediaTypeImage},
		{"https://x/video/123", models.MediaTypeVideo},
		{"https://cdn.example.com/a.webm", models.MediaTypeVideo},
		{"https://cdn.example.com/a.mov?X-Amz-Expires=3600", models.MediaTypeVideo},
		{"https://cdn.example.com/VIDEO/thumb", models.MediaTypeVideo},
		{"https://cdn.example.com/noextension", models.MediaTypeImage},
		{"https://cdn.example.com/archive.mp4.png", models.MediaTypeImage},
		{"", models.MediaTypeImage},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyMedia(tt.url))
		})
	}
}

func TestExtractFields(t *testing.T) {
	t.Run("title alias priority", func(t *testing.T) {
		props := notion.Properties{
			"Name": titleProp("english"),
			"제목":   titleProp("korean"),
		}
		assert.Equal(t, "korean", ExtractFields(props).Title)
	})

	t.Run("empty title falls through to next alias", func(t *testing.T) {
		props := notion.Properties{
			"제목":    {Type: "title"},
			"Title": titleProp("fallback"),
		}
		assert.Equal(t, "fallback", ExtractFields(props).Title)
	})

	t.Run("media from first alias with files", func(t *testing.T) {
		props := notion.Properties{
			"썸네일":   {Type: "files"},
			"Cover": filesProp("https://cdn.example.com/clip.mp4"),
			"Image": filesProp("https://cdn.example.com/a.png"),
		}
		fields := ExtractFields(props)
		require.NotNil(t, fields.MediaURL)
		assert.Equal(t, "https://cdn.example.com/clip.mp4", *fields.MediaURL)
		assert.Equal(t, models.MediaTypeVideo, fields.MediaType)
	})

	t.Run("hosted file preferred over external", func(t *testing.T) {
		props := notion.Properties{
			"Image": {Type: "files", Files: []notion.File{{
				Type:     "file",
				File:     &notion.FileRef{URL: "https://files.example.com/hosted.png"},
				External: &notion.FileRef{URL: "https://ext.example.com/ext.png"},
			}}},
		}
		fields := ExtractFields(props)
		require.NotNil(t, fields.MediaURL)
		assert.Equal(t, "https://files.example.com/hosted.png", *fields.MediaURL)
	})

	t.Run("no media defaults to image", func(t *testing.T) {
		fields := ExtractFields(notion.Properties{"Description": {Type: "rich_text", RichText: richText("desc")}})
		assert.Nil(t, fields.MediaURL)
		assert.Equal(t, models.MediaTypeImage, fields.MediaType)
		assert.Equal(t, "desc", fields.Description)
		assert.Empty(t, fields.Title)
	})
}
