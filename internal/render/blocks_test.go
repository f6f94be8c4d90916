package render

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBlocks(t *testing.T, raw string) []notion.Block {
	t.Helper()
	var blocks []notion.Block
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))
	return blocks
}

func TestBlocksToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		blocks   string
		expected string
	}{
		{
			name:     "empty",
			blocks:   `[]`,
			expected: "",
		},
		{
			name: "paragraph with annotations",
			blocks: `[{"id":"b1","type":"paragraph","paragraph":{"rich_text":[
				{"plain_text":"Hello ","annotations":{}},
				{"plain_text":"bold","annotations":{"bold":true}},
				{"plain_text":" world","annotations":{}}]}}]`,
			expected: "Hello **bold** world",
		},
		{
			name: "emphasis markers stay inside spaces",
			blocks: `[{"id":"b1","type":"paragraph","paragraph":{"rich_text":[
				{"plain_text":"a","annotations":{}},
				{"plain_text":" italic ","annotations":{"italic":true}},
				{"plain_text":"b","annotations":{}}]}}]`,
			expected: "a *italic* b",
		},
		{
			name:     "headings",
			blocks:   `[{"id":"h1","type":"heading_1","heading_1":{"rich_text":[{"plain_text":"One"}]}},{"id":"h2","type":"heading_2","heading_2":{"rich_text":[{"plain_text":"Two"}]}}]`,
			expected: "# One\n\n## Two",
		},
		{
			name: "list followed by paragraph",
			blocks: `[
				{"id":"l1","type":"bulleted_list_item","bulleted_list_item":{"rich_text":[{"plain_text":"a"}]}},
				{"id":"l2","type":"bulleted_list_item","bulleted_list_item":{"rich_text":[{"plain_text":"b"}]}},
				{"id":"p1","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"after"}]}}]`,
			expected: "- a\n- b\n\nafter",
		},
		{
			name:     "to do",
			blocks:   `[{"id":"t1","type":"to_do","to_do":{"rich_text":[{"plain_text":"done"}],"checked":true}},{"id":"t2","type":"to_do","to_do":{"rich_text":[{"plain_text":"open"}],"checked":false}}]`,
			expected: "- ☑ done\n- ☐ open",
		},
		{
			name:     "callout with emoji",
			blocks:   `[{"id":"c1","type":"callout","callout":{"rich_text":[{"plain_text":"note"}],"icon":{"type":"emoji","emoji":"💡"}}}]`,
			expected: "> 💡 note",
		},
		{
			name:     "code is not escaped",
			blocks:   `[{"id":"c1","type":"code","code":{"rich_text":[{"plain_text":"a * b"}],"language":"go"}}]`,
			expected: "```go\na * b\n```",
		},
		{
			name:     "markdown characters are escaped",
			blocks:   `[{"id":"p1","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"a*b_c"}]}}]`,
			expected: `a\*b\_c`,
		},
		{
			name:     "link href is percent encoded",
			blocks:   `[{"id":"p1","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"site","href":"https://example.com/a b"}]}}]`,
			expected: "[site](https://example.com/a%20b)",
		},
		{
			name:     "image with caption",
			blocks:   `[{"id":"i1","type":"image","image":{"type":"external","external":{"url":"https://cdn.example.com/a.png"},"caption":[{"plain_text":"cover"}]}}]`,
			expected: "![cover](https://cdn.example.com/a.png)",
		},
		{
			name:     "hosted video",
			blocks:   `[{"id":"v1","type":"video","video":{"type":"file","file":{"url":"https://files.example.com/v.mp4"}}}]`,
			expected: `![](https://files.example.com/v.mp4 "video")`,
		},
		{
			name:     "divider",
			blocks:   `[{"id":"p1","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"x"}]}},{"id":"d1","type":"divider","divider":{}}]`,
			expected: "x\n\n\n---",
		},
		{
			name:     "unsupported types are skipped",
			blocks:   `[{"id":"x1","type":"child_database","child_database":{"title":"db"}},{"id":"p1","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"kept"}]}}]`,
			expected: "kept",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BlocksToMarkdown(decodeBlocks(t, tt.blocks)))
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MarkdownToHTML(""))
	})

	t.Run("raw html is dropped", func(t *testing.T) {
		got := string(MarkdownToHTML("<script>alert(1)</script>\n\nhello"))
		assert.NotContains(t, got, "<script>")
		assert.Contains(t, got, "hello")
	})

	t.Run("external links open in new tab", func(t *testing.T) {
		got := string(MarkdownToHTML("[site](https://example.com)"))
		assert.Contains(t, got, `href="https://example.com"`)
		assert.Contains(t, got, `target="_blank"`)
		assert.Contains(t, got, `rel="noreferrer noopener"`)
	})

	t.Run("relative links stay links", func(t *testing.T) {
		got := string(MarkdownToHTML("[page](/0123456789abcdef0123456789abcdef)"))
		assert.Contains(t, got, `href="/0123456789abcdef0123456789abcdef"`)
	})

	t.Run("video title renders video tag", func(t *testing.T) {
		got := string(MarkdownToHTML(`![](https://files.example.com/v.mp4 "video")`))
		assert.Contains(t, got, `<video class="notion-video" src="https://files.example.com/v.mp4"`)
		assert.NotContains(t, got, "<img")
	})

	t.Run("non http video source is dropped", func(t *testing.T) {
		got := string(MarkdownToHTML(`![](ftp://files.example.com/v.mp4 "video")`))
		assert.NotContains(t, got, "<video")
		assert.NotContains(t, got, "ftp://")
	})
}

func TestBlocksToHTML(t *testing.T) {
	blocks := decodeBlocks(t, `[
		{"id":"h1","type":"heading_1","heading_1":{"rich_text":[{"plain_text":"Lookbook"}]}},
		{"id":"i1","type":"image","image":{"type":"external","external":{"url":"https://cdn.example.com/a.png"}}}]`)

	got := string(BlocksToHTML(blocks))
	assert.Contains(t, got, "Lookbook</h1>")
	assert.Contains(t, got, `<img src="https://cdn.example.com/a.png"`)
}

func TestBlocksToHTMLDropsScriptLinks(t *testing.T) {
	tests := []struct {
		name   string
		blocks string
		text   string
	}{
		{
			name:   "rich text href",
			blocks: `[{"id":"p1","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"click","href":"javascript:alert(document.cookie)"}]}}]`,
			text:   "click",
		},
		{
			name:   "bookmark",
			blocks: `[{"id":"b1","type":"bookmark","bookmark":{"url":"javascript:alert(1)","caption":[{"plain_text":"saved"}]}}]`,
			text:   "saved",
		},
		{
			name:   "embed",
			blocks: `[{"id":"e1","type":"embed","embed":{"url":"JavaScript:alert(1)","caption":[{"plain_text":"player"}]}}]`,
			text:   "player",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(BlocksToHTML(decodeBlocks(t, tt.blocks)))
			assert.NotContains(t, got, "<a ")
			assert.NotContains(t, strings.ToLower(got), "javascript:")
			assert.Contains(t, got, tt.text)
		})
	}
}
