package render

import (
	"fmt"
	stdhtml "html"
	"html/template"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
)

// videoTitle marca imagens markdown que devem virar <video>
const videoTitle = "video"

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"~", `\~`,
	"|", `\|`,
	"!", `\!`,
)

var urlEscaper = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29")

// BlocksToMarkdown converte os blocos de primeiro nível de uma página em markdown.
// Tipos não suportados são ignorados.
func BlocksToMarkdown(blocks []notion.Block) string {
	var b strings.Builder
	prevList := ""

	for _, block := range blocks {
		listKind := ""
		switch block.Type {
		case "bulleted_list_item", "numbered_list_item", "to_do":
			listKind = block.Type
		}
		if prevList != "" && listKind != prevList {
			b.WriteString("\n")
		}
		prevList = listKind

		content := block.Content
		text := richTextToMarkdown(content.RichText)

		switch block.Type {
		case "paragraph":
			if text != "" {
				b.WriteString(text + "\n\n")
			}
		case "heading_1":
			b.WriteString("# " + text + "\n\n")
		case "heading_2":
			b.WriteString("## " + text + "\n\n")
		case "heading_3":
			b.WriteString("### " + text + "\n\n")
		case "bulleted_list_item":
			b.WriteString("- " + text + "\n")
		case "numbered_list_item":
			b.WriteString("1. " + text + "\n")
		case "to_do":
			mark := "☐"
			if content.Checked {
				mark = "☑"
			}
			b.WriteString("- " + mark + " " + text + "\n")
		case "quote", "toggle":
			b.WriteString(quote(text) + "\n\n")
		case "callout":
			if content.Icon != nil && content.Icon.Emoji != "" {
				text = content.Icon.Emoji + " " + text
			}
			b.WriteString(quote(text) + "\n\n")
		case "code":
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", content.Language, notion.JoinPlainText(content.RichText))
		case "divider":
			b.WriteString("\n---\n\n")
		case "image":
			if url := content.MediaURL(); url != "" {
				fmt.Fprintf(&b, "![%s](%s)\n\n", escapeMarkdown(notion.JoinPlainText(content.Caption)), urlEscaper.Replace(url))
			}
		case "video":
			if url := content.MediaURL(); url != "" {
				fmt.Fprintf(&b, "![%s](%s %q)\n\n", escapeMarkdown(notion.JoinPlainText(content.Caption)), urlEscaper.Replace(url), videoTitle)
			}
		case "bookmark", "embed", "link_preview":
			if content.URL != "" {
				label := escapeMarkdown(notion.JoinPlainText(content.Caption))
				if label == "" {
					label = escapeMarkdown(content.URL)
				}
				fmt.Fprintf(&b, "[%s](%s)\n\n", label, urlEscaper.Replace(content.URL))
			}
		}
	}

	return strings.TrimSpace(b.String())
}

// MarkdownToHTML renderiza markdown em HTML; HTML bruto é descartado e links
// fora de http(s), mailto ou caminhos relativos viram texto
func MarkdownToHTML(md string) template.HTML {
	if md == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags:          html.CommonFlags | html.Safelink | html.HrefTargetBlank | html.NoopenerLinks | html.NoreferrerLinks | html.SkipHTML,
		RenderNodeHook: renderVideoHook,
	})

	return template.HTML(markdown.Render(doc, renderer))
}

// BlocksToHTML é BlocksToMarkdown seguido de MarkdownToHTML
func BlocksToHTML(blocks []notion.Block) template.HTML {
	return MarkdownToHTML(BlocksToMarkdown(blocks))
}

func renderVideoHook(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	img, ok := node.(*ast.Image)
	if !ok || string(img.Title) != videoTitle {
		return ast.GoToNext, false
	}
	if !entering {
		return ast.GoToNext, true
	}

	src := string(img.Destination)
	if !strings.HasPrefix(src, "https://") && !strings.HasPrefix(src, "http://") {
		return ast.SkipChildren, true
	}
	fmt.Fprintf(w, `<video class="notion-video" src="%s" controls playsinline muted loop preload="metadata"></video>`, stdhtml.EscapeString(src))
	return ast.SkipChildren, true
}

func richTextToMarkdown(segments []notion.RichText) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(segmentToMarkdown(seg))
	}
	return strings.TrimSpace(b.String())
}

func segmentToMarkdown(seg notion.RichText) string {
	text := seg.PlainText
	if strings.TrimSpace(text) == "" {
		return text
	}

	// marcadores de ênfase não podem encostar em espaços
	core := strings.TrimSpace(text)
	lead := text[:strings.Index(text, core)]
	trail := text[len(lead)+len(core):]

	a := seg.Annotations
	if a.Code {
		core = "`" + strings.ReplaceAll(core, "`", "'") + "`"
	} else {
		core = escapeMarkdown(core)
	}
	if a.Bold {
		core = "**" + core + "**"
	}
	if a.Italic {
		core = "*" + core + "*"
	}
	if a.Strikethrough {
		core = "~~" + core + "~~"
	}
	if seg.Href != nil && *seg.Href != "" {
		core = "[" + core + "](" + urlEscaper.Replace(*seg.Href) + ")"
	}

	return lead + core + trail
}

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

func quote(text string) string {
	if text == "" {
		return ">"
	}
	return "> " + strings.ReplaceAll(text, "\n", "\n> ")
}
