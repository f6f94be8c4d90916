package notion

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// RichText é um segmento de texto rico do Notion
type RichText struct {
	PlainText   string      `json:"plain_text"`
	Href        *string     `json:"href,omitempty"`
	Annotations Annotations `json:"annotations"`
}

// Annotations descreve a formatação de um segmento
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color,omitempty"`
}

// JoinPlainText concatena o texto puro dos segmentos, na ordem
func JoinPlainText(segments []RichText) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.PlainText)
	}
	return b.String()
}

// FileRef aponta para um arquivo hospedado ou externo
type FileRef struct {
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

// File é uma entrada de uma propriedade files (ou cover)
type File struct {
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type"`
	File     *FileRef `json:"file,omitempty"`
	External *FileRef `json:"external,omitempty"`
}

// URL retorna a URL do arquivo, preferindo o hospedado pelo Notion ao link externo
func (f File) URL() string {
	if f.File != nil && f.File.URL != "" {
		return f.File.URL
	}
	if f.External != nil {
		return f.External.URL
	}
	return ""
}

type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Relation struct {
	ID string `json:"id"`
}

// Property é o valor de uma propriedade de página de database.
// Apenas os campos do tipo indicado em Type vêm preenchidos; Number
// preserva null como nil.
type Property struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Checkbox bool          `json:"checkbox,omitempty"`
	Files    []File        `json:"files,omitempty"`
	Relation []Relation    `json:"relation,omitempty"`
	URL      *string       `json:"url,omitempty"`
}

// Properties é o "property bag" de uma página
type Properties map[string]Property

// Page é uma página do Notion (linha de database ou página avulsa)
type Page struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	Archived       bool       `json:"archived"`
	URL            string     `json:"url,omitempty"`
	Cover          *File      `json:"cover,omitempty"`
	Properties     Properties `json:"properties"`
}

// Title retorna o texto da primeira propriedade do tipo title
func (p *Page) Title() string {
	for _, prop := range p.Properties {
		if prop.Type == "title" {
			return JoinPlainText(prop.Title)
		}
	}
	return ""
}

// QueryRequest é o corpo de POST /databases/{id}/query
type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}

type Filter struct {
	Property string             `json:"property,omitempty"`
	Checkbox *CheckboxCondition `json:"checkbox,omitempty"`
	Relation *RelationCondition `json:"relation,omitempty"`
	And      []Filter           `json:"and,omitempty"`
}

type CheckboxCondition struct {
	Equals bool `json:"equals"`
}

type RelationCondition struct {
	Contains string `json:"contains"`
}

const (
	SortAscending  = "ascending"
	SortDescending = "descending"

	TimestampCreated    = "created_time"
	TimestampLastEdited = "last_edited_time"
)

// Sort ordena por propriedade ou por timestamp (exclusivos)
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// Icon de callouts e páginas
type Icon struct {
	Type     string   `json:"type"`
	Emoji    string   `json:"emoji,omitempty"`
	External *FileRef `json:"external,omitempty"`
	File     *FileRef `json:"file,omitempty"`
}

// BlockContent reúne os campos comuns aos payloads de bloco que o site renderiza
type BlockContent struct {
	RichText []RichText `json:"rich_text,omitempty"`
	Checked  bool       `json:"checked,omitempty"`
	Language string     `json:"language,omitempty"`
	Caption  []RichText `json:"caption,omitempty"`
	Type     string     `json:"type,omitempty"`
	File     *FileRef   `json:"file,omitempty"`
	External *FileRef   `json:"external,omitempty"`
	URL      string     `json:"url,omitempty"`
	Icon     *Icon      `json:"icon,omitempty"`
}

// MediaURL retorna a URL de blocos image/video/file
func (c BlockContent) MediaURL() string {
	return File{File: c.File, External: c.External}.URL()
}

// Block é um bloco de conteúdo de página. Raw guarda o JSON original
// para ser repassado sem perdas pela API.
type Block struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	HasChildren bool            `json:"has_children"`
	Content     BlockContent    `json:"-"`
	Raw         json.RawMessage `json:"-"`
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var envelope struct {
		ID          string `json:"id"`
		Type        string `json:"type"`
		HasChildren bool   `json:"has_children"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	b.ID = envelope.ID
	b.Type = envelope.Type
	b.HasChildren = envelope.HasChildren
	b.Content = BlockContent{}
	if payload, ok := fields[envelope.Type]; ok && len(payload) > 0 && payload[0] == '{' {
		if err := json.Unmarshal(payload, &b.Content); err != nil {
			return err
		}
	}
	b.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	if len(b.Raw) > 0 {
		return b.Raw, nil
	}
	type plain Block
	return json.Marshal(plain(b))
}

type blockChildrenResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}
