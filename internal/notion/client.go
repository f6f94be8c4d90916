package notion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	blockPageSize    = 100
	maxBlockPages    = 5
	maxErrorBodySize = 64 << 10
)

// Client é um cliente somente-leitura da API REST do Notion
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	version    string
	timeout    time.Duration
	breaker    *gobreaker.CircuitBreaker
	tracer     trace.Tracer
	logger     *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures <= 0 {
		maxFailures = 5
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    cfg.NotionBaseURL,
		apiKey:     cfg.NotionAPIKey,
		version:    cfg.NotionVersion,
		timeout:    cfg.NotionTimeout,
		tracer:     otel.Tracer("notion"),
		logger:     logger.Named("notion"),
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "notion",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(maxFailures)
		},
		IsSuccessful: func(err error) bool {
			return !isUpstreamFailure(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Circuit breaker mudou de estado",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return c
}

// QueryDatabase consulta uma database (uma página de resultados)
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
	if databaseID == "" {
		return nil, ErrEmptyID
	}
	if req == nil {
		req = &QueryRequest{}
	}

	var resp QueryResponse
	path := "/databases/" + url.PathEscape(databaseID) + "/query"
	if err := c.do(ctx, "databases.query", http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPage busca os metadados e propriedades de uma página
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	if pageID == "" {
		return nil, ErrEmptyID
	}

	var page Page
	if err := c.do(ctx, "pages.retrieve", http.MethodGet, "/pages/"+url.PathEscape(pageID), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBlockChildren busca os blocos de primeiro nível de uma página,
// seguindo a paginação até maxBlockPages páginas.
func (c *Client) GetBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	if blockID == "" {
		return nil, ErrEmptyID
	}

	var blocks []Block
	cursor := ""
	for page := 0; page < maxBlockPages; page++ {
		query := url.Values{}
		query.Set("page_size", fmt.Sprintf("%d", blockPageSize))
		if cursor != "" {
			query.Set("start_cursor", cursor)
		}

		var resp blockChildrenResponse
		path := "/blocks/" + url.PathEscape(blockID) + "/children?" + query.Encode()
		if err := c.do(ctx, "blocks.children", http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		blocks = append(blocks, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			return blocks, nil
		}
		cursor = *resp.NextCursor
	}

	c.logger.Debug("Blocos truncados no limite de paginação",
		zap.String("block_id", blockID),
		zap.Int("blocks", len(blocks)))
	return blocks, nil
}

// Ping verifica token e conectividade (GET /users/me)
func (c *Client) Ping(ctx context.Context) error {
	var me struct {
		ID string `json:"id"`
	}
	return c.do(ctx, "users.me", http.MethodGet, "/users/me", nil, &me)
}

// CloseIdleConnections libera conexões keep-alive
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	ctx, span := c.tracer.Start(ctx, "notion."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("notion.operation", operation),
		),
	)
	defer span.End()

	start := time.Now()
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, path, body, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	span.SetAttributes(attribute.Int64("notion.duration_ms", time.Since(start).Milliseconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, operation+" failed")
		c.logger.Debug("Chamada ao Notion falhou",
			zap.String("operation", operation),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro na requisição ao Notion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if len(raw) == 0 || json.Unmarshal(raw, apiErr) != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do Notion: %w", err)
	}
	return nil
}
