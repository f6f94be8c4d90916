// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Notion
//   - NOTION_API_KEY: Token da integração Notion
//   - NOTION_DATABASE_ID: Database de conteúdo (galeria / páginas)
//   - NOTION_NAVIGATION_DB_ID: Database de configuração da navegação
//   - NOTION_BASE_URL: URL base da API (default: https://api.notion.com/v1)
//   - NOTION_VERSION: Header Notion-Version (default: 2022-06-28)
//   - NOTION_TIMEOUT_SECONDS: Timeout por chamada (default: 10)
//   - NOTION_CATEGORY_PROPERTY: Propriedade relation que liga conteúdo à categoria (default: 카테고리)
//   - NOTION_DISPLAY_ORDER_PROPERTY: Propriedade number de ordem de exibição (default: 노출 순서)
//   - NOTION_BREAKER_MAX_FAILURES: Falhas consecutivas até abrir o circuit breaker (default: 5)
//   - NOTION_BREAKER_TIMEOUT_SECONDS: Tempo em estado aberto (default: 30)
//
// ## Site
//   - SITE_NAME: Nome exibido no título das páginas (default: Studio)
//   - SITE_DOMAIN: Domínio público (default: localhost:8080)
//
// Os IDs de database não são obrigatórios na inicialização: a ausência é reportada
// por requisição como erro de configuração (HTTP 400).
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	NotionAPIKey               string
	NotionDatabaseID           string
	NotionNavigationDBID       string
	NotionBaseURL              string
	NotionVersion              string
	NotionTimeout              time.Duration
	NotionCategoryProperty     string
	NotionDisplayOrderProperty string

	// Circuit breaker da API Notion
	BreakerMaxFailures int
	BreakerTimeout     time.Duration

	ServerPort string

	SiteName   string
	SiteDomain string

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		NotionAPIKey:               getEnv("NOTION_API_KEY", ""),
		NotionDatabaseID:           strings.TrimSpace(getEnv("NOTION_DATABASE_ID", "")),
		NotionNavigationDBID:       strings.TrimSpace(getEnv("NOTION_NAVIGATION_DB_ID", "")),
		NotionBaseURL:              strings.TrimRight(getEnv("NOTION_BASE_URL", "https://api.notion.com/v1"), "/"),
		NotionVersion:              getEnv("NOTION_VERSION", "2022-06-28"),
		NotionTimeout:              time.Duration(getEnvInt("NOTION_TIMEOUT_SECONDS", 10)) * time.Second,
		NotionCategoryProperty:     getEnv("NOTION_CATEGORY_PROPERTY", "카테고리"),
		NotionDisplayOrderProperty: getEnv("NOTION_DISPLAY_ORDER_PROPERTY", "노출 순서"),

		BreakerMaxFailures: getEnvInt("NOTION_BREAKER_MAX_FAILURES", 5),
		BreakerTimeout:     time.Duration(getEnvInt("NOTION_BREAKER_TIMEOUT_SECONDS", 30)) * time.Second,

		ServerPort: getEnv("SERVER_PORT", "8080"),

		SiteName:   getEnv("SITE_NAME", "Studio"),
		SiteDomain: getEnv("SITE_DOMAIN", "localhost:8080"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
