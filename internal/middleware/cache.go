package middlewares

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Políticas de cache para CDN
var (
	ListCachePolicy = CachePolicy{SharedMaxAge: 5 * time.Minute, StaleWhileRevalidate: 10 * time.Minute}
	PageCachePolicy = CachePolicy{SharedMaxAge: 10 * time.Minute, StaleWhileRevalidate: 20 * time.Minute}
)

// CachePolicy gera o header Cache-Control de respostas públicas
type CachePolicy struct {
	SharedMaxAge         time.Duration
	StaleWhileRevalidate time.Duration
}

func (p CachePolicy) String() string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
		int(p.SharedMaxAge.Seconds()), int(p.StaleWhileRevalidate.Seconds()))
}

// CacheControl aplica a política às respostas do grupo; respostas de erro
// sobrescrevem com NoStore
func CacheControl(policy CachePolicy) gin.HandlerFunc {
	value := policy.String()

	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", value)
		c.Next()
	}
}

// NoStore marca a resposta atual como não cacheável. Chamado pelos handlers
// antes de escrever respostas de erro.
func NoStore(c *gin.Context) {
	c.Writer.Header().Set("Cache-Control", "no-store")
}

// MethodNotAllowed é o handler NoMethod do engine: gin já definiu o status
// 405 e o header Allow, aqui só escrevemos o corpo
func MethodNotAllowed(c *gin.Context) {
	NoStore(c)
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"message": "Method not allowed",
		})
		return
	}
	c.AbortWithStatus(http.StatusMethodNotAllowed)
}
