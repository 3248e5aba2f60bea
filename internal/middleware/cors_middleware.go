package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NahiaEscalante/backend-mediagent/internal/config"
)

// middleware для CORS политики
// с origin "*" нельзя использовать Allow-Credentials (ограничение CORS),
// поэтому credentials разрешаются только для явного списка источников
func CORSMiddleware(corsConf *config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		// запрос без Origin (например, curl или postman) или режим "*"
		case corsConf.AllowAny() || origin == "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		case corsConf.IsAllowed(origin):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":  "Origin not allowed",
				"origin": origin,
			})
			return
		}

		// Разрешённые методы и заголовки
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Заголовки, которые можно читать клиенту
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Type")

		// Кэширование предзапроса (в секундах)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
