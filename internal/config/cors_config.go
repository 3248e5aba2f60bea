// конфиг CORS политики: список разрешённых Origin или "*"
package config

import (
	"os"
	"strings"
)

// структура конфига CORS
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// NewCORSConfigFromEnv создаёт конфиг CORS из переменной окружения CORS_ORIGINS
// "*" = разрешить любой источник; иначе список, разделённый запятыми
func NewCORSConfigFromEnv() *CORSConfig {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		raw = "http://localhost:8080"
	}

	if raw == "*" {
		return &CORSConfig{AllowedOrigins: []string{"*"}}
	}

	origins := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return &CORSConfig{AllowedOrigins: origins}
}

// AllowAny сообщает, разрешён ли любой источник
// с "*" нельзя использовать Allow-Credentials (ограничение CORS)
func (c *CORSConfig) AllowAny() bool {
	return len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*"
}

// IsAllowed проверяет Origin по списку разрешённых
func (c *CORSConfig) IsAllowed(origin string) bool {
	if c.AllowAny() {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}
