package jwt_service

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// создаём новый парсер, который учитывает метод шифрования и подтверждение срока действия
var parser = jwt.NewParser(
	jwt.WithValidMethods([]string{"HS256"}), // принимать только метод подписи HS256
	jwt.WithExpirationRequired(),            // проверка наличия срока действия токена
)

const (
	defaultSecretKey            = "cambiar-en-produccion-clave-secreta-muy-larga"
	defaultAccessTokenExpireMin = 60
)

// LoadJWTConfigFromEnv собирает конфиг токенов из переменных окружения
// SECRET_KEY и ACCESS_TOKEN_EXPIRE_MINUTES имеют дефолты для разработки
func LoadJWTConfigFromEnv() (*JWTConfig, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = defaultSecretKey
	}

	expireMinutes := defaultAccessTokenExpireMin
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be an integer, got %q", raw)
		}
		expireMinutes = parsed
	}

	config := &JWTConfig{
		SecretKey:      secret,
		AccessTokenExp: time.Duration(expireMinutes) * time.Minute,
		Issuer:         "backend-mediagent",
	}

	if err := validateJWTConfig(config); err != nil {
		return nil, fmt.Errorf("invalid JWT config: %w", err)
	}
	return config, nil
}

// validateJWTConfig - строгая валидация
func validateJWTConfig(cfg *JWTConfig) error {
	// 1. Ключ не должен быть пустым
	if cfg.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}

	// 2. Валидация времени жизни
	if cfg.AccessTokenExp <= 0 {
		return fmt.Errorf("access token expiry must be positive")
	}

	// 3. Максимальное значение
	if cfg.AccessTokenExp > 24*time.Hour {
		return fmt.Errorf("access token expiry too long (max 24h)")
	}

	return nil
}

// вспомогательная функция для создания структуры claims для JWT
func NewClaims(tokenExp time.Duration, sub, issuer string) CustomClaims {
	now := time.Now().UTC()
	newClaim := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        uuid.New().String(),
		},
	}
	return newClaim
}
