package jwt_service

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
)

// интерфейс сервиса токенов: выпуск и проверка access токена
type JWTManager interface {
	GenerateToken(sub string) (string, error)
	VerifyToken(tokenString string) (string, error)
}

// NewJWTService создаёт рабочий сервис с конфигом
func NewJWTService(config *JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// метод для генерации access токена с subject = ID пациента
func (j *JWTService) GenerateToken(sub string) (string, error) {
	claims := NewClaims(j.config.AccessTokenExp, sub, j.config.Issuer)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.config.SecretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// метод проверки access токена: подпись и срок действия проверяются одним проходом парсера
// любая причина провала (подпись, срок, структура, пустой sub) наружу отдаётся
// одной и той же ошибкой domain.ErrInvalidToken - без деталей
func (j *JWTService) VerifyToken(tokenString string) (string, error) {
	token, err := parser.ParseWithClaims(
		tokenString,
		&CustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.config.SecretKey), nil
		})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", domain.ErrInvalidToken
	}

	return sub, nil
}
