package jwt_service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService - рабочий сервис с методами
type JWTService struct {
	config *JWTConfig // Конфиг внутри сервиса
}

// Конфигурация JWTConfig
// заполняется один раз при старте процесса и дальше не меняется
type JWTConfig struct {
	SecretKey      string        // секретный ключ для подписи access токена (HS256)
	AccessTokenExp time.Duration // время жизни access токена
	Issuer         string        // издатель, попадает в claim iss
}

// CustomClaims для JWT
// subject (sub) - это ID пациента
type CustomClaims struct {
	jwt.RegisteredClaims
}
