package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authinterfaces "github.com/NahiaEscalante/backend-mediagent/internal/auth_interfaces"
	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
	"github.com/NahiaEscalante/backend-mediagent/internal/jwt_service"
)

// ключ, под которым аутентифицированный пациент лежит в контексте gin
const CurrentPatientKey = "current_patient"

// AuthMiddleware проверяет Bearer токен и резолвит пациента по subject
// все ветки провала (нет заголовка, пустой токен, плохая подпись, истёкший
// срок, удалённый пользователь) отдают один и тот же ответ 401 с фиксированным
// сообщением - различать их намеренно нельзя
func AuthMiddleware(jwt jwt_service.JWTManager, patients authinterfaces.PatientRepositoryInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Получаем токен из заголовка
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		// Проверяем формат "Bearer <token>"
		tokenString, err := CheckBearerFormat(authHeader)
		if err != nil || strings.TrimSpace(tokenString) == "" {
			abortUnauthorized(c)
			return
		}

		// Проверяем подпись и срок действия, достаём subject
		sub, err := jwt.VerifyToken(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// Резолвим пациента; токен с несуществующим subject так же невалиден
		patient, err := patients.FindByID(c.Request.Context(), sub)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// Добавляем данные пациента в контекст
		c.Set(CurrentPatientKey, patient)
		c.Next()
	}
}

// abortUnauthorized - единственный способ отказа для всех веток
func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidToken.Error()})
}

// CheckBearerFormat достаёт токен из значения заголовка Authorization
func CheckBearerFormat(authHeader string) (string, error) {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:], nil
	}
	return "", errors.New("invalid authorization header format")
}

// CurrentPatient достаёт аутентифицированного пациента из контекста gin
func CurrentPatient(c *gin.Context) (*domain.Patient, bool) {
	value, exists := c.Get(CurrentPatientKey)
	if !exists {
		return nil, false
	}
	patient, ok := value.(*domain.Patient)
	return patient, ok
}
