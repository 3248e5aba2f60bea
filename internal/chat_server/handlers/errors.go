package handlers

import (
	"errors"
	"net/http"

	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
)

type APIError struct {
	Code    string `json:"code"`    // для фронтенда: "INVALID_CREDENTIALS"
	Message string `json:"message"` // для пользователя
}

// функция-маппер для формирования нужного результата в зависимости от типа ошибки
// обе ошибки авторизации намеренно не детализируются: сообщение фиксированное,
// независимо от того, какая именно проверка провалилась
func ToAPIError(err error) (int, APIError) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, APIError{
			Code:    "INVALID_CREDENTIALS",
			Message: domain.ErrInvalidCredentials.Error(),
		}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, APIError{
			Code:    "INVALID_TOKEN",
			Message: domain.ErrInvalidToken.Error(),
		}
	default:
		return http.StatusInternalServerError, APIError{
			Code:    "INTERNAL_ERROR",
			Message: "Something went wrong",
		}
	}
}
