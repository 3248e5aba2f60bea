// описание хэндлеров backend-mediagent
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/dto"
	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/service"
)

// описание интерфейса слоя хэндлеров
type ChatHandlerInterface interface {
	HealthHandler(c *gin.Context)
	LoginHandler(c *gin.Context)
	AgentChatHandler(c *gin.Context)
}

// структура хэндлера
type ChatHandler struct {
	authService service.AuthServiceInterface
	chatService service.ChatServiceInterface
}

// конструктор для слоя хэндлеров
func NewChatHandler(authService service.AuthServiceInterface, chatService service.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{
		authService: authService,
		chatService: chatService,
	}
}

// хэндлер проверки работоспособности сервиса
func (h *ChatHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// хэндлер логина: проверка учётных данных, в ответе access токен
// причина провала (нет пользователя / неверный пароль) наружу не различается
func (h *ChatHandler) LoginHandler(c *gin.Context) {
	// проверяем, есть ли в контексте валидированные данные
	validatedData, exists := c.Get("validatedData")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation data not found"})
		return
	}

	// Приведение типа с проверкой
	req, ok := validatedData.(*dto.LoginRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid request type"})
		return
	}

	// пробуем залогинить пациента и получить access токен
	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		code, apiErr := ToAPIError(err)
		c.JSON(code, gin.H{"error": apiErr.Message, "code": apiErr.Code})
		return
	}

	// формируем ответ для пользователя
	response := dto.LoginResponse{
		AccessToken: token,
	}

	c.JSON(http.StatusOK, response)
}
