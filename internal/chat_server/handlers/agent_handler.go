package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/dto"
	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
	"github.com/NahiaEscalante/backend-mediagent/internal/middleware"
)

// хэндлер чата с агентом: принимает сообщение пациента,
// в ответе - ответ агента и флаг, требуется ли ручная проверка
// маршрут защищён AuthMiddleware, пациент приходит из контекста
func (h *ChatHandler) AgentChatHandler(c *gin.Context) {
	validatedData, exists := c.Get("validatedData")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation data not found"})
		return
	}

	req, ok := validatedData.(*dto.ChatRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid request type"})
		return
	}

	// достаём аутентифицированного пациента; без него запрос сюда не доходит
	patient, ok := middleware.CurrentPatient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidToken.Error()})
		return
	}

	reply, requiresReview, err := h.chatService.GetAgentReply(c.Request.Context(), req.Message, req.ConversationID, patient)
	if err != nil {
		code, apiErr := ToAPIError(err)
		c.JSON(code, gin.H{"error": apiErr.Message, "code": apiErr.Code})
		return
	}

	response := dto.ChatResponse{
		Reply:          reply,
		RequiresReview: requiresReview,
	}

	c.JSON(http.StatusOK, response)
}
