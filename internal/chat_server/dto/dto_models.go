// описание моделей запросов и ответов backend-mediagent
package dto

// структура запроса для логина пациента
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// структура ответа на запрос login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// структура запроса к агенту
type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// структура ответа агента
type ChatResponse struct {
	Reply          string `json:"reply"`
	RequiresReview bool   `json:"requires_review"`
}
