// сервисный слой чата: минимальный интерфейс для агента ИИ
//
// Пока возвращается заглушка. Когда сервис ИИ будет доступен, заменить
// реализацию на HTTP вызов (или SDK), который отправит prompt вместе с
// собранным контекстом и распарсит ответ в (reply, requiresReview).
// Сигнатура метода сохраняется, чтобы не менять хэндлер.
package service

import (
	"context"

	authinterfaces "github.com/NahiaEscalante/backend-mediagent/internal/auth_interfaces"
	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
)

const stubAgentReply = "Gracias por tu mensaje. Este es un asistente de prueba. " +
	"Cuando se conecte el servicio de IA, aquí recibirás una respuesta personalizada."

// описание интерфейса сервисного слоя чата
type ChatServiceInterface interface {
	GetAgentReply(ctx context.Context, prompt, conversationID string, patient *domain.Patient) (string, bool, error)
}

// AgentContext - контекст, который будет передаваться сервису ИИ вместе с prompt
type AgentContext struct {
	Patient             *domain.Patient
	ConversationID      string
	Doctors             []map[string]any
	Specialties         []map[string]any
	Locations           []map[string]any
	LocationSpecialties []map[string]any
	Schedules           []map[string]any
}

// описание структуры сервисного слоя чата
type ChatService struct {
	directory authinterfaces.DirectoryRepositoryInterface
}

// конструктор сервиса чата
func NewChatService(directory authinterfaces.DirectoryRepositoryInterface) *ChatService {
	return &ChatService{
		directory: directory,
	}
}

// GetAgentReply возвращает (reply, requiresReview, error)
//
// Текущая заглушка: фиксированный ответ. Контекст для агента уже собирается,
// чтобы контракт с будущим сервисом ИИ был зафиксирован.
// TODO: подключить здесь внешний сервис ИИ (отправить prompt + agentContext, получить ответ)
func (s *ChatService) GetAgentReply(ctx context.Context, prompt, conversationID string, patient *domain.Patient) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	agentContext := &AgentContext{
		Patient:             patient,
		ConversationID:      conversationID,
		Doctors:             s.directory.GetDoctors(ctx),
		Specialties:         s.directory.GetSpecialties(ctx),
		Locations:           s.directory.GetLocations(ctx),
		LocationSpecialties: s.directory.GetLocationSpecialties(ctx),
		Schedules:           s.directory.GetSchedules(ctx),
	}

	_ = prompt
	_ = agentContext

	return stubAgentReply, false, nil
}
