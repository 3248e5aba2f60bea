package authinterfaces

import (
	"context"

	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
)

// интерфейс хранилища пациентов для ядра авторизации
// обе операции read-only; "не найдено" - это domain.ErrPatientNotFound
type PatientRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*domain.Patient, error)
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
}

// интерфейс справочных данных клиники (для контекста агента)
// недоступный или битый источник - это просто пустые списки, не ошибка
type DirectoryRepositoryInterface interface {
	GetDoctors(ctx context.Context) []map[string]any
	GetSpecialties(ctx context.Context) []map[string]any
	GetLocations(ctx context.Context) []map[string]any
	GetLocationSpecialties(ctx context.Context) []map[string]any
	GetSchedules(ctx context.Context) []map[string]any
}
