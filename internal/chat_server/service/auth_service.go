// сервисный слой авторизации: проверка учётных данных и выдача access токена
package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	authinterfaces "github.com/NahiaEscalante/backend-mediagent/internal/auth_interfaces"
	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
	"github.com/NahiaEscalante/backend-mediagent/internal/jwt_service"
)

// маркер "симулированного" хэша в данных разработки
const simulatedHashMarker = "simulado"

// В разработке: хэши в pacientes.json симулированы. С этим паролем принимается
// логин любого пользователя, у которого в contrasena_hash есть маркер "simulado".
// Путь доступен только при включённом флаге AllowSimulatedHashes (ALLOW_SIMULATED_HASHES)
const devPasswordForSimulatedHash = "password123"

// описание интерфейса сервисного слоя авторизации
type AuthServiceInterface interface {
	ValidateCredentials(ctx context.Context, email, password string) (*domain.Patient, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// описание структуры сервисного слоя
type AuthService struct {
	patients             authinterfaces.PatientRepositoryInterface
	jwt                  jwt_service.JWTManager
	allowSimulatedHashes bool
}

// конструктор сервиса авторизации
func NewAuthService(patients authinterfaces.PatientRepositoryInterface, jwt jwt_service.JWTManager, allowSimulatedHashes bool) *AuthService {
	return &AuthService{
		patients:             patients,
		jwt:                  jwt,
		allowSimulatedHashes: allowSimulatedHashes,
	}
}

// ValidateCredentials проверяет почту и пароль против хранилища пациентов
// любой провал (нет пользователя, пустой хэш, неверный пароль, битый хэш)
// наружу отдаётся одной и той же ошибкой domain.ErrInvalidCredentials,
// чтобы по ответу нельзя было перечислять зарегистрированные почты
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	storedHash := strings.TrimSpace(patient.PasswordHash)
	if storedHash == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// обход для симулированных хэшей разработки: принимаем известный пароль
	if strings.Contains(strings.ToLower(storedHash), simulatedHashMarker) {
		if s.allowSimulatedHashes && password == devPasswordForSimulatedHash {
			return patient, nil
		}
		return nil, domain.ErrInvalidCredentials
	}

	// обычный путь: bcrypt; ошибку сравнения (в т.ч. битый хэш) не различаем
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return patient, nil
}

// Login проверяет учётные данные и выдаёт access токен с sub = ID пациента
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	patient, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := s.jwt.GenerateToken(patient.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}
