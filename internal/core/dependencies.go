package core

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/NahiaEscalante/backend-mediagent/configs"
	authinterfaces "github.com/NahiaEscalante/backend-mediagent/internal/auth_interfaces"
	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/handlers"
	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/repository"
	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/service"
	"github.com/NahiaEscalante/backend-mediagent/internal/jwt_service"
	"github.com/NahiaEscalante/backend-mediagent/internal/middleware"
	postgresdb "github.com/NahiaEscalante/backend-mediagent/internal/postgres_db"
)

// Dependencies содержит все общие зависимости backend-mediagent
type ChatServiceDependencies struct {
	AppConfig      *configs.AppConfig
	ChatHandler    handlers.ChatHandlerInterface
	AuthMiddleware gin.HandlerFunc

	jsonRepo *repository.PatientJSONRepository
	pgRepo   *postgresdb.PgRepo
}

// InitDependencies инициализирует общие зависимости
func InitDependencies(ctx context.Context) (*ChatServiceDependencies, error) {
	// Получаем конфигурацию
	conf, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	deps := &ChatServiceDependencies{
		AppConfig: conf,
	}

	// репозиторий JSON файлов нужен всегда: даже при postgres-бэкенде
	// справочные данные для агента читаются из плоских файлов
	jsonRepo, err := repository.NewPatientJSONRepository(conf.DataDir, conf.CacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create json repository: %w", err)
	}
	deps.jsonRepo = jsonRepo

	// выбираем хранилище пациентов по конфигу
	var patients authinterfaces.PatientRepositoryInterface = jsonRepo
	if conf.StorageBackend == configs.StorageBackendPostgres {
		pgRepo, err := postgresdb.NewPgRepo(ctx, conf.PostgresDBConf)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		deps.pgRepo = pgRepo
		patients = repository.NewPatientDBRepository(postgresdb.NewPoolAdapter(pgRepo.GetPool()))
	}

	// сервис токенов
	jwtService := jwt_service.NewJWTService(conf.JWTConf)

	// сервис авторизации
	authService := service.NewAuthService(patients, jwtService, conf.AllowSimulatedHashes)

	// сервис чата (заглушка агента + сборка контекста из справочников)
	chatService := service.NewChatService(jsonRepo)

	// хэндлеры и auth middleware для защищённых маршрутов
	deps.ChatHandler = handlers.NewChatHandler(authService, chatService)
	deps.AuthMiddleware = middleware.AuthMiddleware(jwtService, patients)

	return deps, nil
}

// Close закрывает зависимости при выходе
func (d *ChatServiceDependencies) Close() error {
	if d.jsonRepo != nil {
		d.jsonRepo.Close()
	}
	if d.pgRepo != nil {
		d.pgRepo.Close()
	}
	return nil
}
