// описание общего конфига для backend-mediagent
package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/NahiaEscalante/backend-mediagent/internal/config"
	"github.com/NahiaEscalante/backend-mediagent/internal/jwt_service"
)

// бэкенды хранилища пациентов
const (
	StorageBackendJSON     = "json"
	StorageBackendPostgres = "postgres"
)

type AppConfig struct {
	ServerConf *config.ServerConfig
	CORSConf   *config.CORSConfig
	JWTConf    *jwt_service.JWTConfig

	DataDir  string        // каталог с JSON файлами (bd/)
	CacheTTL time.Duration // TTL кэша файлов; 0 = читать заново на каждый вызов

	// явный флаг для обхода "симулированных" хэшей; по умолчанию выключен,
	// включать только в окружениях разработки без настоящих хэшей
	AllowSimulatedHashes bool

	StorageBackend string                   // "json" (по умолчанию) или "postgres"
	PostgresDBConf *config.PostgresDBConfig // заполняется только для postgres
}

// загружаем конфиг-данные: сначала .env (опционально), потом переменные окружения
func LoadConfig() (*AppConfig, error) {
	// .env может отсутствовать (например, в контейнере всё задано окружением)
	_ = godotenv.Load()

	// загружаем данные из .yml файла для serverConfig (путь опционален)
	serverConf, err := config.LoadYAMLConfig(os.Getenv("SERVER_CONFIG_PATH"), config.UseDefaultServerConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading server config: %w", err)
	}

	// конфиг токенов из окружения
	jwtConf, err := jwt_service.LoadJWTConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("error during loading JWT config: %w", err)
	}

	// CORS из окружения
	corsConf := config.NewCORSConfigFromEnv()

	// каталог данных
	dataDir := os.Getenv("BD_DIR")
	if dataDir == "" {
		dataDir = "bd"
	}

	// TTL кэша файлов (в секундах)
	cacheTTL := time.Duration(0)
	if raw := os.Getenv("PATIENTS_CACHE_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("PATIENTS_CACHE_TTL_SECONDS must be a non-negative integer, got %q", raw)
		}
		cacheTTL = time.Duration(seconds) * time.Second
	}

	// обход симулированных хэшей выключен, пока явно не включён
	allowSimulated := false
	if raw := os.Getenv("ALLOW_SIMULATED_HASHES"); raw != "" {
		allowSimulated, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("ALLOW_SIMULATED_HASHES must be a boolean, got %q", raw)
		}
	}

	// выбор бэкенда хранилища
	storageBackend := os.Getenv("STORAGE_BACKEND")
	if storageBackend == "" {
		storageBackend = StorageBackendJSON
	}

	appConfig := &AppConfig{
		ServerConf:           serverConf,
		CORSConf:             corsConf,
		JWTConf:              jwtConf,
		DataDir:              dataDir,
		CacheTTL:             cacheTTL,
		AllowSimulatedHashes: allowSimulated,
		StorageBackend:       storageBackend,
	}

	switch storageBackend {
	case StorageBackendJSON:
		// ничего дополнительно не нужно
	case StorageBackendPostgres:
		pgConf, err := config.NewPostgresDBConfigFromEnv()
		if err != nil {
			return nil, fmt.Errorf("error during loading postgres config: %w", err)
		}
		appConfig.PostgresDBConf = pgConf
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (expected %q or %q)", storageBackend, StorageBackendJSON, StorageBackendPostgres)
	}

	return appConfig, nil
}
