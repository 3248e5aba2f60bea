// описание конфига для подключения к базе PostgresQL (альтернативный бэкенд хранилища)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// структура конфига для базы
type PostgresDBConfig struct {
	DSN string

	// настройки пула соединений
	MaxConns int32
	MinConns int32

	// настройки проверки здоровья соединений
	HealthCheckPeriod time.Duration
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration

	// таймаут установления соединения
	ConnectTimeout time.Duration
}

// NewPostgresDBConfigFromEnv создает конфиг PostgreSQL из переменных окружения
// Возвращает ошибку, если обязательные поля не заполнены или значения некорректны
func NewPostgresDBConfigFromEnv() (*PostgresDBConfig, error) {
	var problems []string

	// обязательные поля
	host, err := getRequiredEnv("DB_HOST")
	if err != nil {
		problems = append(problems, err.Error())
	}
	user, err := getRequiredEnv("DB_USER")
	if err != nil {
		problems = append(problems, err.Error())
	}
	password, err := getRequiredEnv("DB_PASSWORD")
	if err != nil {
		problems = append(problems, err.Error())
	}
	dbName, err := getRequiredEnv("DB_NAME")
	if err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(problems, ", "))
	}

	// опциональные поля со значениями по умолчанию
	port := getEnvWithDefault("DB_PORT", "5432")
	sslMode := getEnvWithDefault("DB_SSL_MODE", "disable")

	maxConns, err := getEnvAsInt32("DB_MAX_CONNS", 10)
	if err != nil {
		problems = append(problems, err.Error())
	}
	minConns, err := getEnvAsInt32("DB_MIN_CONNS", 2)
	if err != nil {
		problems = append(problems, err.Error())
	}
	if minConns > maxConns {
		problems = append(problems, fmt.Sprintf("DB_MIN_CONNS (%d) cannot be greater than DB_MAX_CONNS (%d)", minConns, maxConns))
	}

	healthCheckPeriod, err := getEnvAsDuration("DB_HEALTH_CHECK_PERIOD", 60*time.Second)
	if err != nil {
		problems = append(problems, err.Error())
	}
	maxConnLifetime, err := getEnvAsDuration("DB_MAX_CONN_LIFETIME", time.Hour)
	if err != nil {
		problems = append(problems, err.Error())
	}
	maxConnIdleTime, err := getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute)
	if err != nil {
		problems = append(problems, err.Error())
	}
	connectTimeout, err := getEnvAsDuration("DB_CONNECT_TIMEOUT", 5*time.Second)
	if err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration errors:\n%s", strings.Join(problems, "\n"))
	}

	return &PostgresDBConfig{
		DSN:               buildDSN(host, port, user, password, dbName, sslMode),
		MaxConns:          maxConns,
		MinConns:          minConns,
		HealthCheckPeriod: healthCheckPeriod,
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		ConnectTimeout:    connectTimeout,
	}, nil
}

// buildDSN собирает DSN строку из компонентов
func buildDSN(host, port, user, password, dbName, sslMode string) string {
	parts := []string{
		"host=" + host,
		"port=" + port,
		"user=" + user,
		"password=" + password,
		"dbname=" + dbName,
		"sslmode=" + sslMode,
	}
	return strings.Join(parts, " ")
}

// getRequiredEnv получает обязательную переменную окружения
func getRequiredEnv(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return val, nil
}

// getEnvWithDefault получает переменную окружения или значение по умолчанию
func getEnvWithDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// getEnvAsInt32 получает переменную окружения как int32
func getEnvAsInt32(key string, defaultValue int32) (int32, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue, nil
	}
	i, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: must be an integer, got %q", key, val)
	}
	return int32(i), nil
}

// getEnvAsDuration получает переменную окружения как time.Duration
// принимаем либо duration-строку ("1m", "1h"), либо число секунд
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return defaultValue, fmt.Errorf("%s: must be a duration (like '1m', '1h') or number of seconds, got %q", key, val)
		}
		d = time.Duration(i) * time.Second
	}
	return d, nil
}
