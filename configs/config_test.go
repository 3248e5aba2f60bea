package configs

import (
	"testing"
	"time"
)

// сбрасываем все переменные, влияющие на конфиг
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES", "CORS_ORIGINS",
		"BD_DIR", "PATIENTS_CACHE_TTL_SECONDS", "ALLOW_SIMULATED_HASHES",
		"SERVER_CONFIG_PATH", "STORAGE_BACKEND",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.DataDir != "bd" {
			t.Errorf("expected bd, got %q", cfg.DataDir)
		}
		if cfg.CacheTTL != 0 {
			t.Errorf("expected zero cache TTL, got %v", cfg.CacheTTL)
		}
		// обход симулированных хэшей по умолчанию выключен
		if cfg.AllowSimulatedHashes {
			t.Error("AllowSimulatedHashes must default to false")
		}
		if cfg.StorageBackend != StorageBackendJSON {
			t.Errorf("expected json backend, got %q", cfg.StorageBackend)
		}
		if cfg.JWTConf.AccessTokenExp != 60*time.Minute {
			t.Errorf("expected 60m token expiry, got %v", cfg.JWTConf.AccessTokenExp)
		}
	})

	t.Run("значения из окружения", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("BD_DIR", "/tmp/datos")
		t.Setenv("PATIENTS_CACHE_TTL_SECONDS", "30")
		t.Setenv("ALLOW_SIMULATED_HASHES", "true")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
		t.Setenv("CORS_ORIGINS", "*")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.DataDir != "/tmp/datos" {
			t.Errorf("expected /tmp/datos, got %q", cfg.DataDir)
		}
		if cfg.CacheTTL != 30*time.Second {
			t.Errorf("expected 30s cache TTL, got %v", cfg.CacheTTL)
		}
		if !cfg.AllowSimulatedHashes {
			t.Error("expected AllowSimulatedHashes to be enabled")
		}
		if cfg.JWTConf.AccessTokenExp != 15*time.Minute {
			t.Errorf("expected 15m token expiry, got %v", cfg.JWTConf.AccessTokenExp)
		}
		if !cfg.CORSConf.AllowAny() {
			t.Error("expected wildcard CORS config")
		}
	})

	t.Run("неизвестный бэкенд хранилища", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("STORAGE_BACKEND", "mongodb")

		if _, err := LoadConfig(); err == nil {
			t.Error("expected error for unknown storage backend")
		}
	})

	t.Run("битый TTL кэша", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("PATIENTS_CACHE_TTL_SECONDS", "-5")

		if _, err := LoadConfig(); err == nil {
			t.Error("expected error for negative cache TTL")
		}
	})

	t.Run("postgres бэкенд требует настройки базы", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("STORAGE_BACKEND", "postgres")
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "")
		t.Setenv("DB_NAME", "")

		if _, err := LoadConfig(); err == nil {
			t.Error("expected error when postgres settings are missing")
		}
	})
}
