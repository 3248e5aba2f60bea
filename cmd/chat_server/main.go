package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chatserver "github.com/NahiaEscalante/backend-mediagent/internal/chat_server"
	"github.com/NahiaEscalante/backend-mediagent/internal/core"
)

func main() {
	// Создаем корневой контекст
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем общие зависимости
	deps, err := core.InitDependencies(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}

	// Создаем HTTP-сервер
	server, err := chatserver.NewChatServer(ctx, deps.AppConfig.ServerConf, deps.AppConfig.CORSConf, deps.ChatHandler, deps.AuthMiddleware)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// создаём канал, который будет реагировать на системные сигналы
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Запуск сервера
	go func() {
		fmt.Printf("🚀 HTTP сервер backend-mediagent запускается на %s\n", deps.AppConfig.ServerConf.Addr())
		if err := server.Run(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Ожидание сигнала
	<-sigChan
	fmt.Println("\n🛑 Остановка сервера...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	// Останавливаем HTTP сервер (ждем текущие запросы)
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Закрываем зависимости при выходе
	if err := deps.Close(); err != nil {
		log.Printf("Error during resources closing: %v", err)
	}

	fmt.Println("👋 Сервер остановлен")
}
