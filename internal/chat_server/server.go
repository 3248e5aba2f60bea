// описание HTTP сервера backend-mediagent
package chatserver

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/dto"
	"github.com/NahiaEscalante/backend-mediagent/internal/chat_server/handlers"
	"github.com/NahiaEscalante/backend-mediagent/internal/config"
	"github.com/NahiaEscalante/backend-mediagent/internal/middleware"
)

// структура HTTP сервера
type ChatServer struct {
	httpServer *http.Server
	router     *gin.Engine
	config     *config.ServerConfig
	Handler    handlers.ChatHandlerInterface
	authMW     gin.HandlerFunc
}

// Конструктор для сервера
func NewChatServer(ctx context.Context, serverConf *config.ServerConfig, corsConf *config.CORSConfig, handler handlers.ChatHandlerInterface, authMW gin.HandlerFunc) (*ChatServer, error) {
	// создаём экземпляр роутера
	router := gin.Default()
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil, err
	}

	// Добавляем middleware для проброса request id в контекст
	router.Use(func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), "request_id", c.GetHeader("X-Request-ID"))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.Use(middleware.CORSMiddleware(corsConf)) // CORS политика для всех маршрутов

	return &ChatServer{
		router:  router,
		config:  serverConf,
		Handler: handler,
		authMW:  authMW,
	}, nil
}

// Метод для маршрутизации сервера
func (s *ChatServer) SetUpRoutes() {
	s.router.GET("/health", s.Handler.HealthHandler)

	// логин: валидация тела запроса, в ответе access токен
	auth := s.router.Group("/auth")
	auth.POST("/login", middleware.ValidateRequestMiddleware(&dto.LoginRequest{}), s.Handler.LoginHandler)

	// защищённые эндпоинты агента
	agent := s.router.Group("/agent")
	agent.Use(s.authMW)
	agent.POST("/chat", middleware.ValidateRequestMiddleware(&dto.ChatRequest{}), s.Handler.AgentChatHandler)
}

// Метод для запуска сервера
func (s *ChatServer) Run() error {
	s.SetUpRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Addr(),
		Handler:        s.router,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	log.Printf("Starting HTTP server on %s", s.config.Addr())
	return s.httpServer.ListenAndServe()
}

// Метод для graceful shutdown
func (s *ChatServer) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server shutdown completed")
	return nil
}

// Router отдаёт роутер (используется в тестах сервера)
func (s *ChatServer) Router() *gin.Engine {
	return s.router
}
