package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hackmate/assistant"
	"hackmate/config"
	"hackmate/knowledge"
	"hackmate/web/handlers"
	"hackmate/web/middleware"
)

type Server struct {
	router    *gin.Engine
	assistant *assistant.Assistant
	store     *knowledge.Store
	logger    *zap.Logger
	config    *config.Config
}

func NewServer(assistant *assistant.Assistant, store *knowledge.Store, logger *zap.Logger, config *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(logger))

	server := &Server{
		router:    router,
		assistant: assistant,
		store:     store,
		logger:    logger,
		config:    config,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	chatHandler := handlers.NewChatHandler(s.assistant, s.logger)
	knowledgeHandler := handlers.NewKnowledgeHandler(s.store, s.assistant.TagDetector(), s.logger)

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		MessagesPerMinute: s.config.RateLimitMessagesPerMin,
		BurstSize:         s.config.RateLimitBurstSize,
	}, s.logger)

	s.router.POST("/chat", middleware.RateLimit(rateLimiter), chatHandler.SendMessage)

	s.router.GET("/snippets", knowledgeHandler.Snippets)
	s.router.GET("/snippet/:id", knowledgeHandler.SnippetByID)
	s.router.GET("/resources", knowledgeHandler.Resources)
	s.router.GET("/faqs", knowledgeHandler.FAQs)
	s.router.GET("/quick-actions", knowledgeHandler.QuickActions)
	s.router.GET("/routing-config", knowledgeHandler.RoutingConfig)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
