package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nafisnihal/product-management-backend/internal/auth"
	"github.com/nafisnihal/product-management-backend/internal/config"
	"github.com/nafisnihal/product-management-backend/internal/products"
	"github.com/nafisnihal/product-management-backend/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	router          *gin.Engine
	db              *gorm.DB
	config          *config.Config
	logger          zerolog.Logger
	validator       *validator.Validate
	codec           *auth.Codec
	verifier        auth.Verifier
	transport       *auth.CookieTransport
	productsService *products.Service
	version         string
}

// New creates a new server instance
func New(cfg *config.Config, zlog zerolog.Logger, version string) (*Server, error) {
	// Open the process-wide storage handle. The auth path never uses it;
	// it backs the product catalog only.
	db, err := storage.Open(cfg, zlog)
	if err != nil {
		return nil, err
	}

	codec, err := auth.NewCodec([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}
	if cfg.Auth.EphemeralSecret {
		zlog.Warn().Msg("JWT_SECRET not set - using a random per-process secret, sessions will not survive a restart")
	}

	// Initialize validator
	validate := validator.New()
	validate.RegisterValidation("productstatus", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || value == "active" || value == "inactive"
	})

	server := &Server{
		db:              db,
		config:          cfg,
		logger:          zlog,
		validator:       validate,
		codec:           codec,
		verifier:        auth.NewStaticVerifier(auth.DemoAccount),
		transport:       auth.NewCookieTransport(cfg.Policy.Cookie),
		productsService: products.NewService(db, zlog),
		version:         version,
	}

	// Setup router
	server.setupRouter()

	return server, nil
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()

	// Add middleware
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	// CORS middleware. The allow list comes from the deployment policy:
	// local frontend ports in development, exactly the configured
	// frontend origin in production. Credentials must be allowed for the
	// session cookie to travel cross-origin.
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.Policy.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Cookie"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public endpoints (no auth required)
	s.router.GET("/", s.index)
	s.router.GET("/api/health", s.healthCheck)
	s.router.POST("/api/auth/login", s.login)
	s.router.POST("/api/auth/logout", s.logout)

	// Authenticated API routes (session cookie required)
	api := s.router.Group("/api")
	api.Use(SessionAuthMiddleware(s.transport, s.codec, s.logger))
	{
		api.GET("/auth/verify", s.verifyAuth)

		// Product catalog
		api.GET("/products", s.listProducts)
		api.POST("/products", s.createProduct)
		api.GET("/products/:id", s.getProduct)
		api.PUT("/products/:id", s.updateProduct)
		api.DELETE("/products/:id", s.deleteProduct)
	}

	// Every unmatched route gets the same envelope
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

func (s *Server) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product Management API is running",
		"version": s.version,
		"endpoints": gin.H{
			"health": "/api/health",
			"auth":   "/api/auth/*",
		},
	})
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Server is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": s.config.Environment(),
	})
}

// Handler exposes the configured router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until shutdown
func (s *Server) Start() error {
	addr := ":" + s.config.Server.Port

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		s.logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	s.logger.Info().Msg("Received shutdown signal, shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Error shutting down HTTP server")
		return err
	}

	// Close database connection to flush WAL writes
	if sqlDB, err := s.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Error closing database")
		}
	}

	s.logger.Info().Msg("Server shutdown complete")
	return nil
}
