package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"volair/internal/auth"
	"volair/internal/config"
	"volair/internal/handlers"
	"volair/internal/logger"
	"volair/internal/messaging"
	"volair/internal/middleware"
	"volair/internal/repository"
	"volair/internal/service"
)

// Server wires the HTTP API together: store, repositories, services,
// middleware and routes
type Server struct {
	router   *gin.Engine
	config   *config.Config
	nats     *messaging.NATSClient
	services *service.Services
	repos    *repository.Repositories
	tokens   *auth.TokenManager
}

// NewServer builds a fully wired server from the configuration
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	// The single in-memory store; everything lives for the process
	// lifetime only
	store := repository.NewStore()
	store.SeedCatalog()

	natsClient, err := messaging.Connect(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	repos := repository.NewRepositories(store)
	tokens := auth.NewTokenManager(cfg.Auth)
	services := service.NewServices(repos, tokens, cfg.Auth, natsClient)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		nats:     natsClient,
		services: services,
		repos:    repos,
		tokens:   tokens,
	}

	server.setupRoutes()

	return server
}

// setupRoutes registers the API surface
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)
	authRequired := middleware.BearerAuth(s.tokens)

	api := s.router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
			authGroup.GET("/profile", authRequired, h.Profile)
		}

		flights := api.Group("/flights")
		{
			flights.GET("", h.ListFlights)
			flights.GET("/:id", h.GetFlight)
			flights.GET("/:id/:field", h.FlightSearchIndex)
		}

		bookings := api.Group("/bookings", authRequired)
		{
			bookings.GET("", h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.POST("", h.CreateBooking)
			bookings.PUT("/:id", h.UpdateBooking)
			bookings.DELETE("/:id", h.CancelBooking)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/api-docs", s.apiDocs)
	s.router.GET("/api-docs/openapi.json", s.openAPISpec)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "volair-api",
		"version": "1.0.0",
	})
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter returns the router for testing
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes external connections
func (s *Server) Cleanup() error {
	if err := s.nats.Close(); err != nil {
		return fmt.Errorf("failed to close NATS connection: %w", err)
	}
	return nil
}
