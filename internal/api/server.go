package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tantsuball/internal/config"
	"tantsuball/internal/database"
	"tantsuball/internal/handlers"
	"tantsuball/internal/inventory"
	"tantsuball/internal/messaging"
	"tantsuball/internal/metrics"
	"tantsuball/internal/middleware"
	"tantsuball/internal/repository"
	"tantsuball/internal/service"
	"tantsuball/internal/session"
)

// Server представляет HTTP сервер API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	sessions session.Store
	nats     *messaging.NATSClient
	services *service.Services
	repos    *repository.Repositories
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	// Загружаем стартовый набор данных
	inv, err := inventory.Load()
	if err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}

	// Создаем репозитории; пользователи и бронирования могут жить в Postgres
	var db *database.DB
	var repos *repository.Repositories
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err = database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.RunMigrations(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		repos = repository.NewRepositoriesWithDatabase(inv, db, cfg.MockLatency)
	default:
		repos = repository.NewRepositories(inv, cfg.MockLatency)
	}

	// Хранилище сессий
	sessions, err := session.NewStore(cfg.Session)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	// Подключаемся к NATS (опционально)
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}

	// Создаем сервисы
	services := service.NewServices(repos, sessions, natsClient)

	// Создаем роутер
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		sessions: sessions,
		nats:     natsClient,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

// setupRoutes настраивает все API роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)
	authRequired := middleware.SessionAuth(s.services.Auth)

	api := s.router.Group("/api")
	{
		// Auth endpoints
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Login)
			auth.POST("/register", h.Register)
			auth.POST("/logout", authRequired, h.Logout)
			auth.GET("/session", authRequired, h.Session)
		}

		// Catalog endpoints (public, read-only)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/partners", h.ListPartners)
		api.GET("/partners/:id", h.GetPartner)
		api.GET("/dances", h.ListDances)

		// Booking workflow endpoints
		wf := api.Group("/workflow")
		wf.Use(authRequired)
		{
			wf.GET("", h.GetWorkflow)
			wf.POST("/dance", h.ChooseDance)
			wf.POST("/partner", h.ChoosePartner)
			wf.POST("/skip", h.SkipPartner)
			wf.POST("/back", h.WorkflowBack)
			wf.POST("/confirm", h.ConfirmBooking)
			wf.DELETE("", h.AbandonWorkflow)
		}

		// Bookings endpoints
		bookings := api.Group("/bookings")
		bookings.Use(authRequired)
		{
			bookings.GET("", h.ListBookings)
			bookings.PATCH("/cancel", h.CancelBooking)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "tantsuball-api",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup закрывает соединения
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
		}
	}

	if s.sessions != nil {
		if err := s.sessions.Close(); err != nil {
			log.Printf("Error closing session store: %v", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
			return err
		}
	}

	return nil
}
