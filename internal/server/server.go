// Package server contains HTTP and WebSocket handlers for the portfolio API.
package server

import (
	"context"
	"fmt"
	"time"

	"aurafolio/internal/cache"
	"aurafolio/internal/config"
	"aurafolio/internal/database"
	"aurafolio/internal/middleware"
	"aurafolio/internal/realtime"
	"aurafolio/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	store          *storage.Store
	broker         *realtime.Broker
	promMiddleware *fiberprometheus.FiberPrometheus
	adminHash      []byte
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc
}

// NewServer creates a server instance, connecting to the database and Redis.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}

	broker := realtime.NewBroker(redisClient)
	shutdownCtx, shutdownFn := context.WithCancel(context.Background())

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		store:          storage.New(db, broker),
		broker:         broker,
		promMiddleware: middleware.InitMetrics("aurafolio-api"),
		adminHash:      hash,
		shutdownCtx:    shutdownCtx,
		shutdownFn:     shutdownFn,
	}

	return server, nil
}

// Store exposes the domain facade, mainly for bootstrap and tests.
func (s *Server) Store() *storage.Store {
	return s.store
}

// Broker exposes the change-event broker.
func (s *Server) Broker() *realtime.Broker {
	return s.broker
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        200,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health", s.HealthCheck)
	api.Get("/", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth
	api.Post("/auth/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public content reads
	api.Get("/projects", s.GetProjects)
	api.Get("/posts", s.GetPosts)
	api.Get("/videos", s.GetVideos)
	api.Get("/certificates", s.GetCertificates)
	api.Get("/jobs", s.GetJobs)
	api.Get("/reviews", s.GetReviews)
	api.Get("/qas", s.GetQAs)
	api.Get("/settings", s.GetSettings)

	// Public visitor submissions
	api.Post("/contact", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "contact"), s.SubmitContact)
	api.Post("/aura/lead", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "aura_lead"), s.AuraSubmitInfo)
	api.Post("/newsletter", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "newsletter"), s.AddNewsletterSubscription)

	// Change feed (token checked in the upgrade handler)
	s.setupWebsocketRoutes(app)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthRequired)

	admin.Get("/analytics", s.GetAnalytics)
	admin.Put("/settings", s.UpdateSettings)

	admin.Post("/projects", s.AddProject)
	admin.Put("/projects/:id", s.UpdateProject)
	admin.Delete("/projects/:id", s.DeleteProject)

	admin.Post("/posts", s.AddPost)
	admin.Put("/posts/:id", s.UpdatePost)
	admin.Delete("/posts/:id", s.DeletePost)

	admin.Post("/videos", s.AddVideo)
	admin.Put("/videos/:id", s.UpdateVideo)
	admin.Delete("/videos/:id", s.DeleteVideo)

	admin.Post("/certificates", s.AddCertificate)
	admin.Delete("/certificates/:id", s.DeleteCertificate)

	admin.Post("/jobs", s.AddJob)
	admin.Put("/jobs/:id", s.UpdateJob)
	admin.Delete("/jobs/:id", s.DeleteJob)

	admin.Post("/reviews", s.AddReview)
	admin.Delete("/reviews/:id", s.DeleteReview)

	admin.Post("/qas", s.AddQA)
	admin.Put("/qas/:id", s.UpdateQA)
	admin.Delete("/qas/:id", s.DeleteQA)

	admin.Get("/messages", s.GetMessages)
	admin.Post("/messages", s.AddMessage)
	admin.Put("/messages/:id", s.UpdateMessage)
	admin.Delete("/messages/:id", s.DeleteMessage)

	admin.Get("/newsletter", s.GetNewsletterSubscriptions)
	admin.Delete("/newsletter/:id", s.DeleteNewsletterSubscription)
}

// HealthCheck reports service health.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":  "ok",
		"service": "aurafolio-api",
	}

	if sqlDB, err := s.db.DB(); err != nil || sqlDB.Ping() != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}

	if s.redis != nil {
		if err := s.redis.Ping(c.Context()).Err(); err != nil {
			status["cache"] = "unreachable"
		}
	}

	return c.JSON(status)
}

// Start wires the change feed and begins serving on the configured port.
func (s *Server) Start(app *fiber.App) error {
	if err := s.broker.StartWiring(s.shutdownCtx); err != nil {
		return fmt.Errorf("starting change feed: %w", err)
	}
	return app.Listen(":" + s.config.Port)
}

// Shutdown releases broker subscriptions and background goroutines.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownFn()
	return s.broker.Shutdown(ctx)
}
