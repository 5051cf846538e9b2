package routes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/promptgen/promptgen/internal/auth"
	"github.com/promptgen/promptgen/internal/config"
	"github.com/promptgen/promptgen/internal/jobs"
	"github.com/promptgen/promptgen/internal/middleware"
	"github.com/promptgen/promptgen/internal/notification"
	"github.com/promptgen/promptgen/internal/payments"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(newCORS(d.Cfg))
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	var jobRepo jobs.Repository
	if d.DB != nil {
		pgRepo := jobs.NewPostgresRepository(d.DB)
		if err := pgRepo.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("ensure jobs schema: %w", err)
		}
		jobRepo = pgRepo
	} else {
		jobRepo = jobs.NewMemoryRepository()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	jobSvc := jobs.NewService(jobRepo, notifier)
	authSvc := auth.NewService(d.Cfg)
	paymentSvc := payments.NewService(d.Cfg.PaymentBaseURL)

	authHandler := auth.NewHandler(authSvc)
	jobHandler := jobs.NewHandler(jobSvc)
	paymentHandler := payments.NewHandler(paymentSvc)

	// Public routes
	rateLimiter := middleware.AuthRateLimit(d.Cache, d.Cfg.AuthPerMinute)
	RegisterAuthRoutes(app, authHandler, rateLimiter)

	// Protected routes
	gate := middleware.BearerAuth(d.Cfg)
	protected := app.Group("", gate)
	if d.Cache != nil {
		protected.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}
	RegisterJobRoutes(protected, jobHandler)
	RegisterPaymentRoutes(protected, paymentHandler)

	// Built web front end, when deployed alongside the API.
	if d.Cfg.WebAppDir != "" {
		app.Static("/", d.Cfg.WebAppDir)
	}

	return nil
}

// newCORS mirrors the permissive reference setup. Credentials are only
// allowed with an explicit origin list; a wildcard with credentials is
// rejected by Fiber and by browsers alike.
func newCORS(cfg config.Config) fiber.Handler {
	corsCfg := cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
		AllowMethods: "GET, POST, HEAD, OPTIONS",
	}
	if cfg.CORSAllowOrigins != "*" {
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}
