package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"startconnect/internal/cache"
	"startconnect/internal/config"
	"startconnect/internal/database"
	"startconnect/internal/database/migration"
	handlers "startconnect/internal/http/handler"
	"startconnect/internal/http/middleware"
	"startconnect/internal/identity"
	"startconnect/internal/jobs"
	"startconnect/internal/logger"
	appotel "startconnect/internal/otel"
	"startconnect/internal/repository/postgres"
	"startconnect/internal/service"
	"startconnect/internal/storage"
)

// @title						Start&Connect API
// @version					1.0
// @description				Sports and social platform API: users, groups, centers and court bookings.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := logger.LoadLocation(cfg.TimeZone)
	log := logger.Setup(cfg.LogLevel, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := appotel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := database.RegisterPoolMetrics(reg, db, cfg.Database.Name); err != nil {
		log.WithError(err).Fatal("failed to register pool metrics")
	}
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register http metrics")
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize object storage")
	}

	nearby, closeCache, err := cache.New(ctx, cfg.Redis, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize cache")
	}
	defer closeCache()

	signer := identity.NewPasswordSigner(cfg.Firebase.AuthEndpoint, cfg.Firebase.WebAPIKey, nil)
	idp, err := identity.NewFirebase(ctx, cfg.Firebase, signer)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize identity provider")
	}

	// Repositories
	tx := postgres.NewTxManager(db)
	userRepo := postgres.NewUserPostgres(db)
	groupRepo := postgres.NewGroupPostgres(db)
	postRepo := postgres.NewPostPostgres(db)
	requestRepo := postgres.NewGroupRequestPostgres(db)
	hobbyRepo := postgres.NewHobbyPostgres(db)
	contactRepo := postgres.NewContactPostgres(db)
	centerRepo := postgres.NewCenterPostgres(db)
	bookingRepo := postgres.NewBookingPostgres(db)

	// Services
	groupSvc := service.NewGroupService(tx, groupRepo, postRepo, objStore)
	userSvc := service.NewUserService(userRepo, groupSvc, idp, objStore)
	requestSvc := service.NewGroupRequestService(tx, groupRepo, requestRepo)
	bookingSvc := service.NewBookingService(tx, centerRepo, bookingRepo, loc)
	svcs := handlers.Services{
		Auth:     service.NewAuthService(idp, userRepo),
		Users:    userSvc,
		Groups:   groupSvc,
		Requests: requestSvc,
		Hobbies:  service.NewHobbyService(tx, hobbyRepo),
		Contacts: service.NewContactService(contactRepo),
		Centers:  service.NewCenterService(centerRepo, bookingRepo, nearby, loc),
		Bookings: bookingSvc,
		Admin:    service.NewAdminService(userRepo, groupRepo, bookingRepo, centerRepo, userSvc, idp),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    storage.MaxImageSize + 1<<20,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, 10*time.Minute)
	go limiter.Run(ctx, time.Minute)

	handlers.RegisterRoutes(app, db, svcs, idp, limiter.Handler())

	var sched *jobs.Scheduler
	if cfg.Jobs.Enabled {
		sched, err = jobs.New(cfg.Jobs, bookingSvc, requestSvc, log, loc)
		if err != nil {
			log.WithError(err).Fatal("failed to schedule jobs")
		}
		sched.Start()
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("http shutdown")
		}
	}()

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("listening")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Error("failed to start server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			log.WithError(err).Warn("jobs did not stop in time")
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("tracing shutdown")
	}
}
