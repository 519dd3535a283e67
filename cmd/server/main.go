package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"team-showcase.backend/internal/config"
	"team-showcase.backend/internal/infrastructure/jobs"
	"team-showcase.backend/internal/infrastructure/seed"
	"team-showcase.backend/internal/infrastructure/storage"
	"team-showcase.backend/internal/interfaces/http/handlers"
	"team-showcase.backend/internal/interfaces/http/middleware"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
	"team-showcase.backend/pkg/jwt"
	"team-showcase.backend/pkg/logger"
	"team-showcase.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openStore       = storage.Open
	seedStore       = seed.Apply
	newSessionStore = redis.NewSessionStore
	runServer       = func(srv *http.Server) error { return srv.ListenAndServe() }
	metricsRegistry = prometheus.DefaultRegisterer
	metricsGatherer = prometheus.DefaultGatherer
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	if err := cfg.Admin.Validate(); err != nil {
		return fmt.Errorf("invalid admin config: %w", err)
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional: without it admin tokens are stateless and idempotency is off.
	if cfg.Redis.Enabled() {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()
		logger.Info(context.Background(), "Redis initialized")
	} else {
		logger.Warn(context.Background(), "REDIS_URL not set, admin sessions and idempotency disabled")
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	response.Configure(cfg.Server.ResponseEnvelope, cfg.Server.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn(closeCtx, "Failed to close store", zap.Error(err))
		}
	}()

	if err := store.Ping(ctx); err != nil {
		logger.Warn(ctx, "Store not reachable, endpoints will return errors", zap.String("store", store.Name()), zap.Error(err))
	} else {
		logger.Info(ctx, "Store connected", zap.String("store", store.Name()))
	}

	if cfg.Store.SeedData {
		res, err := seedStore(ctx, store)
		if err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
		logger.Info(ctx, "Seed data applied", zap.Int("members", res.Members), zap.Int("achievements", res.Achievements))
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Left as a nil interface when Redis is off so the usecase skips session tracking.
	var sessions usecases.AdminSessionStore
	if redis.Enabled() {
		sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		sessions = sessionStore
	}

	// Initialize usecases
	profileUsecase := usecases.NewTeamProfileUsecase(store.Profiles())
	memberUsecase := usecases.NewMemberUsecase(store.Members())
	achievementUsecase := usecases.NewAchievementUsecase(store.Achievements())
	applicationUsecase := usecases.NewApplicationUsecase(store.Applications())
	statsUsecase := usecases.NewStatsUsecase(store)
	adminAuthUsecase := usecases.NewAdminAuthUsecase(cfg.Admin, jwtService, sessions)

	// The job is cancelled and drained before the deferred store close runs.
	jobCtx, stopJobs := context.WithCancel(ctx)
	healthJob := jobs.NewStoreHealthJob(store, cfg.Store.HealthInterval, metricsRegistry)
	go healthJob.Start(jobCtx)
	defer func() {
		stopJobs()
		healthJob.Stop()
	}()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.NewMetrics(metricsRegistry).Middleware())
	applyCORSMiddleware(r, cfg.Server.CORSOrigin)
	r.Use(middleware.BodyLimitMiddleware(cfg.Server.MaxBodyBytes))

	registerMetricsRoute(r, metricsGatherer)
	registerNotFound(r)
	registerAPIRoutes(r, routeDeps{
		profileHandler:     handlers.NewTeamProfileHandler(profileUsecase),
		memberHandler:      handlers.NewMemberHandler(memberUsecase),
		achievementHandler: handlers.NewAchievementHandler(achievementUsecase),
		applicationHandler: handlers.NewApplicationHandler(applicationUsecase),
		statsHandler:       handlers.NewStatsHandler(statsUsecase, apiEndpoints),
		adminAuthHandler:   handlers.NewAdminAuthHandler(adminAuthUsecase),
		adminMiddleware:    middleware.RequireAdmin(adminAuthUsecase, cfg.Admin.AuthRequired),
		sessionMiddleware:  middleware.RequireAdmin(adminAuthUsecase, true),
		idempotency:        middleware.IdempotencyMiddleware(),
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(ctx, "Team showcase backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("store", store.Name()),
		zap.String("envelope", response.Envelope()),
		zap.Bool("admin_auth_required", cfg.Admin.AuthRequired),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- runServer(srv) }()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info(context.Background(), "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}
