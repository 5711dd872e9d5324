package main

import (
	"context"
	"database/sql"
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
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betterside.backend/internal/config"
	"betterside.backend/internal/infrastructure/datasources/postgres"
	"betterside.backend/internal/infrastructure/repositories"
	"betterside.backend/internal/interfaces/http/handlers"
	"betterside.backend/internal/interfaces/http/middleware"
	"betterside.backend/internal/usecases"
	"betterside.backend/pkg/invite"
	"betterside.backend/pkg/logger"
	"betterside.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		sqlDB, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.NewGormDB(sqlDB)
	}
	newSessionStore = func(key string) (usecases.SessionStore, error) {
		return redis.NewSessionStore(key)
	}
	runServer      = func(srv *http.Server) error { return srv.ListenAndServe() }
	getStdDB       = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	notifyShutdown = func() <-chan os.Signal {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		return quit
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to PostgreSQL")

	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	r := buildRouter(cfg, db, sessionStore)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "BetterSide backend starting",
			zap.String("port", cfg.Server.Port),
			zap.String("version", cfg.Server.Version),
		)
		errCh <- runServer(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-notifyShutdown():
		logger.Info(ctx, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

// buildRouter wires repositories, usecases and handlers onto a new engine
func buildRouter(cfg *config.Config, db *gorm.DB, sessionStore usecases.SessionStore) *gin.Engine {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewCpProfileRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	adRepo := repositories.NewAdRepository(db)
	counterRepo := repositories.NewMarketingCounterRepository(db)
	requestRepo := repositories.NewMarketingRequestRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	inviteTokens := invite.NewService(cfg.Invite.Secret, cfg.Invite.TTL, cfg.Invite.BaseURL)
	inviteUsecase := usecases.NewInviteUsecase(projectRepo, assignmentRepo, inviteTokens)
	authUsecase := usecases.NewAuthUsecase(uow, userRepo, inviteUsecase, sessionStore, cfg.Session.TTL)
	projectUsecase := usecases.NewProjectUsecase(projectRepo)
	leadUsecase := usecases.NewLeadUsecase(leadRepo, projectRepo)
	adUsecase := usecases.NewAdUsecase(adRepo, projectRepo)
	assignmentUsecase := usecases.NewAssignmentUsecase(assignmentRepo, projectRepo, userRepo)
	marketingUsecase := usecases.NewMarketingUsecase(counterRepo, requestRepo, projectRepo)
	cpPanelUsecase := usecases.NewCpPanelUsecase(leadRepo, adRepo, assignmentRepo, profileRepo)
	developerUsecase := usecases.NewDeveloperUsecase(projectRepo, assignmentRepo, leadRepo, adRepo, counterRepo, userRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)
	registerHealthRoute(r, handlers.NewHealthHandler(cfg.Server.Version))
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler: handlers.NewAuthHandler(authUsecase, handlers.SessionCookie{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		}),
		projectHandler:    handlers.NewProjectHandler(projectUsecase),
		leadHandler:       handlers.NewLeadHandler(leadUsecase),
		adHandler:         handlers.NewAdHandler(adUsecase),
		assignmentHandler: handlers.NewAssignmentHandler(assignmentUsecase),
		marketingHandler:  handlers.NewMarketingHandler(marketingUsecase),
		cpHandler:         handlers.NewCpHandler(cpPanelUsecase),
		developerHandler:  handlers.NewDeveloperHandler(developerUsecase, inviteUsecase),
		sessionAuth:       middleware.SessionAuth(authUsecase, cfg.Session.CookieName),
		adminAuth:         middleware.RequireAdminToken(cfg.Admin.Token),
	})

	return r
}
