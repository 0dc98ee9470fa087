package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/study-notes-api/api/swagger"
	"github.com/noah-isme/study-notes-api/internal/handler"
	internalmiddleware "github.com/noah-isme/study-notes-api/internal/middleware"
	"github.com/noah-isme/study-notes-api/internal/repository"
	"github.com/noah-isme/study-notes-api/internal/service"
	"github.com/noah-isme/study-notes-api/pkg/cache"
	"github.com/noah-isme/study-notes-api/pkg/config"
	"github.com/noah-isme/study-notes-api/pkg/database"
	"github.com/noah-isme/study-notes-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/study-notes-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/study-notes-api/pkg/middleware/requestid"
)

// @title Study Notes API
// @version 1.0.0
// @description Users, their subjects and the study notes inside them.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	mongoClient, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logr.Warn("mongo disconnect", zap.Error(err))
		}
	}()

	coll := mongoClient.Database(cfg.Mongo.Database).Collection(cfg.Mongo.UsersCollection)
	userRepo := repository.NewUserRepository(coll, metrics)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	locker, closeLocker, err := newLocker(cfg, metrics, logr)
	if err != nil {
		return err
	}
	defer closeLocker()

	validate := validator.New()
	userSvc := service.NewUserService(userRepo, logr.Named("users"))
	subjectSvc := service.NewSubjectService(userRepo, locker, logr.Named("subjects"))
	noteSvc := service.NewStudyNoteService(userRepo, locker, validate, logr.Named("notes"))

	noteHandler := handler.NewStudyNoteHandler(noteSvc, nil)
	if cfg.Exports.Enabled {
		noteHandler = handler.NewStudyNoteHandler(noteSvc, service.NewExportService(noteSvc, logr.Named("exports")))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Timeout(cfg.Mongo.Timeout))

	metricsPath := ""
	if metrics != nil {
		metricsPath = cfg.Metrics.Path
		r.Use(internalmiddleware.Metrics(metrics, metricsPath, "/health", "/ready"))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, metricsPath, handler.Handlers{
		Users:      handler.NewUserHandler(userSvc),
		Subjects:   handler.NewSubjectHandler(subjectSvc),
		StudyNotes: noteHandler,
		Metrics: handler.NewMetricsHandler(metrics, func(ctx context.Context) error {
			return database.Ping(ctx, mongoClient, 2*time.Second)
		}),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return serve(ctx, r, fmt.Sprintf(":%d", cfg.Port), cfg.Env, logr)
}

func newLocker(cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) (*service.UserLocker, func(), error) {
	if !cfg.Lock.Enabled {
		logr.Info("per-user locking disabled; concurrent edits to one user are last-write-wins")
		return nil, func() {}, nil
	}

	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	lockRepo := repository.NewLockRepository(client)
	closeFn := func() {
		if err := lockRepo.Close(); err != nil {
			logr.Warn("redis close", zap.Error(err))
		}
	}
	return service.NewUserLocker(lockRepo, cfg.Lock.TTL, cfg.Lock.Wait, metrics, logr.Named("locks")), closeFn, nil
}

func serve(ctx context.Context, r *gin.Engine, addr, env string, logr *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", addr), zap.String("env", env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
