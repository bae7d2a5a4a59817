package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/semexe/backend/api/handler"
	"github.com/semexe/backend/internal/config"
	"github.com/semexe/backend/internal/infrastructure/buffer"
	"github.com/semexe/backend/internal/infrastructure/monitor"
	pgInfra "github.com/semexe/backend/internal/infrastructure/postgres"
	redisInfra "github.com/semexe/backend/internal/infrastructure/redis"
	"github.com/semexe/backend/internal/middleware"
	"github.com/semexe/backend/internal/router"
	"github.com/semexe/backend/internal/services"
	"github.com/semexe/backend/internal/services/lifecycle"
	"github.com/semexe/backend/pkg/httpcontext"
	"github.com/semexe/backend/pkg/logger"
	"github.com/semexe/backend/repository/postgres"
	redisRepo "github.com/semexe/backend/repository/redis"
	activityUC "github.com/semexe/backend/usecase/activity"
	authUC "github.com/semexe/backend/usecase/auth"
	feedbackUC "github.com/semexe/backend/usecase/feedback"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "feedback")
	if err != nil {
		zapLogger.Fatal("failed to open feedback buffer", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	activityCache := redisRepo.NewActivityCache(redisClient, cfg.Redis.CacheTTL)

	feedbackFlusher := services.NewFeedbackFlusher(
		bufferStore,
		mon,
		feedbackRepo,
		zapLogger,
		services.FlusherConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	feedbackFlusher.Start()
	manager.Register("feedback_flusher", func(ctx context.Context) error {
		feedbackFlusher.Stop(ctx)
		return nil
	})

	secret := []byte(cfg.JWT.Secret)

	authUseCase := authUC.New(userRepo, secret, cfg.JWT.TokenTTL, zapLogger)
	activityUseCase := activityUC.New(activityRepo, activityCache, zapLogger)
	feedbackUseCase := feedbackUC.New(feedbackRepo, feedbackFlusher, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Activity: apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		Feedback: apiHandler.NewFeedbackHandler(feedbackUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
