package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/messaging"
	"github.com/jobsboard/integration-bridge/internal/application/registrar"
	"github.com/jobsboard/integration-bridge/internal/application/resend"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/config"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/jobsboard"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/logger"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/mn"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/persistence"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/queue"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/scheduler"
	"github.com/jobsboard/integration-bridge/internal/interfaces/http/handler"
	"github.com/jobsboard/integration-bridge/internal/interfaces/http/middleware"
	"github.com/jobsboard/integration-bridge/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Jobs Board Integration Bridge",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize mapping and reference-data repositories
	employerMappingRepo := persistence.NewGormEmployerExternalIDRepository(db.DB)
	jobMappingRepo := persistence.NewGormJobExternalIDRepository(db.DB)
	refDataRepo := persistence.NewGormRefDataRepository(db.DB)

	// Source Jobs Board API client
	jobsBoardClient, err := jobsboard.NewClient(&jobsboard.Config{
		BaseURL:      cfg.JobsBoard.BaseURL,
		TokenURL:     cfg.JobsBoard.TokenURL,
		ClientID:     cfg.JobsBoard.ClientID,
		ClientSecret: cfg.JobsBoard.ClientSecret,
		Timeout:      cfg.JobsBoard.Timeout,
	})
	if err != nil {
		log.Fatal("Failed to create Jobs Board client", zap.Error(err))
	}

	// Downstream MN API client
	mnClient, err := mn.NewClient(&mn.Config{
		BaseURL:      cfg.MN.BaseURL,
		TokenURL:     cfg.MN.TokenURL,
		ClientID:     cfg.MN.ClientID,
		ClientSecret: cfg.MN.ClientSecret,
		Timeout:      cfg.MN.Timeout,
	})
	if err != nil {
		log.Fatal("Failed to create MN client", zap.Error(err))
	}

	// Converters, registrars and retrievers
	employerConverter := registrar.NewEmployerConverter(refDataRepo)
	jobConverter := registrar.NewJobConverter(refDataRepo)
	employerRegistrar := registrar.NewEmployerRegistrar(employerMappingRepo, mnClient, employerConverter, log)
	jobRegistrar := registrar.NewJobRegistrar(jobMappingRepo, employerMappingRepo, mnClient, jobConverter, log)
	employerRetriever := registrar.NewEmployerRetriever(jobsBoardClient)
	jobRetriever := registrar.NewJobRetriever(jobsBoardClient)

	// Message services and the event-type dispatcher
	employerMessages := messaging.NewEmployerMessageService(employerRetriever, employerRegistrar, log)
	jobMessages := messaging.NewJobMessageService(jobRetriever, jobRegistrar, log)
	interestMessages := messaging.NewInterestMessageService(jobMappingRepo, jobsBoardClient, log)
	dispatcher := messaging.NewDispatcher(employerMessages, jobMessages, interestMessages, log)

	// Redis connection shared by the queue consumer and readiness checks
	redisClient, err := queue.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}()
	log.Info("Redis connected successfully")

	// Queue consumer feeding the dispatcher
	consumer := queue.NewConsumer(redisClient, dispatcher, queue.Config{
		Key:             cfg.Queue.Key,
		DeadLetterKey:   cfg.Queue.DeadLetterKey,
		PollTimeout:     cfg.Queue.PollTimeout,
		HandlerTimeout:  cfg.Queue.HandlerTimeout,
		MaxReceiveCount: cfg.Queue.MaxReceiveCount,
	}, log)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := consumer.Run(consumerCtx); err != nil && err != context.Canceled {
			log.Error("Queue consumer exited", zap.Error(err))
		}
	}()

	// Resend service backing the admin endpoints and the reconciliation sweep
	resendService := resend.NewService(
		jobsBoardClient,
		employerRegistrar,
		jobRegistrar,
		employerRetriever,
		jobRetriever,
		employerMappingRepo,
		jobMappingRepo,
		log,
	)
	resendService.SetPageSize(cfg.Scheduler.PageSize)

	// Reconciliation scheduler (if enabled)
	var reconciler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		reconciler = scheduler.New(resendService, scheduler.Config{
			CronSchedule: cfg.Scheduler.CronSchedule,
			RunTimeout:   cfg.Scheduler.RunTimeout,
		}, log)
		if err := reconciler.Start(); err != nil {
			log.Fatal("Failed to start reconciliation scheduler", zap.Error(err))
		}
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	adminHandler := handler.NewAdminHandler(resendService, log)
	systemHandler := handler.NewSystemHandler(db, redisClient, cfg.HTTP.HealthCheckTimeout)

	r := router.NewRouter(engine)
	r.Register(adminHandler).Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Stop the consumer after the HTTP surface so in-flight admin requests
	// can still enqueue work; Run returns once the current BLPOP unblocks.
	stopConsumer()
	select {
	case <-consumerDone:
	case <-ctx.Done():
		log.Warn("Timed out waiting for queue consumer to stop")
	}

	if reconciler != nil {
		reconciler.Stop()
	}

	log.Info("Server exited gracefully")
}
