package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vendorhub/core/cache"
	"vendorhub/core/config"
	"vendorhub/core/database"
	"vendorhub/core/logger"
	"vendorhub/core/secure"
	"vendorhub/core/storage"
	"vendorhub/modules/availability"
	"vendorhub/modules/booking"
	"vendorhub/modules/calendar"
	"vendorhub/modules/calendar/tasks"
	"vendorhub/modules/inquiry"
	"vendorhub/modules/notification"
	"vendorhub/modules/vendors"
)

// Run boots the HTTP API and the asynq worker in a single process and blocks
// until SIGINT/SIGTERM, then shuts both down gracefully.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}

	cipher, err := secure.NewFeedCipher(cfg.Crypto.FeedURLKey)
	if err != nil {
		return fmt.Errorf("init feed cipher: %w", err)
	}

	objectStorage := storage.NewS3Storage(cfg.Storage)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		if err := redisCache.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	notifService := notification.Init(e, &db)
	availService := availability.Init(e, &db)
	bookingService := booking.Init(e, &db, availService, notifService)
	inquiry.Init(e, &db, bookingService, notifService)
	vendors.Init(e, &db, objectStorage)
	taskHandler := calendar.Init(e, &db, redisCache, cipher, asynqClient, time.UTC)

	mux := asynq.NewServeMux()
	taskHandler.Register(mux)

	worker := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{"default": 1},
	})
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Server:AsynqWorker:Error", "error", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpt, nil)
	interval := time.Duration(cfg.Calendar.SyncIntervalMinutes) * time.Minute
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %s", interval),
		asynq.NewTask(tasks.TypeSyncAll, nil),
	); err != nil {
		return fmt.Errorf("register sync schedule: %w", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("Server:AsynqScheduler:Error", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Server:Start", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server:Shutdown:Begin")

	scheduler.Shutdown()
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("Server:Shutdown:Done")
	return nil
}
