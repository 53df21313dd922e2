package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/zasahy_monitor/internal/config"
	v1 "github.com/shenikar/zasahy_monitor/internal/handler/http/v1"
	"github.com/shenikar/zasahy_monitor/internal/poller"
	"github.com/shenikar/zasahy_monitor/internal/repository"
	"github.com/shenikar/zasahy_monitor/internal/service"
	"github.com/shenikar/zasahy_monitor/internal/source"
	"github.com/shenikar/zasahy_monitor/internal/store"
	"github.com/shenikar/zasahy_monitor/internal/webhook"
	"github.com/shenikar/zasahy_monitor/pkg/logger"
	"github.com/shenikar/zasahy_monitor/pkg/postgres"
	redisclient "github.com/shenikar/zasahy_monitor/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/zasahy_monitor/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Zasahy Monitor API
// @version 1.0
// @description Monitor of fire brigade dispatches (výjezdy) with filters, notifications and shift roster.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		cfg.MigrationsPath,
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newPersister выбирает хранилище снапшота по STORAGE_BACKEND. cleanup закрывает соединение с БД.
func newPersister(ctx context.Context, cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) (store.Persister, func(), error) {
	if cfg.StorageBackend != config.StoragePostgres {
		log.WithField("key", cfg.StorageKey).Info("Using Redis snapshot storage")
		return repository.NewRedisSnapshotRepository(redisClient, cfg.StorageKey), func() {}, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, err
	}
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")
	return repository.NewPostgresSnapshotRepository(dbpool, cfg.StorageKey), dbpool.Close, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Хранилище снапшота стора
	persister, closeStorage, err := newPersister(ctx, cfg, redisClient, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStorage()

	// Восстановление стора
	incidentStore := store.New(persister, log)
	if err := incidentStore.Restore(ctx); err != nil {
		log.WithError(err).Error("Failed to restore store snapshot, starting empty")
	}
	storeDone := make(chan struct{})
	go func() {
		defer close(storeDone)
		incidentStore.Run(ctx)
	}()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-incidentStore.Errors():
				log.WithError(err).Warn("Store persistence error")
			}
		}
	}()

	// Инициализация издателя и воркера уведомлений
	notificationPublisher := webhook.NewRedisNotificationPublisher(redisClient)
	notificationWorker := webhook.NewNotificationWorker(redisClient, log, cfg)
	notificationWorker.Start(ctx)

	// Источник и поллер
	sourceClient := source.NewClient(cfg.SourceBaseURL, cfg.SourceTimeout, log)
	mapper := source.NewMapper(cfg.SourceLocation, cfg.SourceRegion)
	incidentPoller := poller.NewPoller(sourceClient, mapper, incidentStore, notificationPublisher, log, cfg)
	if err := incidentPoller.Start(ctx); err != nil {
		log.Fatalf("Failed to start poller: %v", err)
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentStore, incidentPoller, sourceClient, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	incidentPoller.Stop()
	cancel()
	<-storeDone
	if err := incidentStore.Flush(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to flush store on shutdown")
	}

	log.Info("Server gracefully stopped")
}
