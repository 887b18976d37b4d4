package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/config"
	"github.com/finveda/loan-review-engine/internal/credit"
	"github.com/finveda/loan-review-engine/internal/handler"
	"github.com/finveda/loan-review-engine/internal/logger"
	"github.com/finveda/loan-review-engine/internal/notify"
	"github.com/finveda/loan-review-engine/internal/repository"
	"github.com/finveda/loan-review-engine/internal/service"
	"github.com/finveda/loan-review-engine/internal/store"
	"github.com/finveda/loan-review-engine/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	db, err := initDB(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Notification center replaces the dashboard's toast layer
	center := notify.NewCenter(100, zlog)

	// Application store hydrates from the redis snapshot
	snapshots := repository.NewSnapshotRepository(redisClient, cfg.Snapshot.Key)
	appStore := store.New(snapshots, center, zlog)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := appStore.Load(ctx); err != nil {
		cancel()
		zlog.Fatal("failed to load application snapshot", zap.Error(err))
	}
	if cfg.IsDevelopment() {
		if err := appStore.SeedDemo(ctx); err != nil {
			zlog.Warn("demo seed failed", zap.Error(err))
		}
	}
	cancel()

	evaluator := credit.NewEvaluator(
		credit.NewRandomSource(time.Now().UnixNano()),
		appStore,
		zlog,
	)

	mandateRepo := repository.NewMandateRepository(db)

	loanService := service.NewLoanService(appStore, evaluator, zlog)
	mandateService := service.NewMandateService(mandateRepo, appStore, center, zlog)

	loanHandler := handler.NewLoanHandler(loanService)
	mandateHandler := handler.NewMandateHandler(mandateService)
	notificationHandler := handler.NewNotificationHandler(center)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout())

	router := setupRoutes(zlog, loanHandler, mandateHandler, notificationHandler, healthHandler)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.GetConnLifetime())

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	zlog *zap.Logger,
	loanHandler *handler.LoanHandler,
	mandateHandler *handler.MandateHandler,
	notificationHandler *handler.NotificationHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware(zlog))
	router.Use(response.CORSMiddleware)

	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Fixed paths must register before the {applicationId} routes
	api.HandleFunc("/applications/unread", loanHandler.Unread).Methods("GET")
	api.HandleFunc("/applications/current", loanHandler.Current).Methods("GET")
	api.HandleFunc("/applications/current", loanHandler.ResetCurrent).Methods("DELETE")
	api.HandleFunc("/applications", loanHandler.Submit).Methods("POST")
	api.HandleFunc("/applications", loanHandler.List).Methods("GET")
	api.HandleFunc("/applications/{applicationId}", loanHandler.View).Methods("GET")
	api.HandleFunc("/applications/{applicationId}/evaluate", loanHandler.Evaluate).Methods("POST")
	api.HandleFunc("/applications/{applicationId}/approve", loanHandler.Approve).Methods("POST")
	api.HandleFunc("/applications/{applicationId}/reject", loanHandler.Reject).Methods("POST")

	api.HandleFunc("/stats", loanHandler.Stats).Methods("GET")
	api.HandleFunc("/notifications", notificationHandler.List).Methods("GET")

	api.HandleFunc("/mandates", mandateHandler.Create).Methods("POST")
	api.HandleFunc("/mandates/bank/{bankId}", mandateHandler.ListByBank).Methods("GET")
	api.HandleFunc("/mandates/{mandateId}", mandateHandler.Get).Methods("GET")
	api.HandleFunc("/mandates/{mandateId}/approve", mandateHandler.Approve).Methods("POST")
	api.HandleFunc("/mandates/{mandateId}/reject", mandateHandler.Reject).Methods("POST")

	return router
}
