package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/config"
	"github.com/finveda/loan-review-engine/internal/logger"
	"github.com/finveda/loan-review-engine/internal/notify"
	"github.com/finveda/loan-review-engine/internal/report"
	"github.com/finveda/loan-review-engine/internal/repository"
	"github.com/finveda/loan-review-engine/internal/store"
)

// The scheduler keeps the cached dashboard stats fresh and flags
// applications that have sat unread for too long. It reads the same redis
// snapshot the server writes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	snapshots := repository.NewSnapshotRepository(redisClient, cfg.Snapshot.Key)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		zlog.Fatal("invalid scheduler timezone", zap.Error(err))
	}

	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.Scheduler.StatsInterval, func() {
		refreshStats(cfg, zlog, snapshots, redisClient)
	})
	if err != nil {
		zlog.Fatal("failed to schedule stats refresh", zap.Error(err))
	}

	// Unread reminders run on the hour
	_, err = c.AddFunc("0 * * * *", func() {
		remindUnread(cfg, zlog, snapshots)
	})
	if err != nil {
		zlog.Fatal("failed to schedule unread reminder", zap.Error(err))
	}

	c.Start()
	zlog.Info("scheduler started",
		zap.String("stats_interval", cfg.Scheduler.StatsInterval),
		zap.String("timezone", cfg.Scheduler.Timezone),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down scheduler")
	<-c.Stop().Done()
	zlog.Info("scheduler stopped")
}

// refreshStats recomputes the dashboard aggregate block from the snapshot
// and caches it for dashboard reads between refreshes.
func refreshStats(cfg *config.Config, zlog *zap.Logger, snapshots repository.SnapshotRepository, redisClient *redis.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appStore := store.New(snapshots, notify.NopNotifier{}, zlog)
	if err := appStore.Load(ctx); err != nil {
		zlog.Error("stats refresh: snapshot load failed", zap.Error(err))
		return
	}

	stats := report.NewReporter(appStore).Stats(time.Now())

	payload, err := json.Marshal(stats)
	if err != nil {
		zlog.Error("stats refresh: marshal failed", zap.Error(err))
		return
	}

	if err := redisClient.Set(ctx, cfg.Scheduler.StatsCacheKey, payload, cfg.GetStatsCacheTTL()).Err(); err != nil {
		zlog.Error("stats refresh: cache write failed", zap.Error(err))
		return
	}

	zlog.Info("dashboard stats refreshed",
		zap.Int("total", stats.TotalApplications),
		zap.Int("approval_rate", stats.ApprovalRate),
	)
}

// remindUnread logs applications that have stayed unread past the
// configured age so reviewers notice them.
func remindUnread(cfg *config.Config, zlog *zap.Logger, snapshots repository.SnapshotRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appStore := store.New(snapshots, notify.NopNotifier{}, zlog)
	if err := appStore.Load(ctx); err != nil {
		zlog.Error("unread reminder: snapshot load failed", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-cfg.GetUnreadMaxAge())
	for _, app := range store.NewUnreadTracker(appStore).Unread() {
		if app.CreatedAt.Before(cutoff) {
			zlog.Warn("application awaiting review",
				zap.String("application_id", app.ID),
				zap.Time("created_at", app.CreatedAt),
			)
		}
	}
}
