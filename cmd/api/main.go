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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if !timezone.IsValid(cfg.ClinicTimezone) {
		zlog.Warn("unknown clinic timezone, using UTC", zap.String("tz", cfg.ClinicTimezone))
		cfg.ClinicTimezone = timezone.DefaultTimezone
	}

	db, err := dbpkg.NewDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}

	// --------------------------------------------------
	// Booking lock
	// --------------------------------------------------
	var locker domain.Locker
	var closeLocker func()

	if cfg.RedisAddr != "" {
		client, err := lock.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zlog.Fatal("redis unavailable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		locker = lock.NewRedisLocker(client, cfg.BookingLockTTL, zlog)
		closeLocker = func() { _ = client.Close() }
		zlog.Info("booking lock: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		locker = lock.NewMemoryLocker()
		closeLocker = func() {}
		zlog.Warn("booking lock: in-process, run a single instance")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), zlog)

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validators.RegisterWithGin(); err != nil {
		zlog.Fatal("validators", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, routes.GormDeps(db, cfg, zlog, locker, dispatcher))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}

	dispatcher.Close()
	closeLocker()
	if err := dbpkg.Close(db); err != nil {
		zlog.Error("database close", zap.Error(err))
	}
}
