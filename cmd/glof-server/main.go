package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/glofwatch/glof-alerts/internal/alerting"
	"github.com/glofwatch/glof-alerts/internal/api"
	"github.com/glofwatch/glof-alerts/internal/config"
	"github.com/glofwatch/glof-alerts/internal/directory"
	"github.com/glofwatch/glof-alerts/internal/email"
	"github.com/glofwatch/glof-alerts/internal/logging"
	"github.com/glofwatch/glof-alerts/internal/offline"
	"github.com/glofwatch/glof-alerts/internal/repository"
	"github.com/glofwatch/glof-alerts/internal/sms"
	"github.com/glofwatch/glof-alerts/internal/weather"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repository.SeedFromCSV(ctx, db, cfg.DB.LakesCSV, cfg.DB.EventsCSV); err != nil {
		logging.Fatalf("Failed to seed lake data: %v", err)
	}

	// Alert dispatch wiring
	dir := directory.New(directory.DefaultContacts())
	smsClient := sms.NewClient(cfg.SMS)

	var emailSender alerting.EmailSender
	if cfg.SMTP.Enabled() {
		emailSender = email.NewSender(cfg.SMTP)
	} else {
		slog.Warn("SMTP not configured, email channel disabled")
	}

	monitor := offline.NewMonitor(cfg.Connectivity)
	queue := offline.NewQueue()
	orchestrator := alerting.New(dir, smsClient, emailSender, monitor, queue)

	monitorDone := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(monitorDone)
	}()

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(5)) // 5 req/s global limit

	handler := api.NewHandler(orchestrator, db, weather.NewClient(cfg.Weather), cfg.Server.StaticDir)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	<-monitorDone

	if n := queue.Len(); n > 0 {
		slog.Warn("shutting down with alerts still queued offline", "count", n)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
