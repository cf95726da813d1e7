package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/cache"
	"github.com/BruksfildServices01/service-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/service-marketplace/internal/db"
	"github.com/BruksfildServices01/service-marketplace/internal/events"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/service-marketplace/internal/logger"
	"github.com/BruksfildServices01/service-marketplace/internal/revocation"
	"github.com/BruksfildServices01/service-marketplace/internal/routes"
	"github.com/BruksfildServices01/service-marketplace/internal/timezone"
	"github.com/BruksfildServices01/service-marketplace/internal/token"
	ucAuth "github.com/BruksfildServices01/service-marketplace/internal/usecase/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Init(cfg.LogLevel, os.Stdout)
	httperr.ExposeInternal = cfg.IsDevelopment()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if !cfg.AuthEnabled() {
		log.Error("JWT_SECRET is not set; every authenticated request will be rejected")
	}

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn("unknown TIMEZONE, falling back to UTC", slog.String("timezone", cfg.Timezone))
		cfg.Timezone = timezone.DefaultTimezone
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Error("database unavailable", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()

	// --------------------------------------------------
	// Optional Redis: revocation + rate limiting
	// --------------------------------------------------
	var (
		cacheClient cache.Client
		revoked     revocation.Store = revocation.Noop{}
	)
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warn("redis unavailable, revocation and rate limiting disabled", slog.Any("error", err))
		} else {
			cacheClient = rc
			revoked = revocation.NewRedisStore(rc, cfg.TokenTTL)
			defer rc.Close()
		}
	}

	// --------------------------------------------------
	// Optional RabbitMQ: booking events
	// --------------------------------------------------
	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPUrl != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPUrl, cfg.AMQPExchange)
		if err != nil {
			log.Warn("rabbitmq unavailable, booking events disabled", slog.Any("error", err))
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	dispatcher := audit.NewDispatcher(audit.New(db))
	defer dispatcher.Close()

	// --------------------------------------------------
	// Admin bootstrap
	// --------------------------------------------------
	adminSetup := ucAuth.NewAdminSetup(
		repository.NewUserGormRepository(db),
		dispatcher,
		ucAuth.AdminAccount{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		},
	)
	if cfg.AdminEmail != "" {
		if _, created, err := adminSetup.Execute(ctx); err != nil {
			log.Warn("admin bootstrap failed", slog.Any("error", err))
		} else if created {
			log.Info("admin account created", slog.String("email", cfg.AdminEmail))
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Tokens:    token.NewManager(cfg.JWTSecret, cfg.TokenTTL),
		Audit:     dispatcher,
		Events:    publisher,
		Cache:     cacheClient,
		Revoked:   revoked,
		AdminInit: adminSetup,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", slog.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
