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
	"github.com/studiofolio/internal/config"
	"github.com/studiofolio/internal/db"
	"github.com/studiofolio/internal/handler"
	"github.com/studiofolio/internal/logger"
	"github.com/studiofolio/internal/mailer"
	"github.com/studiofolio/internal/router"
	"github.com/studiofolio/internal/service"
	"github.com/studiofolio/internal/storage"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.AppConfig, zlog *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	gdb, err := db.Open(db.Options{
		Driver: cfg.DatabaseDriver,
		DSN:    cfg.DatabaseDSN,
		Debug:  cfg.Env == "development",
	})
	if err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	auth, err := service.NewAuthService(service.AuthConfig{
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
		SigningKey:   cfg.AdminTokenSecret,
		TokenTTL:     cfg.AdminTokenTTL,
	})
	if err != nil {
		return err
	}

	var host storage.Host
	if cfg.CloudinaryEnabled() {
		cld, err := storage.NewCloudinaryHost(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			return err
		}
		host = cld
	} else {
		zlog.Warn("cloudinary credentials missing, image storage disabled")
	}

	var notifier service.ContactNotifier
	if cfg.MailEnabled() {
		notifier = mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			To:       cfg.ContactNotifyTo,
		})
	}
	onNotify := func(err error) {
		zlog.Warn("contact notification failed", zap.Error(err))
	}

	contacts := service.NewContactService(gdb, notifier, onNotify)
	api := handler.NewAPI(handler.Services{
		Auth:         auth,
		Portfolio:    service.NewPortfolioService(gdb),
		Testimonials: service.NewTestimonialService(gdb),
		Blog:         service.NewBlogService(gdb),
		Contacts:     contacts,
	}, storage.NewAdapter(host, cfg.CloudinaryDefaultFolder), zlog)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router.SetupRouter(api, router.Options{CorsOrigins: cfg.CorsOrigins, Logger: zlog}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("db", cfg.DatabaseDriver))
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

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	contacts.Wait()
	return err
}
