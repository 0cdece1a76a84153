package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	"github.com/BruksfildServices01/cesta-amigo/internal/config"
	dbpkg "github.com/BruksfildServices01/cesta-amigo/internal/db"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/catalog"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/payments"
	infraRepo "github.com/BruksfildServices01/cesta-amigo/internal/infra/repository"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/sessions"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/storage"
	"github.com/BruksfildServices01/cesta-amigo/internal/jobs"
	"github.com/BruksfildServices01/cesta-amigo/internal/logger"
	"github.com/BruksfildServices01/cesta-amigo/internal/routes"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
	ucOrder "github.com/BruksfildServices01/cesta-amigo/internal/usecase/order"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger ainda não existe
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)

	if err := run(cfg, log); err != nil {
		log.Fatal().Stack().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	revoked, err := sessions.New(cfg.RedisURL)
	if err != nil {
		return err
	}

	var store storage.Store = storage.Disabled{}
	if cfg.StorageEnabled() {
		store = storage.NewS3Store(storage.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		log.Warn().Msg("S3_BUCKET not set: avatar upload disabled, reports exported inline")
	}

	var gateway payments.Gateway = payments.Disabled{}
	if cfg.PaymentsEnabled() {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken, cfg.MPNotificationURL)
		if err != nil {
			return err
		}
		gateway = mp
	} else {
		log.Warn().Msg("MP_ACCESS_TOKEN not set: orders are created without payment link")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger.Component(log, "audit"))
	defer dispatcher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// ======================================================
	// ⏰ JOBS
	// ======================================================
	scheduler := jobs.NewScheduler(timezone.Default(), logger.Component(log, "jobs"))
	sweep := ucOrder.NewSweepOverdue(
		infraRepo.NewOrderGormRepository(db),
		cfg.OrderOverdueDays,
		dispatcher,
		logger.Component(log, "orders"),
	)
	if _, err := scheduler.Register("sweep-overdue", cfg.OverdueCron, func(ctx context.Context) error {
		_, err := sweep.Execute(ctx, timezone.Now())
		return err
	}); err != nil {
		return err
	}
	scheduler.Start()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("JWT_SECRET not set: using development secret")
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Dependencies{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Audit:    dispatcher,
		Sessions: revoked,
		Storage:  store,
		Payments: gateway,
		Catalog:  catalog.Default(),
		Registry: registry,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
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

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("jobs did not finish in time")
	}
	return srv.Shutdown(shutdownCtx)
}
