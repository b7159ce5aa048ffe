package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/house-hunting/internal/config"
	dbpkg "github.com/BruksfildServices01/house-hunting/internal/db"
	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/imaging"
	"github.com/BruksfildServices01/house-hunting/internal/infra/denylist"
	"github.com/BruksfildServices01/house-hunting/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/house-hunting/internal/infra/repository"
	"github.com/BruksfildServices01/house-hunting/internal/infra/storage"
	"github.com/BruksfildServices01/house-hunting/internal/jobs"
	"github.com/BruksfildServices01/house-hunting/internal/logger"
	"github.com/BruksfildServices01/house-hunting/internal/metrics"
	"github.com/BruksfildServices01/house-hunting/internal/password"
	"github.com/BruksfildServices01/house-hunting/internal/routes"
	"github.com/BruksfildServices01/house-hunting/internal/token"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "house-hunting: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	log.Info("starting", cfg.LogFields()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// METRICS
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, "house_hunting")

	// ======================================================
	// STORE
	// ======================================================
	deps := routes.Deps{Config: cfg, Log: log, Metrics: m}

	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on restart")
		mem := memory.NewStore()
		deps.Accounts, deps.Houses, deps.Audit = mem, mem, mem

	case config.DriverPostgres:
		db, err := dbpkg.NewDB(cfg.DB)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		deps.Accounts = infraRepo.NewUserGormRepository(db)
		deps.Houses = infraRepo.NewHouseGormRepository(db)
		deps.Audit = infraRepo.NewAuditGormRepository(db)

	default:
		return fmt.Errorf("unknown DB_DRIVER %q", cfg.DB.Driver)
	}

	// ======================================================
	// BACKGROUND JOBS
	// ======================================================
	queue := jobs.NewQueue(log, jobs.Options{
		Size:      cfg.Jobs.QueueSize,
		Workers:   cfg.Jobs.Workers,
		Timeout:   cfg.Jobs.Timeout,
		OnFailure: m.JobFailed,
	})
	deps.Queue = queue

	// ======================================================
	// AUTH
	// ======================================================
	deps.Hasher = password.NewBcrypt(password.DefaultCost)
	deps.Tokens = token.NewIssuer(token.Config{
		AccessSecret:  cfg.Auth.AccessSecret,
		RefreshSecret: cfg.Auth.RefreshSecret,
		Issuer:        cfg.Auth.Issuer,
		AccessTTL:     cfg.Auth.AccessTokenTTL,
		RefreshTTL:    cfg.Auth.RefreshTokenTTL,
	})

	deny, closeDeny, err := openDenyList(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeDeny()
	deps.DenyList = deny

	// ======================================================
	// PHOTOS
	// ======================================================
	if cfg.S3.Enabled() {
		deps.Photos = storage.NewS3(storage.NewS3Client(cfg.S3), cfg.S3)
		deps.Transcoder = imaging.NewTranscoder(cfg.Photos.MaxWidth, cfg.Photos.Quality)
	} else {
		log.Info("photo uploads disabled: S3_BUCKET not set")
	}

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if err := queue.Close(shutdownCtx); err != nil {
		log.Warn("background jobs not drained", zap.Error(err))
	}
	return nil
}

// openDenyList returns a nil list unless revocation is switched on.
func openDenyList(ctx context.Context, cfg config.RedisConfig) (account.DenyList, func(), error) {
	if !cfg.DenyListEnabled {
		return nil, func() {}, nil
	}
	if cfg.Addr == "" {
		return nil, nil, errors.New("TOKEN_DENYLIST_ENABLED requires REDIS_ADDR")
	}

	rdb, err := denylist.Connect(ctx, denylist.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	return denylist.NewRedis(rdb, cfg.DenyListKeyspace), func() { _ = rdb.Close() }, nil
}
