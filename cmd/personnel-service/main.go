package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/personnel-oauth/internal/cache"
	"github.com/pribylovaa/personnel-oauth/internal/config"
	apihttp "github.com/pribylovaa/personnel-oauth/internal/http"
	"github.com/pribylovaa/personnel-oauth/internal/janitor"
	"github.com/pribylovaa/personnel-oauth/internal/metrics"
	"github.com/pribylovaa/personnel-oauth/internal/service"
	"github.com/pribylovaa/personnel-oauth/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		configPath string
		migrate    bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&migrate, "migrate", false, "apply embedded migrations before start")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()
	log.Info("postgres_connected")

	if migrate {
		if err := str.Migrate(rootCtx); err != nil {
			log.Error("migrate_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		log.Info("migrations_applied")
	}

	// Метрики: собственный реестр вместо глобального.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Сервис.
	srvc := service.New(str, cfg.OAuth)

	if cfg.Redis.RedisURL != "" {
		ac, err := cache.NewRedisCache(rootCtx, cfg.Redis.RedisURL, cfg.Redis.Prefix, cfg.Redis.TTL)
		if err != nil {
			// Без кэша сервис работает, просто чаще ходит в БД.
			log.Warn("redis_unavailable", slog.String("err", err.Error()))
		} else {
			srvc.SetAccessCache(ac)
			defer func() {
				if cerr := ac.Close(); cerr != nil {
					log.Warn("redis_close_failed", slog.String("err", cerr.Error()))
				}
			}()
			log.Info("redis_connected")
		}
	}
	log.Info("service_initialized")

	// Фоновая очистка просроченных кодов и старых пар токенов.
	janitor.New(str, cfg.Janitor, log, m).Start(rootCtx)

	var ready int32 // 0 — not ready; 1 — ready

	// Служебный HTTP: пробы и метрики.
	ops := http.NewServeMux()
	ops.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ops.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := str.Ping(ctx); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ops.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	opsAddr := cfg.Ops.Addr()
	opsSrv := &http.Server{
		Addr:              opsAddr,
		Handler:           ops,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("ops_listen_start", slog.String("addr", opsAddr))
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ops_serve_failed", slog.String("err", err.Error()))
		}
	}()

	// Публичный API.
	apiHandler := apihttp.NewRouter(srvc, apihttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Request,
		Metrics: m,
	})

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           apiHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	_ = opsSrv.Shutdown(shutdownCtx)

	log.Info("service_stopped")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
