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

	"github.com/joho/godotenv"

	"github.com/pribylovaa/go-health-bot/internal/bot"
	"github.com/pribylovaa/go-health-bot/internal/clients/food"
	"github.com/pribylovaa/go-health-bot/internal/clients/weather"
	"github.com/pribylovaa/go-health-bot/internal/config"
	bothttp "github.com/pribylovaa/go-health-bot/internal/http"
	"github.com/pribylovaa/go-health-bot/internal/service"
	filestorage "github.com/pribylovaa/go-health-bot/internal/storage/file"
	logctx "github.com/pribylovaa/go-health-bot/pkg/log"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	// .env удобен локально; в остальных окружениях файла просто нет.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting health-bot", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	rootCtx = logctx.Into(rootCtx, log)

	store, err := filestorage.New(cfg.Storage.Path)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	defer store.Close()

	log.Info("storage_opened", slog.String("path", cfg.Storage.Path))

	httpClient := &http.Client{Timeout: cfg.Timeouts.Lookup}
	weatherClient := weather.New(httpClient, cfg.Weather.BaseURL, cfg.Weather.APIKey)
	foodClient := food.New(httpClient, cfg.Food.BaseURL, cfg.Food.PageSize)

	svc := service.New(store, weatherClient, cfg)

	tgBot, err := bot.New(cfg.Telegram.Token, svc, foodClient, cfg.Telegram.PollTimeoutSec)
	if err != nil {
		log.Error("bot_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	var ready atomic.Bool

	router := bothttp.NewRouter(bothttp.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
		Ready:   &ready,
	})

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           router,
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

	go func() {
		if err := svc.StartDailyReset(rootCtx); err != nil {
			log.Error("reset_loop_failed", slog.String("err", err.Error()))
		}
	}()

	botErrCh := make(chan error, 1)
	go func() {
		if err := tgBot.Start(rootCtx); err != nil {
			botErrCh <- err
		}
		close(botErrCh)
	}()

	ready.Store(true)
	log.Info("health_bot_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	case err := <-botErrCh:
		if err != nil {
			log.Error("bot_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(false)
	rootCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
