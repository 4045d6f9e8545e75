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

	"golang.org/x/sync/errgroup"

	httpapi "github.com/i474232898/weather-orbit/internal/api/http"
	"github.com/i474232898/weather-orbit/internal/config"
	"github.com/i474232898/weather-orbit/internal/controller"
	"github.com/i474232898/weather-orbit/internal/history"
	"github.com/i474232898/weather-orbit/internal/kvstore"
	"github.com/i474232898/weather-orbit/internal/scheduler"
	"github.com/i474232898/weather-orbit/internal/tui"
	"github.com/i474232898/weather-orbit/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The terminal belongs to the UI, so logs go to a file.
	if cfg.Mode == config.ModeTUI {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	keys := providers.Keys{OpenWeather: cfg.OpenWeatherAPIKey, WeatherAPI: cfg.WeatherAPIKey}

	weatherSrc, err := providers.New(cfg.WeatherProvider, httpClient, keys)
	if err != nil {
		log.Fatalf("failed to create weather provider: %v", err)
	}
	placesSrc, err := providers.New(cfg.PlacesProvider, httpClient, keys)
	if err != nil {
		log.Fatalf("failed to create places provider: %v", err)
	}

	cache := history.NewCache(store, cfg.MaxHistory)
	ctrl := controller.New(weatherSrc, placesSrc, cache, controller.WithSettings(controller.Settings{
		MaxHistory:      cfg.MaxHistory,
		SuggestionLimit: cfg.SuggestionLimit,
		DebounceDelay:   cfg.DebounceDelay,
		BannerDelay:     cfg.BannerDelay,
		ScrollDelay:     cfg.ScrollDelay,
	}))
	defer ctrl.Close()

	// Background refresh of the displayed snapshot.
	sched := scheduler.New(ctrl, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("INFO: starting in %s mode (weather=%s, places=%s, store=%s)",
		cfg.Mode, weatherSrc.Name(), placesSrc.Name(), cfg.StoreDriver)

	switch cfg.Mode {
	case config.ModeServer:
		err = serve(ctx, cfg, httpapi.Deps{
			Session:         ctrl,
			Weather:         weatherSrc,
			Places:          placesSrc,
			SuggestionLimit: cfg.SuggestionLimit,
		})
	default:
		err = tui.Run(ctx, ctrl)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("ERROR: %v", err)
	}
}

func openStore(cfg *config.AppConfig) (kvstore.Store, error) {
	if cfg.StoreDriver == "memory" {
		return kvstore.NewMemoryStore(), nil
	}
	return kvstore.NewSQLiteStore(cfg.StorePath)
}

// serve runs the HTTP session bridge until ctx is cancelled.
func serve(ctx context.Context, cfg *config.AppConfig, deps httpapi.Deps) error {
	app := httpapi.NewApp("weather-orbit")
	httpapi.RegisterRoutes(app, deps)
	deps.Session.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("INFO: listening on :%s", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	return g.Wait()
}
