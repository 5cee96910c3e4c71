package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"excuses/internal/cache"
	"excuses/internal/config"
	"excuses/internal/corpus"
	"excuses/internal/logging"
	"excuses/internal/metrics"
	"excuses/internal/provider"
	"excuses/internal/server"
	"excuses/internal/store"
	"excuses/internal/together"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logging.Init(cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	excuses, err := corpus.Load(cfg.CorpusFile)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	// Durable cache store, nil for memory
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open cache store: %v", err)
	}
	if backend != nil {
		defer backend.Close()
	}

	responses := cache.New(cfg.CacheCapacity, cache.WithStore(backend), cache.WithStoreKey(cfg.CacheStoreKey))
	metrics.Init(responses)

	mode := cfg.Mode()
	var generator provider.Generator
	client, ok, err := together.FromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to configure generation client: %v", err)
	}
	if ok {
		generator = client
	}

	p := provider.New(provider.Options{
		Cache:     responses,
		Generator: generator,
		Corpus:    excuses,
		Notifier: provider.NotifierFunc(func(level, message string) {
			slog.Warn(message, "level", level)
		}),
		Deployment: provider.DeploymentContext{
			Platform:   cfg.DeploymentPlatform,
			Restricted: mode == config.ModeRestricted,
		},
	})

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Deps{
		Provider:        p,
		Cache:           responses,
		Mode:            mode,
		Upstream:        together.UpstreamFromConfig(cfg),
		ProxyConfigured: cfg.TogetherAPIKey != "",
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	slog.Info("server started",
		"addr", cfg.ServerAddr,
		"mode", mode,
		"platform", cfg.DeploymentPlatform,
		"cache_store", cfg.CacheStore,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
