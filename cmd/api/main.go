package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"case-assistant/config"
	_ "case-assistant/docs" // Swagger docs
	"case-assistant/internal/httpserver"
	inquiryHTTP "case-assistant/internal/inquiry/delivery/http"
	"case-assistant/internal/inquiry/usecase"
	"case-assistant/internal/intent"
	"case-assistant/internal/knowledge"
	"case-assistant/internal/observability"
	"case-assistant/internal/ratelimit"
	"case-assistant/internal/session"
	"case-assistant/pkg/llmprovider"
	"case-assistant/pkg/log"
	"case-assistant/pkg/voyage"
)

// @title       Case Assistant API
// @description Conversational intent resolution and response governance for rescue case conversations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Case Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	metrics := observability.NewMetrics("case_assistant")

	// 4. Embedding provider (optional: resolver degrades to keyword fallback)
	var embedder voyage.IVoyage
	if cfg.Voyage.APIKey != "" {
		voyageClient, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Warnf(ctx, "Voyage client unavailable, using keyword fallback: %v", vErr)
		} else {
			embedder = voyageClient.WithModel(cfg.Voyage.Model)
		}
	} else {
		logger.Warn(ctx, "VOYAGE_API_KEY missing, intent resolution uses keyword fallback only")
	}

	// 5. Intent resolver
	resolver := intent.New(logger, embedder, intent.Config{
		Threshold:      cfg.Intent.Threshold,
		CacheSize:      cfg.Intent.CacheSize,
		CacheTTL:       cfg.Intent.CacheTTL,
		EmbedCacheSize: cfg.Intent.EmbedCacheSize,
		EmbedCacheTTL:  cfg.Intent.EmbedCacheTTL,
		EmbedTimeout:   cfg.Intent.EmbedTimeout,
	}).WithMetrics(metrics)
	if embedder != nil {
		if wErr := resolver.Warmup(ctx); wErr != nil {
			logger.Warnf(ctx, "Intent warmup failed, clusters will be built lazily: %v", wErr)
		}
	}

	// 6. Generation providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, 2*time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 7. Knowledge retrieval client
	retriever := knowledge.NewClient(cfg.Knowledge.URL, cfg.Knowledge.APIKey, cfg.Knowledge.Timeout)

	// 8. Stores and admission control
	store := session.New(logger, session.Config{
		TTL:        cfg.Session.TTL,
		MaxHistory: cfg.Session.MaxHistory,
	})
	defer store.Close()

	limiter := ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// 9. Inquiry domain
	inquiryUC := usecase.New(logger, resolver, retriever, manager, store, limiter, metrics).
		WithMaxKnowledgeResults(cfg.Knowledge.MaxResults)
	inquiryHandler := inquiryHTTP.New(logger, inquiryUC)

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		InquiryHandler: inquiryHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
