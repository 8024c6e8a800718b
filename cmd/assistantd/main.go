// Package main is the entry point for the assistant/booking server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/abcdental/chat-platform/internal/availability"
	"github.com/abcdental/chat-platform/internal/config"
	"github.com/abcdental/chat-platform/internal/events"
	"github.com/abcdental/chat-platform/internal/handler"
	"github.com/abcdental/chat-platform/internal/llm"
	"github.com/abcdental/chat-platform/internal/middleware"
	"github.com/abcdental/chat-platform/internal/state"
	"github.com/abcdental/chat-platform/pkg/logger"
	"github.com/abcdental/chat-platform/pkg/tracing"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting assistant server")

	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "dental-assistant", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Dialogue state: Redis when configured, in-memory otherwise.
	var states state.Store
	checks := map[string]handler.ReadinessCheck{}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("invalid REDIS_URL", zap.Error(err))
			os.Exit(1)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		states = state.NewRedisStore(rdb, cfg.SessionTTL)
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	} else {
		states = state.NewMemoryStore()
	}

	// Optional NATS event publishing.
	var publisher *events.Publisher
	if cfg.NATSURL != "" {
		publisher, err = events.Connect(ctx, cfg.NATSURL, cfg.NATSToken, log)
		if err != nil {
			log.Warn("failed to connect to NATS, event publishing disabled", zap.Error(err))
		} else {
			defer publisher.Close()
		}
	}

	// Optional LLM-backed replies.
	var llmClient llm.Client
	if cfg.AnthropicAPIKey != "" || cfg.OpenAIAPIKey != "" {
		client, llmErr := newLLMClient(cfg)
		if llmErr != nil {
			log.Warn("failed to create LLM client, canned replies only", zap.Error(llmErr))
		} else {
			llmClient = client
		}
	}

	chatHandler := handler.NewChatHandler(
		availability.NewService(nil),
		states,
		llmClient,
		publisher,
		cfg.AvailabilityDaysAhead,
		log,
	)
	doctorsHandler := handler.NewDoctorsHandler(nil)
	healthHandler := handler.NewHealthHandler(checks)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Post("/chat/message", chatHandler.Send)
		r.Get("/doctors/", doctorsHandler.List)
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

func newLLMClient(cfg *config.Config) (llm.Client, error) {
	if cfg.AnthropicAPIKey != "" {
		return llm.NewClient(llm.ProviderAnthropic, cfg.AnthropicAPIKey)
	}
	return llm.NewClient(llm.ProviderOpenAI, cfg.OpenAIAPIKey)
}
