package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quicktube-backend/internal/config"
	"quicktube-backend/internal/database"
	"quicktube-backend/internal/handlers"
	"quicktube-backend/internal/repository"
	"quicktube-backend/internal/router"
	"quicktube-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting QuickTube Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg, err := config.Load()
	if err != nil {
		log.Printf("✗ Configuration error: %v", err)
		os.Exit(1)
	}
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Initialize Repositories ────
	profileRepo := repository.NewProfileRepo(pool)
	summaryRepo := repository.NewSummaryRepo(pool)

	// ──── Step 3: Initialize Providers ────
	fetcher, err := services.NewFetcher(cfg.TranscriptProvider, cfg.YouTubeAPIKey, cfg.YtDlpPath)
	if err != nil {
		log.Fatalf("✗ Transcript provider initialization failed: %v", err)
	}
	log.Printf("✓ Transcript provider ready (%s)", cfg.TranscriptProvider)

	summarizer, err := services.NewSummarizer(cfg.SummaryProvider, cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("✗ Summary provider initialization failed: %v", err)
	}
	if g, ok := summarizer.(*services.GeminiSummarizer); ok {
		defer g.Close()
	}
	log.Printf("✓ Summary provider ready (%s)", cfg.SummaryProvider)

	// ──── Initialize Handlers ────
	healthHandler := handlers.NewHealthHandler(cfg.Version())
	videoHandler := handlers.NewVideoHandler(profileRepo, summaryRepo, fetcher, summarizer)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(healthHandler, videoHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Transcript + summarization calls can run long; the write timeout
		// has to cover the whole pipeline.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ QuickTube Backend ready on http://localhost:%s (%s)", cfg.Port, cfg.Version())

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
