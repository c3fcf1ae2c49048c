package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vybe/backend/config"
	httpDelivery "github.com/vybe/backend/internal/delivery/http"
	"github.com/vybe/backend/internal/domain"
	"github.com/vybe/backend/internal/infrastructure/blobstore"
	"github.com/vybe/backend/internal/infrastructure/gemini"
	"github.com/vybe/backend/internal/infrastructure/imagesearch"
	"github.com/vybe/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Vybe Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	ctx := context.Background()

	// Generative client. A missing key is a warning, not a startup failure:
	// the SDK rejects an empty key, so a stand-in client takes its place and
	// saved looks still work.
	var model domain.GenerativeClient = gemini.Disabled{}
	if cfg.Gemini.APIKey == "" {
		log.Printf("WARNING: Gemini API key NOT CONFIGURED - generative endpoints will fail!")
	} else {
		geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.TextModel, cfg.Gemini.ImageModel)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}

		// Enable debug mode in development environment
		if cfg.Server.Environment == "development" {
			geminiClient.SetDebug(true)
			log.Printf("Gemini client debug mode enabled")
		}

		prefix := cfg.Gemini.APIKey
		if len(prefix) > 8 {
			prefix = prefix[:8]
		}
		log.Printf("Gemini configured: text=%s image=%s (key: %s...)",
			cfg.Gemini.TextModel, cfg.Gemini.ImageModel, prefix)
		model = geminiClient
	}

	// Image lookup chain: configured tiers in data-quality order, static
	// fallback last
	var providers []domain.ImageProvider
	if cfg.Search.SerpAPIKey != "" {
		providers = append(providers, imagesearch.NewSerpAPIClient(cfg.Search.SerpAPIKey, cfg.Search.SerpAPIBaseURL))
		log.Printf("Image lookup: serpapi tier enabled")
	}
	if cfg.Search.GoogleAPIKey != "" && cfg.Search.GoogleEngineID != "" {
		providers = append(providers, imagesearch.NewGoogleCSEClient(cfg.Search.GoogleAPIKey, cfg.Search.GoogleEngineID, cfg.Search.GoogleBaseURL))
		log.Printf("Image lookup: google-cse tier enabled")
	}
	if cfg.Search.PexelsAPIKey != "" {
		providers = append(providers, imagesearch.NewPexelsClient(cfg.Search.PexelsAPIKey, cfg.Search.PexelsBaseURL))
		log.Printf("Image lookup: pexels tier enabled")
	}
	providers = append(providers, imagesearch.NewStaticProvider())
	resolver := imagesearch.NewResolver(providers...)
	log.Printf("Image lookup: %d tiers configured", len(providers))

	// Blob store for saved looks
	blobs := blobstore.NewMemoryStore()

	// Initialize usecase layer
	tryOnService := usecase.NewTryOnService(model)
	feedbackService := usecase.NewFeedbackService(model)
	recommendationService := usecase.NewRecommendationService(model, resolver)
	looksService := usecase.NewLooksService(blobs)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(tryOnService, feedbackService, recommendationService, looksService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
