// Package main is the entry point for GridRunner.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridrunner/internal/game"
	"github.com/samdwyer/gridrunner/internal/telemetry"
)

func main() {
	seed := flag.Int64("seed", 0, "map generation seed (0 = time-based)")
	width := flag.Int("width", 0, "map width in tiles (0 = default)")
	height := flag.Int("height", 0, "map height in tiles (0 = default)")
	themeID := flag.String("theme", "", "tile theme ID")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_GRIDRUNNER_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(game.Config{
		Seed:   *seed,
		Width:  *width,
		Height: *height,
		Theme:  *themeID,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_GRIDRUNNER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRIDRUNNER_DATASET")
	if dataset == "" {
		dataset = "gridrunner"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
