package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"swellsim/config"
	"swellsim/core"
	"swellsim/forecast"
	"swellsim/ocean"
)

func main() {
	runtime.LockOSThread()

	var (
		settingsPath = flag.String("settings", "settings.json", "Settings file path")
		preset       = flag.String("preset", "", "Swell preset (calm, clean, storm, glass)")
		seed         = flag.Float64("seed", 42, "Terrain seed")
		serve        = flag.Bool("serve", false, "Run the websocket viewer server instead of the native window")
		port         = flag.Int("port", 0, "Viewer server port (overrides settings)")
		forecastURL  = flag.String("forecast", "", "Marine forecast text URL to seed conditions from")
		width        = flag.Int("width", 0, "Window width (overrides settings)")
		height       = flag.Int("height", 0, "Window height (overrides settings)")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *preset != "" {
		settings.Swell = config.Preset(*preset)
	}
	if *width > 0 {
		settings.Display.Width = *width
	}
	if *height > 0 {
		settings.Display.Height = *height
	}
	if *port > 0 {
		settings.Server.Port = *port
	}

	store := config.NewStore(settings.Swell)

	if *forecastURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		report, err := forecast.Fetch(ctx, *forecastURL)
		cancel()
		if err != nil {
			log.Printf("Forecast ingestion failed, keeping preset conditions: %v", err)
		} else {
			cfg := store.Update(func(c *core.Config) { *c = report.Apply(*c) })
			fmt.Printf("Forecast applied: %.1fm @ %.0fs, wind %.0f kt\n",
				cfg.WaveHeight, cfg.WavePeriod, cfg.WindSpeed)
		}
	}

	fmt.Println("=== Coastal Swell Visualizer ===")

	grid := ocean.NewGrid(1000, 800, 160, 128)
	field := ocean.NewSurfaceField(grid)
	fmt.Printf("Ocean grid: %dx%d (%d vertices)\n", grid.NX, grid.NZ, grid.VertexCount())

	scene := buildScene(*seed)

	if *serve {
		runServer(settings.Server, store, field, scene)
		return
	}

	runRenderer(settings.Display, store, field, scene)

	fmt.Println("\nShutting down...")
}
