package main

import (
	"fmt"
	"time"

	"swellsim/terrain"
)

// PlacedFeature pairs a generated geometry with one instance transform.
// Several features may share the same *Geometry through the cache.
type PlacedFeature struct {
	Geometry  *terrain.Geometry
	Transform terrain.Transform
}

// Scene is the static coastal backdrop: one cliff face, one beach
// strip, and the scattered rocks and offshore outcrops. Everything in
// it is derived from the seed and fixed shape parameters, so the same
// seed always rebuilds the same coastline.
type Scene struct {
	Cliff    *terrain.Geometry
	Beach    *terrain.Geometry
	Rocks    []PlacedFeature
	Outcrops []PlacedFeature
}

// A handful of distinct rock shapes is enough; instances cycle through
// them and differ by transform, which keeps cache hits high.
const rockVariants = 6

func buildScene(seed float64) *Scene {
	cache := terrain.NewCache()
	start := time.Now()
	fmt.Printf("Generating terrain (seed %.0f)...\n", seed)

	scene := &Scene{
		Cliff: cache.Cliff(terrain.CliffParams{
			Width:          1000,
			Height:         120,
			SegW:           128,
			SegH:           48,
			DisplaceAmount: 18,
			Seed:           seed,
		}),
		Beach: cache.Beach(terrain.BeachParams{
			Width: 1000,
			Depth: 180,
			SegX:  96,
			SegZ:  32,
			Slope: 0.06,
			Seed:  seed + 7,
		}),
	}

	for i, tr := range terrain.PlaceRocks(24) {
		geo := cache.Rock(terrain.RockParams{
			Seed:         seed + float64(i%rockVariants)*13.1,
			Size:         1,
			Subdivisions: 2,
		})
		scene.Rocks = append(scene.Rocks, PlacedFeature{Geometry: geo, Transform: tr})
	}

	for i, tr := range terrain.PlaceOutcrops(8) {
		geo := cache.Rock(terrain.RockParams{
			Seed:         seed + 100 + float64(i%3)*29.3,
			Size:         1,
			Subdivisions: 3,
		})
		scene.Outcrops = append(scene.Outcrops, PlacedFeature{Geometry: geo, Transform: tr})
	}

	fmt.Printf("Terrain ready: %d rocks, %d outcrops (%.0f ms)\n",
		len(scene.Rocks), len(scene.Outcrops), time.Since(start).Seconds()*1000)

	return scene
}
