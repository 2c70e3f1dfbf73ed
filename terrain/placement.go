package terrain

import (
	"math"

	"swellsim/core"
	"swellsim/noise"
)

// The stretch of shoreline reserved for the promontory/fort footprint.
// Scattered features whose x lands inside it are skipped so nothing
// pokes through the fort geometry.
const (
	fortExclusionMin = -60.0
	fortExclusionMax = 60.0
)

// Per-feature strides and offsets into the seeded random sequence.
// These are fixed so that instance i always receives the same
// transform, run after run.
const (
	rockStrideX     = 12.9898
	rockStrideZ     = 78.233
	rockStrideScale = 37.719
	rockStrideRot   = 93.989

	outcropOffset = 411.7
)

// scatterRange bounds where a feature type may land.
type scatterRange struct {
	spreadX          float64
	minZ, maxZ       float64
	minScale, spread float64
}

// PlaceRocks derives count deterministic rock transforms from the
// seeded random sequence. Candidates inside the fort exclusion interval
// are dropped, so fewer than count transforms may come back.
func PlaceRocks(count int) []Transform {
	return scatter(count, 0, scatterRange{
		spreadX:  450,
		minZ:     280,
		maxZ:     440,
		minScale: 0.6,
		spread:   2.2,
	})
}

// PlaceOutcrops derives transforms for the larger offshore outcrops.
// They share the rock strides but start at a different offset into the
// sequence, so the two feature types never correlate.
func PlaceOutcrops(count int) []Transform {
	return scatter(count, outcropOffset, scatterRange{
		spreadX:  380,
		minZ:     80,
		maxZ:     300,
		minScale: 2.0,
		spread:   4.0,
	})
}

func scatter(count int, offset float64, r scatterRange) []Transform {
	transforms := make([]Transform, 0, count)
	for i := 0; i < count; i++ {
		fi := float64(i)
		x := (noise.SeededRandom(fi*rockStrideX+offset+1)*2 - 1) * r.spreadX
		if x > fortExclusionMin && x < fortExclusionMax {
			continue
		}
		z := r.minZ + noise.SeededRandom(fi*rockStrideZ+offset+2)*(r.maxZ-r.minZ)
		scale := r.minScale + noise.SeededRandom(fi*rockStrideScale+offset+3)*r.spread
		rot := noise.SeededRandom(fi*rockStrideRot+offset+4) * 2 * math.Pi

		transforms = append(transforms, Transform{
			Position:  core.Vector3{X: x, Y: 0, Z: z},
			RotationY: rot,
			Scale:     scale,
		})
	}
	return transforms
}
