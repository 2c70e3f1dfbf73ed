package terrain

import (
	"math"

	"swellsim/noise"
)

// BeachParams determines the beach strip between the cliffs and the
// waterline. The waterline sits on the front (z = +Depth/2) edge.
type BeachParams struct {
	Width, Depth float64
	SegX, SegZ   int
	Slope        float64
	Seed         float64
}

// Fraction of the beach depth that stays visibly wet above the
// waterline.
const beachWetBand = 0.35

// GenerateBeach builds a gently sloped sand strip with a low-frequency
// ripple perturbation. Per-vertex wetness is a clamped linear function
// of distance to the waterline and is stored in the red color channel
// for the renderer's material blend; the other channels stay zero.
func GenerateBeach(p BeachParams) *Geometry {
	nx := p.SegX + 1
	nz := p.SegZ + 1
	positions := make([]float32, nx*nz*3)
	colors := make([]float32, nx*nz*3)

	wetBand := p.Depth * beachWetBand

	for iz := 0; iz < nz; iz++ {
		z := -p.Depth/2 + float64(iz)/float64(p.SegZ)*p.Depth
		waterDist := p.Depth/2 - z // 0 at the waterline, Depth at the back
		for ix := 0; ix < nx; ix++ {
			x := -p.Width/2 + float64(ix)/float64(p.SegX)*p.Width

			y := p.Slope * waterDist
			y += math.Sin(x*0.05+p.Seed) * math.Sin(z*0.08) * 0.3
			y += noise.FBM(x*0.02+p.Seed, z*0.02, 2) * 0.2

			wetness := 1 - waterDist/wetBand
			if wetness < 0 {
				wetness = 0
			} else if wetness > 1 {
				wetness = 1
			}

			i := (iz*nx + ix) * 3
			positions[i] = float32(x)
			positions[i+1] = float32(y)
			positions[i+2] = float32(z)
			colors[i] = float32(wetness)
		}
	}

	return &Geometry{
		Positions: positions,
		Colors:    colors,
		Indices:   gridIndices(p.SegX, p.SegZ),
	}
}
