package ocean

import (
	"math"

	"swellsim/core"
)

const (
	gravity = 9.81

	// Damping on the dispersion phase speed. Full c = g*T/(2*pi) reads
	// far too fast on screen at this grid scale.
	speedDamping = 0.3

	// Horizontal distance over which the canyon gaussian falls off.
	canyonScale = 150.0
)

// SurfaceField computes per-vertex height and color for an ocean grid.
// It holds only the immutable base grid; every Evaluate call is a pure
// function of (config, time, grid) that writes into caller-owned
// buffers, so two calls with identical arguments produce bit-identical
// output.
type SurfaceField struct {
	grid *Grid
}

// NewSurfaceField creates an evaluator over the given base grid.
func NewSurfaceField(grid *Grid) *SurfaceField {
	return &SurfaceField{grid: grid}
}

// Grid returns the base grid the field evaluates over.
func (f *SurfaceField) Grid() *Grid {
	return f.grid
}

// Evaluate writes position (x,y,z) and color (r,g,b) for every grid
// vertex into positions and colors, which must each hold 3 floats per
// vertex. Runs once per rendered frame and allocates nothing.
func (f *SurfaceField) Evaluate(cfg core.Config, t float64, positions, colors []float32) {
	// Primary swell: deep-water dispersion c = g*T/(2*pi), scaled by the
	// user speed multiplier and the fixed damping.
	k1 := 2 * math.Pi / cfg.WaveLength
	c1 := gravity * cfg.WavePeriod / (2 * math.Pi) * cfg.WaveSpeed * speedDamping
	dx1 := math.Sin(cfg.WaveDirection)
	dz1 := math.Cos(cfg.WaveDirection)

	// Secondary swell rides at 0.6x the primary wavelength with its own
	// direction and period.
	k2 := 2 * math.Pi / (cfg.WaveLength * 0.6)
	c2 := gravity * cfg.SecondaryWavePeriod / (2 * math.Pi) * cfg.WaveSpeed * speedDamping
	dx2 := math.Sin(cfg.SecondaryWaveDirection)
	dz2 := math.Cos(cfg.SecondaryWaveDirection)

	// Wind chop runs on doubled time and is aligned with the wind.
	chopT := 2 * t
	chopScale := cfg.WindChopIntensity * (1 + cfg.WindSpeed/20) * 3
	wx := math.Sin(cfg.WindDirection)
	wz := math.Cos(cfg.WindDirection)

	fw := cfg.CanyonFocusWidth
	invSpacing := 1 / f.grid.Spacing

	for i := 0; i < len(f.grid.X); i++ {
		x := f.grid.X[i]
		z := f.grid.Z[i]

		canyon := canyonFactor(x, cfg.CanyonAmplification, fw)

		// Linear shoaling toward the beach edge.
		depthFactor := 1 + cfg.DepthEffect*f.grid.ShoreDist[i]

		amp1 := cfg.WaveHeight * canyon * depthFactor
		phase1 := k1 * (dx1*x + dz1*z - c1*t)
		h1 := amp1 * math.Sin(phase1)

		amp2 := cfg.SecondaryWaveHeight * canyon * 0.7
		phase2 := k2 * (dx2*x + dz2*z - c2*t)
		h2 := amp2 * math.Sin(phase2)

		chop := 0.0
		if chopScale != 0 {
			u := wx*x + wz*z
			v := wz*x - wx*z
			p1 := math.Sin(u*0.08+chopT) * math.Cos(v*0.06+chopT*0.8)
			p2 := math.Sin(u*0.15-chopT*1.3) * math.Cos(v*0.11+chopT*1.1)
			p3 := math.Sin(u*0.23+chopT*0.7) * math.Cos(v*0.19-chopT*0.9)
			chop = (p1*0.5 + p2*0.3 + p3*0.2) * chopScale
		}

		height := h1 + h2 + chop

		positions[i*3] = float32(x)
		positions[i*3+1] = float32(height)
		positions[i*3+2] = float32(z)

		// Analytic slope of each swell component, summed and scaled by
		// the lattice spacing, decides where whitewater forms.
		steepness := (math.Abs(amp1*k1*math.Cos(phase1)) + math.Abs(amp2*k2*math.Cos(phase2))) * invSpacing

		foam := 0.0
		if steepness > cfg.FoamThreshold*2 {
			foam = math.Min(1, (steepness-cfg.FoamThreshold)*2) * cfg.FoamIntensity
			// A flat primary swell has no crest to bonus; dividing by it
			// would poison the color channels.
			if cfg.WaveHeight > 0 {
				if crest := height / (2 * cfg.WaveHeight); crest > 0 {
					foam += crest * cfg.FoamIntensity * 0.5
				}
			}
			foam = clamp01(foam)
		}

		// Base water color shifts toward a murky green-gray as clarity
		// drops, then blends to white wherever foam builds up.
		murk := 1 - cfg.WaterClarity
		r := cfg.WaterColor.R * (1 - 0.3*murk)
		g := cfg.WaterColor.G * (1 + 0.1*murk)
		b := cfg.WaterColor.B * (1 - 0.2*murk)

		r += (1 - r) * foam
		g += (1 - g) * foam
		b += (1 - b) * foam

		colors[i*3] = float32(clamp01(r))
		colors[i*3+1] = float32(clamp01(g))
		colors[i*3+2] = float32(clamp01(b))
	}
}

// canyonFactor is the gaussian focusing term centered on the x=0 axis:
// it equals the full amplification on the axis and relaxes to 1 far
// from it. Never below 1 for amplification >= 1.
func canyonFactor(x, amplification, focusWidth float64) float64 {
	cx := x / canyonScale
	return 1 + (amplification-1)*math.Exp(-(cx*cx)/(focusWidth*focusWidth))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
