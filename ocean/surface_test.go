package ocean

import (
	"math"
	"testing"

	"swellsim/core"
)

func testConfig() core.Config {
	return core.Config{
		WaveHeight:             3,
		WavePeriod:             14,
		WaveDirection:          0.35,
		WaveLength:             200,
		WaveSpeed:              1,
		SecondaryWaveHeight:    0.9,
		SecondaryWavePeriod:    8,
		SecondaryWaveDirection: -0.6,
		WindSpeed:              10,
		WindDirection:          1.2,
		WindChopIntensity:      0.3,
		CanyonAmplification:    2.2,
		CanyonFocusWidth:       0.8,
		DepthEffect:            0.5,
		FoamThreshold:          0.7,
		FoamIntensity:          0.7,
		WaterClarity:           0.75,
		WaterColor:             core.Color{R: 0.04, G: 0.28, B: 0.42},
		Animate:                true,
		TimeScale:              1,
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	grid := NewGrid(1000, 800, 40, 32)
	field := NewSurfaceField(grid)
	cfg := testConfig()
	n := grid.VertexCount()

	pos1 := make([]float32, n*3)
	col1 := make([]float32, n*3)
	pos2 := make([]float32, n*3)
	col2 := make([]float32, n*3)

	field.Evaluate(cfg, 12.75, pos1, col1)
	field.Evaluate(cfg, 12.75, pos2, col2)

	for i := range pos1 {
		if pos1[i] != pos2[i] {
			t.Fatalf("position %d differs between identical evaluations: %v != %v", i, pos1[i], pos2[i])
		}
		if col1[i] != col2[i] {
			t.Fatalf("color %d differs between identical evaluations: %v != %v", i, col1[i], col2[i])
		}
	}
}

func TestEvaluateDoesNotAllocate(t *testing.T) {
	grid := NewGrid(1000, 800, 20, 16)
	field := NewSurfaceField(grid)
	cfg := testConfig()
	n := grid.VertexCount()
	positions := make([]float32, n*3)
	colors := make([]float32, n*3)

	allocs := testing.AllocsPerRun(10, func() {
		field.Evaluate(cfg, 3.5, positions, colors)
	})
	if allocs != 0 {
		t.Errorf("Evaluate allocates %v times per call, want 0", allocs)
	}
}

func TestCanyonProfile(t *testing.T) {
	tests := []struct {
		name          string
		x             float64
		amplification float64
		focusWidth    float64
		want          float64
		epsilon       float64
	}{
		{"axis equals amplification", 0, 2.5, 1, 2.5, 0},
		{"axis with narrow focus", 0, 4, 0.2, 4, 0},
		{"far field decays to one", 5000, 3, 1, 1, 1e-9},
		{"no amplification is flat", 75, 1, 1, 1, 0},
	}
	for _, tt := range tests {
		got := canyonFactor(tt.x, tt.amplification, tt.focusWidth)
		if math.Abs(got-tt.want) > tt.epsilon {
			t.Errorf("%s: canyonFactor(%v, %v, %v) = %v, want %v",
				tt.name, tt.x, tt.amplification, tt.focusWidth, got, tt.want)
		}
	}

	// Factor must shrink monotonically away from the axis and never
	// drop below 1.
	prev := canyonFactor(0, 2.2, 0.8)
	for x := 25.0; x <= 1000; x += 25 {
		got := canyonFactor(x, 2.2, 0.8)
		if got > prev {
			t.Fatalf("canyonFactor grew away from axis at x=%v", x)
		}
		if got < 1 {
			t.Fatalf("canyonFactor(%v) = %v, below 1", x, got)
		}
		prev = got
	}
}

func TestZeroPhaseAtOrigin(t *testing.T) {
	grid := NewGrid(1000, 800, 160, 128)
	field := NewSurfaceField(grid)

	cfg := testConfig()
	cfg.WaveHeight = 8
	cfg.WaveLength = 200
	cfg.WavePeriod = 14
	cfg.SecondaryWaveHeight = 0
	cfg.WindChopIntensity = 0

	n := grid.VertexCount()
	positions := make([]float32, n*3)
	colors := make([]float32, n*3)
	field.Evaluate(cfg, 0, positions, colors)

	// The lattice has a vertex exactly at the origin; with t=0 the
	// primary phase there is 0, so the height must be exactly 0
	// whatever the amplitude works out to.
	origin := -1
	for i := 0; i < n; i++ {
		if grid.X[i] == 0 && grid.Z[i] == 0 {
			origin = i
			break
		}
	}
	if origin < 0 {
		t.Fatal("grid has no vertex at the origin")
	}
	if h := positions[origin*3+1]; h != 0 {
		t.Errorf("height at origin, t=0: %v, want exactly 0", h)
	}
}

func TestChopSuppression(t *testing.T) {
	grid := NewGrid(1000, 800, 40, 32)
	field := NewSurfaceField(grid)
	n := grid.VertexCount()

	cfg := testConfig()
	cfg.WindChopIntensity = 0
	cfg.WindSpeed = 0

	calm := make([]float32, n*3)
	colors := make([]float32, n*3)
	field.Evaluate(cfg, 7.3, calm, colors)

	// With zero chop intensity the wind terms must vanish entirely, so
	// wind speed and direction cannot influence the surface.
	cfg.WindSpeed = 55
	cfg.WindDirection = 2.4
	windy := make([]float32, n*3)
	field.Evaluate(cfg, 7.3, windy, colors)

	for i := range calm {
		if calm[i] != windy[i] {
			t.Fatalf("zero chop intensity still lets wind shift vertex %d: %v != %v", i, calm[i], windy[i])
		}
	}
}

func TestFoamAndColorBounds(t *testing.T) {
	grid := NewGrid(1000, 800, 40, 32)
	field := NewSurfaceField(grid)
	n := grid.VertexCount()
	positions := make([]float32, n*3)
	colors := make([]float32, n*3)

	// Storm-like settings push steepness well past the threshold. The
	// second case has a flat primary swell with the secondary alone
	// tripping the foam branch, so the crest bonus has no primary
	// amplitude to divide by.
	storm := testConfig()
	storm.WaveHeight = 12
	storm.WaveLength = 30
	storm.FoamThreshold = 0.05
	storm.FoamIntensity = 1
	storm.WaterClarity = 0

	flat := testConfig()
	flat.WaveHeight = 0
	flat.SecondaryWaveHeight = 12
	flat.WaveLength = 30
	flat.FoamThreshold = 0.05
	flat.FoamIntensity = 0

	for _, cfg := range []core.Config{storm, flat} {
		for _, tm := range []float64{0, 1.7, 13.4, 250} {
			field.Evaluate(cfg, tm, positions, colors)
			for i, c := range colors {
				if c < 0 || c > 1 || math.IsNaN(float64(c)) {
					t.Fatalf("color channel %d = %v at t=%v, outside [0,1]", i, c, tm)
				}
			}
			for i := 0; i < n; i++ {
				if math.IsNaN(float64(positions[i*3+1])) || math.IsInf(float64(positions[i*3+1]), 0) {
					t.Fatalf("non-finite height at vertex %d, t=%v", i, tm)
				}
			}
		}
	}
}

func TestGridShoreRamp(t *testing.T) {
	grid := NewGrid(1000, 800, 10, 8)

	for i := 0; i < grid.VertexCount(); i++ {
		sd := grid.ShoreDist[i]
		if sd < 0 || sd > 1 {
			t.Fatalf("shore distance %v outside [0,1]", sd)
		}
	}

	// Back row sits at 0, front (shore) row at 1.
	if grid.ShoreDist[0] != 0 {
		t.Errorf("back edge shore distance = %v, want 0", grid.ShoreDist[0])
	}
	last := grid.VertexCount() - 1
	if grid.ShoreDist[last] != 1 {
		t.Errorf("front edge shore distance = %v, want 1", grid.ShoreDist[last])
	}
}
