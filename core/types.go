package core

import "math"

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{0, 0, 0}
	}
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

// Color is an RGB triple with channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Theme selects between the two fixed material palettes.
// It never affects geometry, only the colors the renderer assigns.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Config is the per-frame parameter snapshot for the ocean surface.
// It is passed by value everywhere and never mutated by the evaluation
// code. All lengths are in world units, periods in seconds, directions
// in radians. The config boundary guarantees waveLength, wavePeriod and
// secondaryWavePeriod are strictly positive and that fractional
// parameters lie in [0,1]; nothing below re-checks that.
type Config struct {
	WaveHeight    float64 `json:"waveHeight"`
	WavePeriod    float64 `json:"wavePeriod"`
	WaveDirection float64 `json:"waveDirection"`
	WaveLength    float64 `json:"waveLength"`
	WaveSpeed     float64 `json:"waveSpeed"` // phase-speed multiplier

	SecondaryWaveHeight    float64 `json:"secondaryWaveHeight"`
	SecondaryWavePeriod    float64 `json:"secondaryWavePeriod"`
	SecondaryWaveDirection float64 `json:"secondaryWaveDirection"`

	WindSpeed         float64 `json:"windSpeed"`
	WindDirection     float64 `json:"windDirection"`
	WindChopIntensity float64 `json:"windChopIntensity"`

	CanyonAmplification float64 `json:"canyonAmplification"`
	CanyonFocusWidth    float64 `json:"canyonFocusWidth"`
	DepthEffect         float64 `json:"depthEffect"`

	FoamThreshold float64 `json:"foamThreshold"`
	FoamIntensity float64 `json:"foamIntensity"`

	WaterClarity float64 `json:"waterClarity"`
	WaterColor   Color   `json:"waterColor"`

	Wireframe bool    `json:"wireframe"`
	Animate   bool    `json:"animate"`
	TimeScale float64 `json:"timeScale"`

	Theme Theme `json:"theme"`
}
