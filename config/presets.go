package config

import (
	"math"

	"swellsim/core"
)

// presets are the named starting conditions selectable from the UI and
// the -preset flag. Directions are radians from shore-normal.
var presets = map[string]core.Config{
	"calm": {
		WaveHeight:             1.2,
		WavePeriod:             9,
		WaveDirection:          0.2,
		WaveLength:             110,
		WaveSpeed:              1,
		SecondaryWaveHeight:    0.4,
		SecondaryWavePeriod:    6,
		SecondaryWaveDirection: -0.4,
		WindSpeed:              4,
		WindDirection:          math.Pi / 3,
		WindChopIntensity:      0.1,
		CanyonAmplification:    1.4,
		CanyonFocusWidth:       1.0,
		DepthEffect:            0.3,
		FoamThreshold:          0.9,
		FoamIntensity:          0.5,
		WaterClarity:           0.85,
		WaterColor:             core.Color{R: 0.05, G: 0.32, B: 0.45},
		Animate:                true,
		TimeScale:              1,
	},
	"clean": {
		WaveHeight:             3.0,
		WavePeriod:             14,
		WaveDirection:          0.35,
		WaveLength:             200,
		WaveSpeed:              1,
		SecondaryWaveHeight:    0.9,
		SecondaryWavePeriod:    8,
		SecondaryWaveDirection: -0.6,
		WindSpeed:              6,
		WindDirection:          -math.Pi / 2,
		WindChopIntensity:      0.15,
		CanyonAmplification:    2.2,
		CanyonFocusWidth:       0.8,
		DepthEffect:            0.5,
		FoamThreshold:          0.7,
		FoamIntensity:          0.7,
		WaterClarity:           0.75,
		WaterColor:             core.Color{R: 0.04, G: 0.28, B: 0.42},
		Animate:                true,
		TimeScale:              1,
	},
	"storm": {
		WaveHeight:             6.5,
		WavePeriod:             11,
		WaveDirection:          0.6,
		WaveLength:             160,
		WaveSpeed:              1.2,
		SecondaryWaveHeight:    2.5,
		SecondaryWavePeriod:    7,
		SecondaryWaveDirection: 1.1,
		WindSpeed:              28,
		WindDirection:          0.8,
		WindChopIntensity:      0.8,
		CanyonAmplification:    2.8,
		CanyonFocusWidth:       1.2,
		DepthEffect:            0.7,
		FoamThreshold:          0.4,
		FoamIntensity:          1.0,
		WaterClarity:           0.3,
		WaterColor:             core.Color{R: 0.08, G: 0.22, B: 0.3},
		Animate:                true,
		TimeScale:              1,
	},
	"glass": {
		WaveHeight:             2.0,
		WavePeriod:             16,
		WaveDirection:          0.1,
		WaveLength:             240,
		WaveSpeed:              1,
		SecondaryWaveHeight:    0.3,
		SecondaryWavePeriod:    10,
		SecondaryWaveDirection: 0.5,
		WindSpeed:              1,
		WindDirection:          0,
		WindChopIntensity:      0.02,
		CanyonAmplification:    1.8,
		CanyonFocusWidth:       0.7,
		DepthEffect:            0.45,
		FoamThreshold:          1.1,
		FoamIntensity:          0.4,
		WaterClarity:           0.95,
		WaterColor:             core.Color{R: 0.03, G: 0.3, B: 0.48},
		Animate:                true,
		TimeScale:              1,
	},
}

// Preset returns a copy of the named preset, falling back to "clean"
// for unknown names.
func Preset(name string) core.Config {
	if cfg, ok := presets[name]; ok {
		return cfg
	}
	return presets["clean"]
}

// PresetNames lists the available preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
