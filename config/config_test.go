package config

import (
	"math"
	"testing"

	"swellsim/core"
)

func TestClampEnforcesLimits(t *testing.T) {
	cfg := core.Config{
		WaveHeight:          -5,
		WavePeriod:          0,
		WaveLength:          -1,
		WaveSpeed:           100,
		SecondaryWavePeriod: 0,
		WindSpeed:           1e9,
		WindChopIntensity:   7,
		CanyonAmplification: 0,
		CanyonFocusWidth:    0,
		DepthEffect:         2,
		FoamIntensity:       1.5,
		WaterClarity:        -0.5,
		WaterColor:          core.Color{R: 2, G: -1, B: 0.5},
		TimeScale:           50,
	}
	got := Clamp(cfg)

	if got.WaveLength <= 0 || got.WavePeriod <= 0 || got.SecondaryWavePeriod <= 0 {
		t.Errorf("clamp left a zero length or period: %+v", got)
	}
	if got.CanyonAmplification < 1 {
		t.Errorf("amplification %v below 1", got.CanyonAmplification)
	}
	for name, v := range map[string]float64{
		"chop":      got.WindChopIntensity,
		"depth":     got.DepthEffect,
		"foam":      got.FoamIntensity,
		"clarity":   got.WaterClarity,
		"color.r":   got.WaterColor.R,
		"color.g":   got.WaterColor.G,
		"color.b":   got.WaterColor.B,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v outside [0,1]", name, v)
		}
	}
}

func TestClampWrapsDirections(t *testing.T) {
	cfg := Preset("clean")
	cfg.WaveDirection = 3 * math.Pi
	got := Clamp(cfg)
	if got.WaveDirection < -math.Pi || got.WaveDirection > math.Pi {
		t.Errorf("direction %v not wrapped into [-pi, pi]", got.WaveDirection)
	}
}

func TestPresetFallback(t *testing.T) {
	unknown := Preset("no-such-preset")
	clean := Preset("clean")
	if unknown != clean {
		t.Error("unknown preset did not fall back to clean")
	}
}

func TestPresetsPassClamp(t *testing.T) {
	for _, name := range PresetNames() {
		cfg := Preset(name)
		if Clamp(cfg) != cfg {
			t.Errorf("preset %q is outside its own slider limits", name)
		}
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore(Preset("calm"))
	before := store.Snapshot()

	store.Update(func(c *core.Config) { c.WaveHeight = 9 })

	if before.WaveHeight == 9 {
		t.Error("snapshot mutated after store update")
	}
	if store.Snapshot().WaveHeight != 9 {
		t.Errorf("update lost: wave height %v", store.Snapshot().WaveHeight)
	}
}

func TestApplyPresetKeepsDisplayState(t *testing.T) {
	store := NewStore(Preset("calm"))
	store.Update(func(c *core.Config) {
		c.Theme = core.ThemeLight
		c.Wireframe = true
	})

	got := store.ApplyPreset("storm")
	if got.Theme != core.ThemeLight || !got.Wireframe {
		t.Error("preset switch reset theme or wireframe")
	}
	if got.WaveHeight != Preset("storm").WaveHeight {
		t.Errorf("preset not applied: wave height %v", got.WaveHeight)
	}
}

func TestLoadMissingFile(t *testing.T) {
	settings, err := Load("does-not-exist.json")
	if err != nil {
		t.Fatalf("missing settings file reported an error: %v", err)
	}
	if settings.Display.Width != Default().Display.Width {
		t.Error("missing settings file did not fall back to defaults")
	}
}
