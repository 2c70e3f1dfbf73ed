package config

import (
	"math"

	"swellsim/core"
)

// Slider limits. The evaluation core assumes every parameter has passed
// through these, so it never re-validates: lengths and periods stay
// strictly positive, fractional parameters stay in [0,1], amplification
// never drops below 1.
var (
	waveHeightLimit    = limit{0, 12}
	wavePeriodLimit    = limit{4, 25}
	waveLengthLimit    = limit{20, 600}
	waveSpeedLimit     = limit{0.1, 3}
	windSpeedLimit     = limit{0, 60}
	chopLimit          = limit{0, 1}
	amplificationLimit = limit{1, 5}
	focusWidthLimit    = limit{0.1, 4}
	depthEffectLimit   = limit{0, 1}
	foamThresholdLimit = limit{0.05, 3}
	fractionLimit      = limit{0, 1}
	timeScaleLimit     = limit{0, 10}
)

type limit struct {
	min, max float64
}

func (l limit) clamp(v float64) float64 {
	return math.Max(l.min, math.Min(l.max, v))
}

func wrapAngle(v float64) float64 {
	v = math.Mod(v, 2*math.Pi)
	if v > math.Pi {
		v -= 2 * math.Pi
	} else if v < -math.Pi {
		v += 2 * math.Pi
	}
	return v
}

// Clamp forces every field of cfg into its slider range. This is the
// single place where the evaluation core's precondition contract is
// made true; anything arriving from JSON, websocket messages or
// forecast ingestion goes through here first.
func Clamp(cfg core.Config) core.Config {
	cfg.WaveHeight = waveHeightLimit.clamp(cfg.WaveHeight)
	cfg.WavePeriod = wavePeriodLimit.clamp(cfg.WavePeriod)
	cfg.WaveDirection = wrapAngle(cfg.WaveDirection)
	cfg.WaveLength = waveLengthLimit.clamp(cfg.WaveLength)
	cfg.WaveSpeed = waveSpeedLimit.clamp(cfg.WaveSpeed)

	cfg.SecondaryWaveHeight = waveHeightLimit.clamp(cfg.SecondaryWaveHeight)
	cfg.SecondaryWavePeriod = wavePeriodLimit.clamp(cfg.SecondaryWavePeriod)
	cfg.SecondaryWaveDirection = wrapAngle(cfg.SecondaryWaveDirection)

	cfg.WindSpeed = windSpeedLimit.clamp(cfg.WindSpeed)
	cfg.WindDirection = wrapAngle(cfg.WindDirection)
	cfg.WindChopIntensity = chopLimit.clamp(cfg.WindChopIntensity)

	cfg.CanyonAmplification = amplificationLimit.clamp(cfg.CanyonAmplification)
	cfg.CanyonFocusWidth = focusWidthLimit.clamp(cfg.CanyonFocusWidth)
	cfg.DepthEffect = depthEffectLimit.clamp(cfg.DepthEffect)

	cfg.FoamThreshold = foamThresholdLimit.clamp(cfg.FoamThreshold)
	cfg.FoamIntensity = fractionLimit.clamp(cfg.FoamIntensity)

	cfg.WaterClarity = fractionLimit.clamp(cfg.WaterClarity)
	cfg.WaterColor.R = fractionLimit.clamp(cfg.WaterColor.R)
	cfg.WaterColor.G = fractionLimit.clamp(cfg.WaterColor.G)
	cfg.WaterColor.B = fractionLimit.clamp(cfg.WaterColor.B)

	cfg.TimeScale = timeScaleLimit.clamp(cfg.TimeScale)

	if cfg.Theme != core.ThemeLight {
		cfg.Theme = core.ThemeDark
	}

	return cfg
}
