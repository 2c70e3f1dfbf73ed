package forecast

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"swellsim/core"
)

// SwellComponent is one swell line from a marine forecast product.
type SwellComponent struct {
	Direction string  // compass point, e.g. "W", "NW"
	HeightFt  float64 // feet
	PeriodSec float64 // seconds
}

// Report is the parsed result of a marine text forecast. Units stay in
// the source's marine conventions (feet, knots, compass points) until
// Apply maps them onto a config snapshot.
type Report struct {
	WindDirection string
	WindSpeedKt   float64 // midpoint of the forecast range
	GustKt        float64
	Swells        []SwellComponent
	SeasMinFt     float64
	SeasMaxFt     float64
	Raw           string
	FetchedAt     time.Time
}

var (
	windRe  = regexp.MustCompile(`(?i)\b([NSEW]{1,3})\s+WINDS?\s+(\d+)(?:\s+TO\s+(\d+))?\s+KT`)
	gustRe  = regexp.MustCompile(`(?i)GUSTS?\s+(?:TO\s+)?(\d+)\s+KT`)
	swellRe = regexp.MustCompile(`(?i)\b([NSEW]{1,3})\s+SWELL\s+(\d+(?:\.\d+)?)\s+FT\s+AT\s+(\d+)\s+SECONDS?`)
	seasRe  = regexp.MustCompile(`(?i)\bSEAS\s+(\d+(?:\.\d+)?)(?:\s+TO\s+(\d+(?:\.\d+)?))?\s+FT`)
)

// compassDeg maps 16-point compass directions to degrees; conversion to
// the config record's radians happens in compassToRadians.
var compassDeg = map[string]float64{
	"N": 0, "NNE": 22.5, "NE": 45, "ENE": 67.5,
	"E": 90, "ESE": 112.5, "SE": 135, "SSE": 157.5,
	"S": 180, "SSW": 202.5, "SW": 225, "WSW": 247.5,
	"W": 270, "WNW": 292.5, "NW": 315, "NNW": 337.5,
}

const feetToMeters = 0.3048

// Fetch downloads a marine forecast text product and parses it.
func Fetch(ctx context.Context, url string) (Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("forecast fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("forecast fetch failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Report{}, fmt.Errorf("forecast read failed: %v", err)
	}

	return Parse(string(body))
}

// Parse extracts wind, swell and seas figures from a NOAA-style marine
// forecast text. At least one swell or seas line must be present;
// anything else missing just leaves its zero value.
func Parse(text string) (Report, error) {
	report := Report{Raw: text, FetchedAt: time.Now()}

	if m := windRe.FindStringSubmatch(text); m != nil {
		report.WindDirection = strings.ToUpper(m[1])
		lo, _ := strconv.ParseFloat(m[2], 64)
		hi := lo
		if m[3] != "" {
			hi, _ = strconv.ParseFloat(m[3], 64)
		}
		report.WindSpeedKt = (lo + hi) / 2
	}
	if m := gustRe.FindStringSubmatch(text); m != nil {
		report.GustKt, _ = strconv.ParseFloat(m[1], 64)
	}

	for _, m := range swellRe.FindAllStringSubmatch(text, -1) {
		height, _ := strconv.ParseFloat(m[2], 64)
		period, _ := strconv.ParseFloat(m[3], 64)
		report.Swells = append(report.Swells, SwellComponent{
			Direction: strings.ToUpper(m[1]),
			HeightFt:  height,
			PeriodSec: period,
		})
	}

	if m := seasRe.FindStringSubmatch(text); m != nil {
		report.SeasMinFt, _ = strconv.ParseFloat(m[1], 64)
		report.SeasMaxFt = report.SeasMinFt
		if m[2] != "" {
			report.SeasMaxFt, _ = strconv.ParseFloat(m[2], 64)
		}
	}

	if len(report.Swells) == 0 && report.SeasMaxFt == 0 {
		return report, fmt.Errorf("no swell or seas information in forecast text")
	}

	return report, nil
}

// Apply maps the report onto a config snapshot: feet become meters,
// compass points become radians, and the primary swell period sets the
// wavelength through the deep-water relation L = g*T^2/(2*pi). Fields
// the report says nothing about are left alone. The result still goes
// through the config store's clamp on the way in.
func (r Report) Apply(cfg core.Config) core.Config {
	if len(r.Swells) > 0 {
		primary := r.Swells[0]
		cfg.WaveHeight = primary.HeightFt * feetToMeters
		cfg.WavePeriod = primary.PeriodSec
		cfg.WaveLength = 9.81 * primary.PeriodSec * primary.PeriodSec / (2 * math.Pi)
		if rad, ok := compassToRadians(primary.Direction); ok {
			cfg.WaveDirection = rad
		}

		if len(r.Swells) > 1 {
			secondary := r.Swells[1]
			cfg.SecondaryWaveHeight = secondary.HeightFt * feetToMeters
			cfg.SecondaryWavePeriod = secondary.PeriodSec
			if rad, ok := compassToRadians(secondary.Direction); ok {
				cfg.SecondaryWaveDirection = rad
			}
		}
	} else if r.SeasMaxFt > 0 {
		cfg.WaveHeight = (r.SeasMinFt + r.SeasMaxFt) / 2 * feetToMeters
	}

	if r.WindSpeedKt > 0 {
		cfg.WindSpeed = r.WindSpeedKt
		cfg.WindChopIntensity = math.Min(1, r.WindSpeedKt/40)
		if rad, ok := compassToRadians(r.WindDirection); ok {
			cfg.WindDirection = rad
		}
	}

	return cfg
}

func compassToRadians(dir string) (float64, bool) {
	deg, ok := compassDeg[dir]
	if !ok {
		return 0, false
	}
	rad := deg * math.Pi / 180
	if rad > math.Pi {
		rad -= 2 * math.Pi
	}
	return rad, true
}
