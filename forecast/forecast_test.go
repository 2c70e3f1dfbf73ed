package forecast

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"swellsim/core"
)

const sampleForecast = `PZZ750-221500-
WATERS FROM POINT PINOS TO POINT PIEDRAS BLANCAS
.TODAY...NW WINDS 10 TO 20 KT WITH GUSTS TO 25 KT. SEAS 4 TO 6 FT.
W SWELL 8 FT AT 14 SECONDS. SW SWELL 3 FT AT 9 SECONDS.
`

func TestParse(t *testing.T) {
	report, err := Parse(sampleForecast)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if report.WindDirection != "NW" {
		t.Errorf("wind direction %q, want NW", report.WindDirection)
	}
	if report.WindSpeedKt != 15 {
		t.Errorf("wind speed %v kt, want 15 (midpoint of 10-20)", report.WindSpeedKt)
	}
	if report.GustKt != 25 {
		t.Errorf("gusts %v kt, want 25", report.GustKt)
	}
	if report.SeasMinFt != 4 || report.SeasMaxFt != 6 {
		t.Errorf("seas %v-%v ft, want 4-6", report.SeasMinFt, report.SeasMaxFt)
	}

	if len(report.Swells) != 2 {
		t.Fatalf("parsed %d swell components, want 2", len(report.Swells))
	}
	primary := report.Swells[0]
	if primary.Direction != "W" || primary.HeightFt != 8 || primary.PeriodSec != 14 {
		t.Errorf("primary swell = %+v, want W 8 ft at 14 s", primary)
	}
	secondary := report.Swells[1]
	if secondary.Direction != "SW" || secondary.HeightFt != 3 || secondary.PeriodSec != 9 {
		t.Errorf("secondary swell = %+v, want SW 3 ft at 9 s", secondary)
	}
}

func TestParseRejectsEmptyProduct(t *testing.T) {
	if _, err := Parse("SUNNY. LIGHT WINDS."); err == nil {
		t.Error("expected an error for text with no swell or seas lines")
	}
}

func TestApply(t *testing.T) {
	report, err := Parse(sampleForecast)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg := report.Apply(core.Config{TimeScale: 1, Animate: true})

	const epsilon = 1e-9
	if math.Abs(cfg.WaveHeight-8*0.3048) > epsilon {
		t.Errorf("wave height %v m, want %v", cfg.WaveHeight, 8*0.3048)
	}
	if cfg.WavePeriod != 14 {
		t.Errorf("wave period %v, want 14", cfg.WavePeriod)
	}
	wantLength := 9.81 * 14 * 14 / (2 * math.Pi)
	if math.Abs(cfg.WaveLength-wantLength) > epsilon {
		t.Errorf("wave length %v, want %v from the dispersion relation", cfg.WaveLength, wantLength)
	}
	// W is 270 degrees, which maps to -pi/2.
	if math.Abs(cfg.WaveDirection+math.Pi/2) > epsilon {
		t.Errorf("wave direction %v, want %v", cfg.WaveDirection, -math.Pi/2)
	}
	if cfg.SecondaryWaveHeight == 0 || cfg.SecondaryWavePeriod != 9 {
		t.Errorf("secondary swell not applied: %+v", cfg)
	}
	if cfg.WindSpeed != 15 {
		t.Errorf("wind speed %v, want 15", cfg.WindSpeed)
	}
	if cfg.WindChopIntensity <= 0 || cfg.WindChopIntensity > 1 {
		t.Errorf("chop intensity %v outside (0,1]", cfg.WindChopIntensity)
	}
	// Untouched fields survive.
	if cfg.TimeScale != 1 || !cfg.Animate {
		t.Error("apply clobbered unrelated fields")
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleForecast))
	}))
	defer srv.Close()

	report, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(report.Swells) != 2 {
		t.Errorf("fetched report has %d swells, want 2", len(report.Swells))
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}
