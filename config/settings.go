package config

import (
	"encoding/json"
	"fmt"
	"os"

	"swellsim/core"
)

// Settings is everything the application reads at startup: display and
// server options plus the initial swell parameter record.
type Settings struct {
	Display DisplaySettings `json:"display"`
	Server  ServerSettings  `json:"server"`
	Swell   core.Config     `json:"swell"`
}

type DisplaySettings struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	TargetFPS int `json:"targetFps"`
}

type ServerSettings struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

// Default returns the out-of-the-box settings: a clean mid-period
// west swell on the dark theme.
func Default() Settings {
	return Settings{
		Display: DisplaySettings{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 100,
		},
		Swell: Preset("clean"),
	}
}

// Load reads path (settings.json by convention) over the defaults.
// A missing file is not an error, the defaults simply stand.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %v", path, err)
	}

	settings.Swell = Clamp(settings.Swell)
	return settings, nil
}
