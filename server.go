package main

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"swellsim/config"
	"swellsim/core"
	"swellsim/ocean"
	"swellsim/terrain"
)

// FrameData is one evaluated ocean frame, index-aligned with the grid
// the client received in TerrainData.
type FrameData struct {
	Type      string      `json:"type"`
	Positions []float32   `json:"positions"`
	Colors    []float32   `json:"colors"`
	Time      float64     `json:"time"`
	Config    core.Config `json:"config"`
}

// TerrainData carries the static scene once per connection.
type TerrainData struct {
	Type         string        `json:"type"`
	OceanIndices []int32       `json:"oceanIndices"`
	Features     []FeatureData `json:"features"`
}

type FeatureData struct {
	Kind      string     `json:"kind"`
	Positions []float32  `json:"positions"`
	Colors    []float32  `json:"colors,omitempty"`
	Indices   []int32    `json:"indices"`
	Position  [3]float64 `json:"position"`
	RotationY float64    `json:"rotationY"`
	Scale     float64    `json:"scale"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

var (
	srvStore *config.Store
	srvField *ocean.SurfaceField
	srvScene *Scene
	srvClock *core.AnimationClock

	clients      = make(map[*websocket.Conn]*sync.Mutex)
	clientsMutex sync.RWMutex
)

func runServer(settings config.ServerSettings, store *config.Store, field *ocean.SurfaceField, scene *Scene) {
	srvStore = store
	srvField = field
	srvScene = scene
	srvClock = core.NewAnimationClock()

	go simulationLoop(time.Duration(settings.UpdateIntervalMs) * time.Millisecond)

	http.HandleFunc("/ws", handleWebSocket)
	http.Handle("/", http.FileServer(http.Dir("web/")))

	fmt.Printf("Viewer server starting on http://localhost:%d\n", settings.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", settings.Port), nil))
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	clientsMutex.Lock()
	clients[conn] = connMutex
	clientsMutex.Unlock()
	defer func() {
		clientsMutex.Lock()
		delete(clients, conn)
		clientsMutex.Unlock()
	}()

	// The static scene goes out once, frames follow from the loop.
	connMutex.Lock()
	err = conn.WriteJSON(createTerrainData())
	connMutex.Unlock()
	if err != nil {
		log.Println("WebSocket write error:", err)
		return
	}

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Println("WebSocket read error:", err)
			break
		}
		applyControlMessage(msg)
	}
}

// applyControlMessage maps a client control message onto the config
// store. Unknown keys are ignored; values are clamped on the way in.
func applyControlMessage(msg map[string]interface{}) {
	if preset, ok := msg["preset"].(string); ok {
		cfg := srvStore.ApplyPreset(preset)
		fmt.Printf("PRESET: %s (%.1fm @ %.0fs)\n", preset, cfg.WaveHeight, cfg.WavePeriod)
		return
	}

	srvStore.Update(func(cfg *core.Config) {
		fields := map[string]*float64{
			"waveHeight":             &cfg.WaveHeight,
			"wavePeriod":             &cfg.WavePeriod,
			"waveDirection":          &cfg.WaveDirection,
			"waveLength":             &cfg.WaveLength,
			"waveSpeed":              &cfg.WaveSpeed,
			"secondaryWaveHeight":    &cfg.SecondaryWaveHeight,
			"secondaryWavePeriod":    &cfg.SecondaryWavePeriod,
			"secondaryWaveDirection": &cfg.SecondaryWaveDirection,
			"windSpeed":              &cfg.WindSpeed,
			"windDirection":          &cfg.WindDirection,
			"windChopIntensity":      &cfg.WindChopIntensity,
			"canyonAmplification":    &cfg.CanyonAmplification,
			"canyonFocusWidth":       &cfg.CanyonFocusWidth,
			"depthEffect":            &cfg.DepthEffect,
			"foamThreshold":          &cfg.FoamThreshold,
			"foamIntensity":          &cfg.FoamIntensity,
			"waterClarity":           &cfg.WaterClarity,
			"timeScale":              &cfg.TimeScale,
		}
		for key, dst := range fields {
			if v, ok := msg[key].(float64); ok {
				*dst = v
			}
		}
		if v, ok := msg["animate"].(bool); ok {
			cfg.Animate = v
		}
		if v, ok := msg["wireframe"].(bool); ok {
			cfg.Wireframe = v
		}
		if v, ok := msg["theme"].(string); ok {
			if v == "light" {
				cfg.Theme = core.ThemeLight
			} else {
				cfg.Theme = core.ThemeDark
			}
		}
	})
}

func simulationLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	grid := srvField.Grid()
	n := grid.VertexCount()
	positions := make([]float32, n*3)
	colors := make([]float32, n*3)

	dt := interval.Seconds()
	lastPrintTime := time.Now()
	frames := 0

	for range ticker.C {
		cfg := srvStore.Snapshot()
		t := srvClock.Advance(dt, cfg.Animate, cfg.TimeScale)

		evalStart := time.Now()
		srvField.Evaluate(cfg, t, positions, colors)
		evalTime := time.Since(evalStart)

		broadcastFrame(FrameData{
			Type:      "frame",
			Positions: positions,
			Colors:    colors,
			Time:      t,
			Config:    cfg,
		})

		frames++
		if time.Since(lastPrintTime) > time.Second {
			clientsMutex.RLock()
			clientCount := len(clients)
			clientsMutex.RUnlock()
			fmt.Printf("TIMING: Eval=%v, SimTime=%.1fs, Frames=%d, Clients=%d\n",
				evalTime, t, frames, clientCount)
			lastPrintTime = time.Now()
			frames = 0
		}
	}
}

func broadcastFrame(frame FrameData) {
	clientsMutex.RLock()
	clientsToRemove := []*websocket.Conn{}
	for client, mutex := range clients {
		mutex.Lock()
		err := client.WriteJSON(frame)
		mutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			client.Close()
			clientsToRemove = append(clientsToRemove, client)
		}
	}
	clientsMutex.RUnlock()

	if len(clientsToRemove) > 0 {
		clientsMutex.Lock()
		for _, client := range clientsToRemove {
			delete(clients, client)
		}
		clientsMutex.Unlock()
	}
}

func createTerrainData() TerrainData {
	data := TerrainData{
		Type:         "terrain",
		OceanIndices: srvField.Grid().Indices,
	}

	data.Features = append(data.Features, featureData("cliff", srvScene.Cliff, terrain.Transform{
		Position:  core.Vector3{Z: 610},
		RotationY: 3.14159265,
		Scale:     1,
	}))
	data.Features = append(data.Features, featureData("beach", srvScene.Beach, terrain.Transform{
		Position: core.Vector3{Z: 490},
		Scale:    1,
	}))
	for _, f := range srvScene.Rocks {
		data.Features = append(data.Features, featureData("rock", f.Geometry, f.Transform))
	}
	for _, f := range srvScene.Outcrops {
		data.Features = append(data.Features, featureData("outcrop", f.Geometry, f.Transform))
	}

	return data
}

func featureData(kind string, geo *terrain.Geometry, tr terrain.Transform) FeatureData {
	return FeatureData{
		Kind:      kind,
		Positions: geo.Positions,
		Colors:    geo.Colors,
		Indices:   geo.Indices,
		Position:  [3]float64{tr.Position.X, tr.Position.Y, tr.Position.Z},
		RotationY: tr.RotationY,
		Scale:     tr.Scale,
	}
}
