package main

import (
	"fmt"
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"swellsim/config"
	"swellsim/core"
	"swellsim/ocean"
	"swellsim/terrain"
)

// Buffer slots in raylib's default vertex layout.
const (
	bufferVertices = 0
	bufferNormals  = 2
	bufferColors   = 3
)

// palette holds the per-theme material colors. Theme selection never
// touches geometry, it only swaps these.
type palette struct {
	sky     rl.Color
	water   rl.Color
	cliff   rl.Color
	rock    rl.Color
	sandDry rl.Color
	sandWet rl.Color
	text    rl.Color
}

var darkPalette = palette{
	sky:     rl.NewColor(16, 22, 36, 255),
	water:   rl.White,
	cliff:   rl.NewColor(74, 64, 58, 255),
	rock:    rl.NewColor(90, 86, 82, 255),
	sandDry: rl.NewColor(168, 150, 120, 255),
	sandWet: rl.NewColor(108, 94, 72, 255),
	text:    rl.RayWhite,
}

var lightPalette = palette{
	sky:     rl.NewColor(152, 200, 235, 255),
	water:   rl.White,
	cliff:   rl.NewColor(150, 132, 112, 255),
	rock:    rl.NewColor(162, 154, 142, 255),
	sandDry: rl.NewColor(224, 206, 164, 255),
	sandWet: rl.NewColor(172, 152, 112, 255),
	text:    rl.NewColor(30, 40, 50, 255),
}

// meshBuffers pins the Go-side arrays a raylib mesh points into, so the
// GC can never collect them while the mesh lives.
type meshBuffers struct {
	mesh      rl.Mesh
	model     rl.Model
	positions []float32
	normals   []float32
	colors    []uint8
	indices   []uint16
}

var presetOrder = []string{"calm", "glass", "clean", "storm"}

func runRenderer(display config.DisplaySettings, store *config.Store, field *ocean.SurfaceField, scene *Scene) {
	rl.InitWindow(int32(display.Width), int32(display.Height), "swellsim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(display.TargetFPS))

	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, 150, -520),
		Target:     rl.NewVector3(0, 0, 120),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       55,
		Projection: rl.CameraPerspective,
	}

	grid := field.Grid()
	n := grid.VertexCount()
	colors := make([]float32, n*3)

	oceanSurface := newMeshBuffers(nil, grid.Indices, true)
	positions := oceanSurface.positions
	cliff := newStaticFeature(scene.Cliff)
	beach := newMeshBuffers(scene.Beach, scene.Beach.Indices, true)
	rockModels := make([]*meshBuffers, len(scene.Rocks))
	for i, f := range scene.Rocks {
		rockModels[i] = newStaticFeature(f.Geometry)
	}
	outcropModels := make([]*meshBuffers, len(scene.Outcrops))
	for i, f := range scene.Outcrops {
		outcropModels[i] = newStaticFeature(f.Geometry)
	}

	clock := core.NewAnimationClock()
	presetIdx := 2 // "clean"
	lastTheme := core.Theme(-1)

	fmt.Println("\nControls:")
	fmt.Println("  P: cycle swell preset")
	fmt.Println("  T: toggle dark/light theme")
	fmt.Println("  F: toggle wireframe")
	fmt.Println("  SPACE: pause/resume animation")
	fmt.Println("  ESC: exit")

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyP) {
			presetIdx = (presetIdx + 1) % len(presetOrder)
			store.ApplyPreset(presetOrder[presetIdx])
		}
		if rl.IsKeyPressed(rl.KeyT) {
			store.Update(func(c *core.Config) {
				if c.Theme == core.ThemeDark {
					c.Theme = core.ThemeLight
				} else {
					c.Theme = core.ThemeDark
				}
			})
		}
		if rl.IsKeyPressed(rl.KeyF) {
			store.Update(func(c *core.Config) { c.Wireframe = !c.Wireframe })
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			store.Update(func(c *core.Config) { c.Animate = !c.Animate })
		}

		cfg := store.Snapshot()
		pal := darkPalette
		if cfg.Theme == core.ThemeLight {
			pal = lightPalette
		}

		t := clock.Advance(float64(rl.GetFrameTime()), cfg.Animate, cfg.TimeScale)
		field.Evaluate(cfg, t, positions, colors)
		computeNormals(positions, grid.Indices, oceanSurface.normals)
		packColors(colors, oceanSurface.colors)
		oceanSurface.uploadDynamic()

		if cfg.Theme != lastTheme {
			packWetness(scene.Beach.Colors, pal.sandDry, pal.sandWet, beach.colors)
			rl.UpdateMeshBuffer(beach.mesh, bufferColors, beach.colors, 0)
			lastTheme = cfg.Theme
		}

		rl.BeginDrawing()
		rl.ClearBackground(pal.sky)
		rl.BeginMode3D(camera)

		if cfg.Wireframe {
			rl.DrawModelWires(oceanSurface.model, rl.NewVector3(0, 0, 0), 1, pal.water)
		} else {
			rl.DrawModel(oceanSurface.model, rl.NewVector3(0, 0, 0), 1, pal.water)
		}

		rl.DrawModel(beach.model, rl.NewVector3(0, 0, 490), 1, rl.White)
		rl.DrawModelEx(cliff.model, rl.NewVector3(0, 0, 610),
			rl.NewVector3(0, 1, 0), 180, rl.NewVector3(1, 1, 1), pal.cliff)

		for i, f := range scene.Rocks {
			drawFeature(rockModels[i], f.Transform, pal.rock)
		}
		for i, f := range scene.Outcrops {
			drawFeature(outcropModels[i], f.Transform, pal.rock)
		}

		rl.EndMode3D()

		rl.DrawFPS(10, 10)
		status := fmt.Sprintf("%s | %.1fm @ %.0fs | wind %.0f kt | %s",
			presetOrder[presetIdx], cfg.WaveHeight, cfg.WavePeriod, cfg.WindSpeed, cfg.Theme)
		rl.DrawText(status, 10, int32(display.Height)-28, 18, pal.text)
		rl.EndDrawing()
	}
}

func drawFeature(mb *meshBuffers, tr terrain.Transform, tint rl.Color) {
	pos := rl.NewVector3(float32(tr.Position.X), float32(tr.Position.Y), float32(tr.Position.Z))
	angle := float32(tr.RotationY * 180 / math.Pi)
	s := float32(tr.Scale)
	rl.DrawModelEx(mb.model, pos, rl.NewVector3(0, 1, 0), angle, rl.NewVector3(s, s, s), tint)
}

// newMeshBuffers wires a raylib mesh over Go-owned arrays. When geo is
// nil the caller fills positions itself before the first frame.
func newMeshBuffers(geo *terrain.Geometry, indices []int32, dynamic bool) *meshBuffers {
	mb := &meshBuffers{}

	vertexCount := 0
	if geo != nil {
		vertexCount = len(geo.Positions) / 3
		mb.positions = make([]float32, len(geo.Positions))
		copy(mb.positions, geo.Positions)
	} else {
		// Ocean path: count from the index range.
		for _, idx := range indices {
			if int(idx) >= vertexCount {
				vertexCount = int(idx) + 1
			}
		}
		mb.positions = make([]float32, vertexCount*3)
	}

	mb.normals = make([]float32, vertexCount*3)
	mb.colors = make([]uint8, vertexCount*4)
	for i := range mb.colors {
		mb.colors[i] = 255
	}
	mb.indices = make([]uint16, len(indices))
	for i, idx := range indices {
		mb.indices[i] = uint16(idx)
	}

	computeNormals(mb.positions, indices, mb.normals)

	mb.mesh = rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(len(indices) / 3),
	}
	mb.mesh.Vertices = &mb.positions[0]
	mb.mesh.Normals = &mb.normals[0]
	mb.mesh.Colors = &mb.colors[0]
	mb.mesh.Indices = &mb.indices[0]

	rl.UploadMesh(&mb.mesh, dynamic)
	mb.model = rl.LoadModelFromMesh(mb.mesh)
	return mb
}

func newStaticFeature(geo *terrain.Geometry) *meshBuffers {
	return newMeshBuffers(geo, geo.Indices, false)
}

// uploadDynamic pushes the current position/normal/color arrays to the
// GPU. Positions are shared with the surface evaluator's output buffer.
func (mb *meshBuffers) uploadDynamic() {
	rl.UpdateMeshBuffer(mb.mesh, bufferVertices, f32Bytes(mb.positions), 0)
	rl.UpdateMeshBuffer(mb.mesh, bufferNormals, f32Bytes(mb.normals), 0)
	rl.UpdateMeshBuffer(mb.mesh, bufferColors, mb.colors, 0)
}

func f32Bytes(data []float32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

// computeNormals recomputes smooth per-vertex normals from the triangle
// list by accumulating face normals. Called after every ocean update,
// face-normal recomputation is the renderer's job, not the evaluator's.
func computeNormals(positions []float32, indices []int32, normals []float32) {
	for i := range normals {
		normals[i] = 0
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i]*3, indices[i+1]*3, indices[i+2]*3

		e1x := positions[b] - positions[a]
		e1y := positions[b+1] - positions[a+1]
		e1z := positions[b+2] - positions[a+2]
		e2x := positions[c] - positions[a]
		e2y := positions[c+1] - positions[a+1]
		e2z := positions[c+2] - positions[a+2]

		nx := e1y*e2z - e1z*e2y
		ny := e1z*e2x - e1x*e2z
		nz := e1x*e2y - e1y*e2x

		normals[a] += nx
		normals[a+1] += ny
		normals[a+2] += nz
		normals[b] += nx
		normals[b+1] += ny
		normals[b+2] += nz
		normals[c] += nx
		normals[c+1] += ny
		normals[c+2] += nz
	}

	for i := 0; i+2 < len(normals); i += 3 {
		l := float32(math.Sqrt(float64(normals[i]*normals[i] +
			normals[i+1]*normals[i+1] + normals[i+2]*normals[i+2])))
		if l > 0 {
			normals[i] /= l
			normals[i+1] /= l
			normals[i+2] /= l
		} else {
			normals[i+1] = 1
		}
	}
}

// packColors converts the evaluator's float RGB buffer to RGBA bytes.
func packColors(colors []float32, out []uint8) {
	for i := 0; i*3+2 < len(colors); i++ {
		out[i*4] = uint8(colors[i*3] * 255)
		out[i*4+1] = uint8(colors[i*3+1] * 255)
		out[i*4+2] = uint8(colors[i*3+2] * 255)
		out[i*4+3] = 255
	}
}

// packWetness blends dry and wet sand colors by the wetness scalar the
// beach generator stored in the red channel.
func packWetness(wetness []float32, dry, wet rl.Color, out []uint8) {
	for i := 0; i*3 < len(wetness); i++ {
		w := wetness[i*3]
		out[i*4] = uint8(float32(dry.R) + (float32(wet.R)-float32(dry.R))*w)
		out[i*4+1] = uint8(float32(dry.G) + (float32(wet.G)-float32(dry.G))*w)
		out[i*4+2] = uint8(float32(dry.B) + (float32(wet.B)-float32(dry.B))*w)
		out[i*4+3] = 255
	}
}
