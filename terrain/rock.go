package terrain

import (
	"math"

	"swellsim/noise"
)

// RockParams determines a single rock mesh.
type RockParams struct {
	Seed         float64
	Size         float64
	Subdivisions int
}

const (
	// Anisotropic stretch so rocks read as boulders, not spheres.
	rockStretchX = 1.3
	rockStretchZ = 0.85

	// Vertical scale on the lower hemisphere. Strictly below 1 so the
	// rock sits on the ground instead of floating on a round belly.
	rockFlatten = 0.45
)

// GenerateRock displaces a subdivided icosahedron into a boulder. Each
// vertex gets a radial fbm factor and a low-order angular factor on its
// horizontal coordinates, then the lower hemisphere is flattened.
func GenerateRock(p RockParams) *Geometry {
	vertices, indices := icosphere(p.Subdivisions)
	positions := make([]float32, len(vertices)*3)

	for i, v := range vertices {
		radial := 1 + noise.FBM(v.X*2+p.Seed, v.Y*2+v.Z, 3)*0.3

		theta := math.Atan2(v.Z, v.X)
		phi := math.Acos(math.Max(-1, math.Min(1, v.Y)))
		angular := 1 + math.Cos(theta*3)*math.Sin(phi*2)*0.1

		x := v.X * radial * angular * rockStretchX * p.Size
		z := v.Z * radial * angular * rockStretchZ * p.Size
		y := v.Y * p.Size
		if v.Y < 0 {
			y *= rockFlatten
		}

		positions[i*3] = float32(x)
		positions[i*3+1] = float32(y)
		positions[i*3+2] = float32(z)
	}

	return &Geometry{
		Positions: positions,
		Indices:   indices,
	}
}
