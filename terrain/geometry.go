package terrain

import (
	"math"

	"swellsim/core"
)

// Geometry is a generated static mesh: flat position/color buffers plus
// a triangle index list, index-aligned the same way the ocean grid is.
// Once returned from a generator it is immutable and safe to share
// across any number of rendered instances.
type Geometry struct {
	Positions []float32 // x,y,z per vertex
	Colors    []float32 // r,g,b per vertex, nil when unused
	Indices   []int32
}

// Transform places one instance of a generated geometry in the scene.
type Transform struct {
	Position  core.Vector3
	RotationY float64
	Scale     float64
}

// icosphere builds a unit icosahedral sphere with the requested number
// of midpoint subdivisions. This is the convex base every rock starts
// from before displacement.
func icosphere(subdivisions int) ([]core.Vector3, []int32) {
	// Golden ratio
	t := (1.0 + math.Sqrt(5.0)) / 2.0

	vertices := []core.Vector3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}

	indices := []int32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	for i := 0; i < subdivisions; i++ {
		vertices, indices = subdivide(vertices, indices)
	}

	for i := range vertices {
		vertices[i] = vertices[i].Normalize()
	}

	return vertices, indices
}

func subdivide(vertices []core.Vector3, indices []int32) ([]core.Vector3, []int32) {
	midpoints := make(map[[2]int32]int32)
	newVertices := make([]core.Vector3, len(vertices))
	copy(newVertices, vertices)
	var newIndices []int32

	getMidpoint := func(i1, i2 int32) int32 {
		key := [2]int32{i1, i2}
		if i1 > i2 {
			key = [2]int32{i2, i1}
		}
		if mid, exists := midpoints[key]; exists {
			return mid
		}

		mid := vertices[i1].Add(vertices[i2]).Scale(0.5)
		newVertices = append(newVertices, mid)
		midpoints[key] = int32(len(newVertices) - 1)
		return midpoints[key]
	}

	for i := 0; i < len(indices); i += 3 {
		v1, v2, v3 := indices[i], indices[i+1], indices[i+2]
		m1 := getMidpoint(v1, v2)
		m2 := getMidpoint(v2, v3)
		m3 := getMidpoint(v3, v1)

		newIndices = append(newIndices, v1, m1, m3, v2, m2, m1, v3, m3, m2, m1, m2, m3)
	}

	return newVertices, newIndices
}

// gridIndices emits two triangles per cell for a (segA+1)x(segB+1)
// vertex lattice in row-major order.
func gridIndices(segA, segB int) []int32 {
	na := segA + 1
	indices := make([]int32, 0, segA*segB*6)
	for ib := 0; ib < segB; ib++ {
		for ia := 0; ia < segA; ia++ {
			a := int32(ib*na + ia)
			b := a + 1
			c := a + int32(na)
			d := c + 1
			indices = append(indices, a, c, b, b, c, d)
		}
	}
	return indices
}
