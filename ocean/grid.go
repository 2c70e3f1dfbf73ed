package ocean

// Grid is the fixed-topology base lattice for the ocean surface. It is
// generated once and read-only afterwards: X/Z hold the resting position
// of every vertex and ShoreDist a 0..1 ramp from the back (offshore)
// edge to the front (shore-facing) edge. The evaluator never writes into
// a Grid, it only mirrors these values into the caller's buffers.
type Grid struct {
	Width, Depth float64
	NX, NZ       int
	Spacing      float64

	X, Z      []float64
	ShoreDist []float64
	Indices   []int32
}

// NewGrid builds a (segX+1)x(segZ+1) vertex lattice centered on the
// origin. Rows run back to front, so vertex ordering is stable and the
// renderer can index-align its GPU buffers with it.
func NewGrid(width, depth float64, segX, segZ int) *Grid {
	nx := segX + 1
	nz := segZ + 1
	g := &Grid{
		Width:     width,
		Depth:     depth,
		NX:        nx,
		NZ:        nz,
		Spacing:   width / float64(segX),
		X:         make([]float64, nx*nz),
		Z:         make([]float64, nx*nz),
		ShoreDist: make([]float64, nx*nz),
	}

	for iz := 0; iz < nz; iz++ {
		fz := float64(iz) / float64(segZ)
		z := -depth/2 + fz*depth
		for ix := 0; ix < nx; ix++ {
			i := iz*nx + ix
			g.X[i] = -width/2 + float64(ix)/float64(segX)*width
			g.Z[i] = z
			g.ShoreDist[i] = fz
		}
	}

	g.Indices = make([]int32, 0, segX*segZ*6)
	for iz := 0; iz < segZ; iz++ {
		for ix := 0; ix < segX; ix++ {
			a := int32(iz*nx + ix)
			b := a + 1
			c := a + int32(nx)
			d := c + 1
			g.Indices = append(g.Indices, a, c, b, b, c, d)
		}
	}

	return g
}

// VertexCount returns the number of lattice vertices.
func (g *Grid) VertexCount() int {
	return g.NX * g.NZ
}
