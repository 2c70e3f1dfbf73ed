package terrain

import (
	"math"

	"swellsim/noise"
)

// CliffParams determines a cliff face. Equal params always regenerate a
// bit-identical mesh, which is what lets the cache key on the struct.
type CliffParams struct {
	Width, Height  float64
	SegW, SegH     int
	DisplaceAmount float64
	Seed           float64
}

// Relative weights of the displacement terms, all scaled by
// DisplaceAmount.
const (
	cliffLargeWeight    = 1.0
	cliffMediumWeight   = 0.4
	cliffSmallWeight    = 0.15
	cliffOverhangWeight = 0.5
	cliffErosionWeight  = 0.3
	cliffCrackWeight    = 0.15
)

// GenerateCliff builds a cliff face as a vertical grid displaced along
// its normal. Three fbm scales rough out the rock, an overhang term
// carves the upper band back, an erosion term eats into the base, and a
// periodic crack pattern breaks up the remaining flatness.
func GenerateCliff(p CliffParams) *Geometry {
	nw := p.SegW + 1
	nh := p.SegH + 1
	positions := make([]float32, nw*nh*3)

	for ih := 0; ih < nh; ih++ {
		y := float64(ih) / float64(p.SegH) * p.Height
		band := float64(ih) / float64(p.SegH) // 0 at the base, 1 at the top
		for iw := 0; iw < nw; iw++ {
			x := -p.Width/2 + float64(iw)/float64(p.SegW)*p.Width

			large := noise.FBM(x*0.015+p.Seed, y*0.015, 4) * cliffLargeWeight
			medium := noise.FBM(x*0.06+p.Seed*2, y*0.06, 3) * cliffMediumWeight
			small := noise.FBM(x*0.25+p.Seed*3, y*0.25, 2) * cliffSmallWeight

			overhang := noise.FBM(x*0.04+p.Seed*4, y*0.04, 3) * cliffOverhangWeight * band * band
			erosion := noise.FBM(x*0.1+p.Seed*5, y*0.1, 3) * cliffErosionWeight * (1 - band) * (1 - band)

			crack := math.Sin(x*0.15) * math.Sin(y*0.1) * cliffCrackWeight

			displace := (large + medium + small - overhang + erosion + crack) * p.DisplaceAmount

			i := (ih*nw + iw) * 3
			positions[i] = float32(x)
			positions[i+1] = float32(y)
			positions[i+2] = float32(displace)
		}
	}

	return &Geometry{
		Positions: positions,
		Indices:   gridIndices(p.SegW, p.SegH),
	}
}
