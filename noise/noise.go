package noise

import "math"

// SeededRandom maps a seed to a deterministic value in [0,1) by taking
// the fractional part of sin(seed)*10000. It keeps no state, so the same
// seed always yields the same value. This is not a quality generator:
// seeds near multiples of pi produce visibly structured output. It is
// only used for visual placement where reproducibility matters more
// than distribution.
func SeededRandom(seed float64) float64 {
	v := math.Sin(seed) * 10000.0
	return v - math.Floor(v)
}

// Noise3D returns continuous deterministic pseudo-random values by
// combining three sine/cosine products at irrational frequencies.
// Range is approximately [-1.75, 1.75].
func Noise3D(x, y, z float64) float64 {
	n1 := math.Sin(x*3.14159) * math.Cos(y*2.71828) * math.Sin(z*1.41421)
	n2 := math.Sin(x*1.73205) * math.Sin(y*2.23607) * math.Cos(z*3.16227)
	n3 := math.Cos(x*2.44949) * math.Sin(y*1.61803) * math.Sin(z*2.64575)
	return n1 + n2*0.5 + n3*0.25
}

// FBM accumulates octaves of Noise3D with halving amplitude and a 2.1x
// frequency step, normalized by the total amplitude. The non-integer
// lacunarity keeps octave boundaries from lining up. Result is
// approximately in [-1,1].
func FBM(x, y float64, octaves int) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1.0
	total := 0.0

	for i := 0; i < octaves; i++ {
		value += amplitude * Noise3D(x*frequency, y*frequency, float64(i)*100.0)
		total += amplitude
		amplitude *= 0.5
		frequency *= 2.1
	}

	if total == 0 {
		return 0
	}
	return value / total
}
