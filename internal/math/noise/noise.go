package noise

import (
	"math"
	"math/rand"
)

// NoiseGenerator produces smooth pseudo-random signals used for the
// camera drift and the ambient audio bed.
type NoiseGenerator struct {
	perm [512]int
}

// NewNoiseGenerator creates a generator with a permutation table derived
// from the given seed.
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	ng := &NoiseGenerator{}
	rng := rand.New(rand.NewSource(seed))

	p := rng.Perm(256)
	for i := 0; i < 256; i++ {
		ng.perm[i] = p[i]
		ng.perm[i+256] = p[i]
	}
	return ng
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func grad(hash int, x float64) float64 {
	if hash&1 == 0 {
		return x
	}
	return -x
}

// Perlin1D returns smooth gradient noise in [-1, 1] for coordinate x.
func (ng *NoiseGenerator) Perlin1D(x float64) float64 {
	xi := int(math.Floor(x)) & 255
	xf := x - math.Floor(x)

	u := fade(xf)

	a := grad(ng.perm[xi], xf)
	b := grad(ng.perm[xi+1], xf-1)

	return a + u*(b-a)
}

// FBM1D sums octaves of Perlin1D for richer motion. The result is
// normalized back into roughly [-1, 1].
func (ng *NoiseGenerator) FBM1D(x float64, octaves int, lacunarity, gain float64) float64 {
	result := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0

	for i := 0; i < octaves; i++ {
		result += ng.Perlin1D(x*frequency) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}

	if max == 0 {
		return 0
	}
	return result / max
}
