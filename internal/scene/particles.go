package scene

import (
	"time"

	"github.com/san-kum/molcalc/internal/mass"
)

const (
	MaxParticlesPerTier = 100

	edgeMargin   = 5
	minAmplitude = 5
	maxAmplitude = 15
	minPeriod    = 2 * time.Second
	maxPeriod    = 6 * time.Second
)

// Rand is the subset of *math/rand.Rand used for particle placement.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type Particle struct {
	Tier      mass.Tier
	CX, CY    int
	Radius    int
	Amplitude int
	Period    time.Duration
}

// Keyframes is the vertical bob: rest, up, down, rest.
func (p Particle) Keyframes() [4]int {
	return [4]int{p.CY, p.CY - p.Amplitude, p.CY + p.Amplitude, p.CY}
}

// MinRadius is the smallest particle radius drawn for a tier.
func MinRadius(t mass.Tier) int {
	switch t {
	case mass.Kilogram:
		return 15
	case mass.Gram:
		return 6
	case mass.Milligram:
		return 2
	case mass.Microgram:
		return 1
	}
	return 1
}

// ParticleCount is the number of particles drawn for an entry, capped
// at MaxParticlesPerTier.
func ParticleCount(e mass.Entry) int {
	if e.Amount < 1 {
		return 1
	}
	if e.Amount > MaxParticlesPerTier {
		return MaxParticlesPerTier
	}
	return int(e.Amount)
}

func GenerateParticles(entries []mass.Entry, g Geometry, rng Rand) []Particle {
	total := 0
	for _, e := range entries {
		total += ParticleCount(e)
	}
	particles := make([]Particle, 0, total)

	for _, e := range entries {
		minR := MinRadius(e.Tier)
		for i := 0; i < ParticleCount(e); i++ {
			cx := randInt(rng, edgeMargin, g.Width-edgeMargin)
			cy := randInt(rng, g.LiquidTop, g.LiquidTop+g.LiquidHeight)
			r := randInt(rng, minR, minR+1)
			period := minPeriod + time.Duration(rng.Float64()*float64(maxPeriod-minPeriod))
			amp := randInt(rng, minAmplitude, maxAmplitude)

			particles = append(particles, Particle{
				Tier:      e.Tier,
				CX:        cx,
				CY:        cy,
				Radius:    r,
				Amplitude: amp,
				Period:    period,
			})
		}
	}
	return particles
}

// randInt returns a uniform int in [lo, hi].
func randInt(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
