package scene

import "fmt"

type LayerKind int

const (
	LayerOutline LayerKind = iota
	LayerLiquid
	LayerWave
	LayerParticle
)

func (k LayerKind) String() string {
	switch k {
	case LayerOutline:
		return "outline"
	case LayerLiquid:
		return "liquid"
	case LayerWave:
		return "wave"
	case LayerParticle:
		return "particle"
	}
	return fmt.Sprintf("LayerKind(%d)", int(k))
}

type Layer struct {
	Kind     LayerKind
	Particle Particle
}

// Description is everything a renderer needs to draw one cycle.
type Description struct {
	Geometry  Geometry
	Wave      *Wave
	Particles []Particle
}

func Compose(g Geometry, w *Wave, particles []Particle) Description {
	d := Description{Geometry: g, Particles: make([]Particle, len(particles))}
	copy(d.Particles, particles)
	if w != nil {
		wc := *w
		d.Wave = &wc
	}
	return d
}

// Layers returns the draw order: outline, liquid, wave, then particles.
func (d Description) Layers() []Layer {
	layers := make([]Layer, 0, 3+len(d.Particles))
	layers = append(layers, Layer{Kind: LayerOutline}, Layer{Kind: LayerLiquid})
	if d.Wave != nil {
		layers = append(layers, Layer{Kind: LayerWave})
	}
	for _, p := range d.Particles {
		layers = append(layers, Layer{Kind: LayerParticle, Particle: p})
	}
	return layers
}

// OutlinePath is an open-topped beaker around the scene.
func (d Description) OutlinePath() string {
	w, h := d.Geometry.Width, d.Geometry.Height
	return fmt.Sprintf("M0,0 L0,%d L%d,%d L%d,0", h, w, h, w)
}
