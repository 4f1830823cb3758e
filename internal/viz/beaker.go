package viz

import (
	"math"
	"time"

	"github.com/san-kum/molcalc/internal/scene"
)

// projection maps scene pixels to canvas sub-pixels, keeping the aspect
// ratio and centering horizontally.
type projection struct {
	scale   float64
	offsetX int
}

func project(c *Canvas, g scene.Geometry) projection {
	w, h := c.PixelSize()
	if g.Width <= 0 || g.Height <= 0 {
		return projection{}
	}
	s := math.Min(float64(w-1)/float64(g.Width), float64(h-1)/float64(g.Height))
	return projection{scale: s, offsetX: (w - int(float64(g.Width)*s)) / 2}
}

func (p projection) pt(x, y float64) (int, int) {
	return p.offsetX + int(math.Round(x*p.scale)), int(math.Round(y * p.scale))
}

// DrawScene paints d onto c as it looks at animation time at.
func DrawScene(c *Canvas, d scene.Description, at time.Duration) {
	g := d.Geometry
	p := project(c, g)
	if p.scale == 0 {
		return
	}
	w, h := float64(g.Width), float64(g.Height)

	// outline, open at the top
	x0, y0 := p.pt(0, 0)
	x1, y1 := p.pt(w, h)
	c.DrawLine(x0, y0, x0, y1)
	c.DrawLine(x0, y1, x1, y1)
	c.DrawLine(x1, y1, x1, y0)

	if g.LiquidHeight > 0 {
		_, top := p.pt(0, float64(g.LiquidTop))
		for y := top; y < y1; y++ {
			for x := x0 + 1; x < x1; x++ {
				if (x+2*y)%5 == 0 {
					c.Set(x, y)
				}
			}
		}
		if d.Wave == nil {
			c.DrawLine(x0, top, x1, top)
		}
	}

	if d.Wave != nil {
		drawSurface(c, p, g, waveControl(g, d.Wave, at))
	}

	for _, part := range d.Particles {
		cx, cy := p.pt(float64(part.CX), BobPosition(part, at))
		c.DrawCircle(cx, cy, int(float64(part.Radius)*p.scale))
	}
}

// waveControl returns the bezier control height for the current frame,
// moving linearly crest → trough → crest over the wave duration.
func waveControl(g scene.Geometry, w *scene.Wave, at time.Duration) float64 {
	const amp = 10.0
	if w.Duration <= 0 {
		return float64(g.LiquidTop) + amp
	}
	phase := float64(at%w.Duration) / float64(w.Duration)
	tri := 4*math.Abs(phase-0.5) - 1 // +1 at the ends, -1 halfway
	return float64(g.LiquidTop) + amp*tri
}

// drawSurface traces the two quadratic segments of the wave path.
func drawSurface(c *Canvas, p projection, g scene.Geometry, control float64) {
	top := float64(g.LiquidTop)
	w := float64(g.Width)
	segments := [2][3][2]float64{
		{{0, top}, {w / 4, control}, {w / 2, top}},
		{{w / 2, top}, {3 * w / 4, 2*top - control}, {w, top}},
	}
	const steps = 24
	for _, s := range segments {
		px, py := p.pt(s[0][0], s[0][1])
		for i := 1; i <= steps; i++ {
			t := float64(i) / steps
			x := quad(s[0][0], s[1][0], s[2][0], t)
			y := quad(s[0][1], s[1][1], s[2][1], t)
			nx, ny := p.pt(x, y)
			c.DrawLine(px, py, nx, ny)
			px, py = nx, ny
		}
	}
}

func quad(a, b, c, t float64) float64 {
	u := 1 - t
	return u*u*a + 2*u*t*b + t*t*c
}

// BobPosition interpolates a particle's keyframes, spaced evenly over its period.
func BobPosition(p scene.Particle, at time.Duration) float64 {
	k := p.Keyframes()
	if p.Period <= 0 {
		return float64(k[0])
	}
	phase := float64(at%p.Period) / float64(p.Period) * 3
	i := int(phase)
	if i >= 3 {
		return float64(k[3])
	}
	frac := phase - float64(i)
	return float64(k[i]) + (float64(k[i+1])-float64(k[i]))*frac
}
