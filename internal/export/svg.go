package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/san-kum/molcalc/internal/scene"
)

const (
	svgNS        = "http://www.w3.org/2000/svg"
	liquidFill   = "rgba(0,119,255,0.25)"
	particleFill = "orange"
	outlineColor = "black"
	outlineWidth = "3"
)

type Options struct {
	// Standalone writes an XML document with a bare <svg> root instead of
	// the default <div>-wrapped fragment.
	Standalone bool
	// Label, when set, is written as a paragraph after the drawing in
	// fragment mode.
	Label  string
	Indent int
}

// SceneToSVG renders a scene description as SVG markup.
func SceneToSVG(d scene.Description, opts Options) (string, error) {
	doc := etree.NewDocument()
	g := d.Geometry

	var svg *etree.Element
	if opts.Standalone {
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		svg = doc.CreateElement("svg")
	} else {
		div := doc.CreateElement("div")
		div.CreateAttr("style", fmt.Sprintf("position:relative; width:%dpx; height:%dpx; margin: 0 auto;", g.Width, g.Height))
		svg = div.CreateElement("svg")
	}
	svg.CreateAttr("width", itoa(g.Width))
	svg.CreateAttr("height", itoa(g.Height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", g.Width, g.Height))
	svg.CreateAttr("xmlns", svgNS)

	for _, layer := range d.Layers() {
		switch layer.Kind {
		case scene.LayerOutline:
			writeOutline(svg, d)
		case scene.LayerLiquid:
			writeLiquid(svg, g)
		case scene.LayerWave:
			writeWave(svg, d.Wave)
		case scene.LayerParticle:
			writeParticle(svg, layer.Particle)
		default:
			return "", fmt.Errorf("export: unknown layer %s", layer.Kind)
		}
	}

	if opts.Label != "" && !opts.Standalone {
		p := doc.Root().CreateElement("p")
		p.SetText(opts.Label)
	}

	if opts.Indent > 0 {
		doc.Indent(opts.Indent)
	}
	return doc.WriteToString()
}

func writeOutline(svg *etree.Element, d scene.Description) {
	path := svg.CreateElement("path")
	path.CreateAttr("d", d.OutlinePath())
	path.CreateAttr("fill", "none")
	path.CreateAttr("stroke", outlineColor)
	path.CreateAttr("stroke-width", outlineWidth)
}

func writeLiquid(svg *etree.Element, g scene.Geometry) {
	rect := svg.CreateElement("rect")
	rect.CreateAttr("x", "0")
	rect.CreateAttr("y", itoa(g.LiquidTop))
	rect.CreateAttr("width", itoa(g.Width))
	rect.CreateAttr("height", itoa(g.LiquidHeight))
	rect.CreateAttr("fill", liquidFill)
}

func writeWave(svg *etree.Element, w *scene.Wave) {
	if w == nil {
		return
	}
	path := svg.CreateElement("path")
	path.CreateAttr("d", w.Keyframes[0])
	path.CreateAttr("fill", liquidFill)

	anim := path.CreateElement("animate")
	anim.CreateAttr("attributeName", "d")
	anim.CreateAttr("dur", seconds(w.Duration))
	anim.CreateAttr("repeatCount", "indefinite")
	anim.CreateAttr("values", w.Keyframes[0]+";"+w.Keyframes[1]+";"+w.Keyframes[2])
}

func writeParticle(svg *etree.Element, p scene.Particle) {
	c := svg.CreateElement("circle")
	c.CreateAttr("cx", itoa(p.CX))
	c.CreateAttr("cy", itoa(p.CY))
	c.CreateAttr("r", itoa(p.Radius))
	c.CreateAttr("fill", particleFill)

	k := p.Keyframes()
	anim := c.CreateElement("animate")
	anim.CreateAttr("attributeName", "cy")
	anim.CreateAttr("values", fmt.Sprintf("%d;%d;%d;%d", k[0], k[1], k[2], k[3]))
	anim.CreateAttr("dur", seconds(p.Period))
	anim.CreateAttr("repeatCount", "indefinite")
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

func itoa(v int) string { return strconv.Itoa(v) }
