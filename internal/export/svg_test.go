package export

import (
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"

	"github.com/san-kum/molcalc/internal/scene"
	"github.com/san-kum/molcalc/internal/units"
)

func testScene(volume float64, unit units.Volume, particles []scene.Particle) scene.Description {
	g := scene.PlanGeometry(volume, unit)
	return scene.Compose(g, scene.GenerateWave(g), particles)
}

func TestSceneToSVG_Fragment(t *testing.T) {
	particles := []scene.Particle{
		{CX: 40, CY: 250, Radius: 6, Amplitude: 10, Period: 2500 * time.Millisecond},
	}
	out, err := SceneToSVG(testScene(900, units.Liter, particles), Options{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("output is not well-formed: %v", err)
	}

	div := doc.Root()
	if div.Tag != "div" {
		t.Fatalf("expected div root, got %s", div.Tag)
	}
	if !strings.Contains(div.SelectAttrValue("style", ""), "width:900px; height:400px") {
		t.Errorf("container not sized to the scene: %q", div.SelectAttrValue("style", ""))
	}

	svg := div.SelectElement("svg")
	if svg == nil {
		t.Fatal("missing svg element")
	}
	if got := svg.SelectAttrValue("viewBox", ""); got != "0 0 900 400" {
		t.Errorf("viewBox = %q", got)
	}

	children := svg.ChildElements()
	tags := make([]string, len(children))
	for i, c := range children {
		tags[i] = c.Tag
	}
	want := []string{"path", "rect", "path", "circle"}
	if strings.Join(tags, ",") != strings.Join(want, ",") {
		t.Fatalf("draw order = %v, want %v", tags, want)
	}

	rect := children[1]
	if rect.SelectAttrValue("y", "") != "100" || rect.SelectAttrValue("height", "") != "300" {
		t.Errorf("liquid rect at y=%s h=%s", rect.SelectAttrValue("y", ""), rect.SelectAttrValue("height", ""))
	}

	waveAnim := children[2].SelectElement("animate")
	if waveAnim == nil || waveAnim.SelectAttrValue("dur", "") != "4s" {
		t.Errorf("wave animation missing or wrong duration")
	}

	circleAnim := children[3].SelectElement("animate")
	if circleAnim == nil {
		t.Fatal("particle animation missing")
	}
	if got := circleAnim.SelectAttrValue("values", ""); got != "250;240;260;250" {
		t.Errorf("particle keyframes = %q", got)
	}
	if got := circleAnim.SelectAttrValue("dur", ""); got != "2.5s" {
		t.Errorf("particle dur = %q", got)
	}
}

func TestSceneToSVG_NoWave(t *testing.T) {
	out, err := SceneToSVG(testScene(30, units.Microliter, nil), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "<path") != 1 {
		t.Errorf("expected only the outline path, got:\n%s", out)
	}
	if strings.Contains(out, "<circle") {
		t.Error("unexpected particles")
	}
}

func TestSceneToSVG_Standalone(t *testing.T) {
	out, err := SceneToSVG(testScene(500, units.Milliliter, nil), Options{Standalone: true, Label: "ignored", Indent: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("expected xml prolog, got %q", out[:20])
	}
	if strings.Contains(out, "<div") || strings.Contains(out, "ignored") {
		t.Error("standalone output should be a bare svg document")
	}
}

func TestSceneToSVG_Label(t *testing.T) {
	out, err := SceneToSVG(testScene(500, units.Milliliter, nil), Options{Label: "29 g 220 mg"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<p>29 g 220 mg</p>") {
		t.Errorf("label missing from fragment:\n%s", out)
	}
}
