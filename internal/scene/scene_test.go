package scene_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/molcalc/internal/mass"
	"github.com/san-kum/molcalc/internal/scene"
	"github.com/san-kum/molcalc/internal/units"
)

var _ = Describe("PlanGeometry", func() {
	DescribeTable("beaker width per volume unit",
		func(unit units.Volume, width int) {
			Expect(scene.PlanGeometry(100, unit).Width).To(Equal(width))
		},
		Entry("mL", units.Milliliter, 150),
		Entry("L", units.Liter, 900),
		Entry("µL", units.Microliter, 50),
		Entry("unknown", units.Volume(99), 200),
	)

	It("scales the fill height linearly and caps it at the scene height", func() {
		g := scene.PlanGeometry(900, units.Liter)
		Expect(g.Width).To(Equal(900))
		Expect(g.LiquidHeight).To(Equal(300))
		Expect(g.LiquidTop).To(Equal(100))

		g = scene.PlanGeometry(1e9, units.Milliliter)
		Expect(g.LiquidHeight).To(Equal(scene.SceneHeight))
		Expect(g.LiquidTop).To(Equal(0))
	})

	It("floors fractional fills", func() {
		Expect(scene.PlanGeometry(30, units.Microliter).LiquidHeight).To(Equal(10))
		Expect(scene.PlanGeometry(5, units.Microliter).LiquidHeight).To(Equal(1))
		Expect(scene.PlanGeometry(2.9, units.Microliter).LiquidHeight).To(Equal(0))
	})

	It("treats negative volumes as empty", func() {
		g := scene.PlanGeometry(-30, units.Liter)
		Expect(g.LiquidHeight).To(BeZero())
		Expect(g.LiquidTop).To(Equal(scene.SceneHeight))
	})

	It("is deterministic", func() {
		Expect(scene.PlanGeometry(123.4, units.Milliliter)).To(Equal(scene.PlanGeometry(123.4, units.Milliliter)))
	})
})

var _ = Describe("GenerateParticles", func() {
	var (
		rng *rand.Rand
		geo scene.Geometry
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
		geo = scene.PlanGeometry(500, units.Milliliter)
	})

	It("emits nothing for an empty breakdown", func() {
		Expect(scene.GenerateParticles(nil, geo, rng)).To(BeEmpty())
	})

	It("emits one particle per unit up to the cap", func() {
		entries := mass.Decompose(29.22).Entries
		particles := scene.GenerateParticles(entries, geo, rng)
		Expect(particles).To(HaveLen(29 + 100))
	})

	It("never exceeds the per-tier cap", func() {
		entries := []mass.Entry{{Tier: mass.Kilogram, Amount: 10000}, {Tier: mass.Gram, Amount: 3}}
		particles := scene.GenerateParticles(entries, geo, rng)
		Expect(particles).To(HaveLen(scene.MaxParticlesPerTier + 3))
	})

	It("keeps every particle inside the beaker and liquid band", func() {
		entries := []mass.Entry{
			{Tier: mass.Kilogram, Amount: 4},
			{Tier: mass.Gram, Amount: 50},
			{Tier: mass.Milligram, Amount: 500},
			{Tier: mass.Microgram, Amount: 7},
		}
		for _, p := range scene.GenerateParticles(entries, geo, rng) {
			Expect(p.CX).To(BeNumerically(">=", 5))
			Expect(p.CX).To(BeNumerically("<=", geo.Width-5))
			Expect(p.CY).To(BeNumerically(">=", geo.LiquidTop))
			Expect(p.CY).To(BeNumerically("<=", geo.LiquidTop+geo.LiquidHeight))

			minR := scene.MinRadius(p.Tier)
			Expect(p.Radius).To(BeNumerically(">=", minR))
			Expect(p.Radius).To(BeNumerically("<=", minR+1))

			Expect(p.Amplitude).To(BeNumerically(">=", 5))
			Expect(p.Amplitude).To(BeNumerically("<=", 15))
			Expect(p.Period).To(BeNumerically(">=", 2*time.Second))
			Expect(p.Period).To(BeNumerically("<", 6*time.Second))
		}
	})

	It("produces the same field for the same seed", func() {
		entries := mass.Decompose(3.5).Entries
		a := scene.GenerateParticles(entries, geo, rand.New(rand.NewSource(9)))
		b := scene.GenerateParticles(entries, geo, rand.New(rand.NewSource(9)))
		Expect(a).To(Equal(b))
	})

	It("describes a rest-up-down-rest bob", func() {
		p := scene.Particle{CY: 200, Amplitude: 8}
		Expect(p.Keyframes()).To(Equal([4]int{200, 192, 208, 200}))
	})
})

var _ = Describe("GenerateWave", func() {
	It("is absent below the visibility threshold", func() {
		Expect(scene.GenerateWave(scene.PlanGeometry(30, units.Microliter))).To(BeNil())
		Expect(scene.GenerateWave(scene.PlanGeometry(149, units.Milliliter))).To(BeNil())
	})

	It("appears at the threshold", func() {
		Expect(scene.GenerateWave(scene.PlanGeometry(150, units.Milliliter))).NotTo(BeNil())
	})

	It("loops crest, trough, crest over four seconds", func() {
		w := scene.GenerateWave(scene.PlanGeometry(900, units.Liter))
		Expect(w).NotTo(BeNil())
		Expect(w.Duration).To(Equal(4 * time.Second))
		Expect(w.Keyframes[0]).To(Equal("M0,100 Q225,110 450,100 T900,100 V120 H0 Z"))
		Expect(w.Keyframes[1]).To(Equal("M0,100 Q225,90 450,100 T900,100 V120 H0 Z"))
		Expect(w.Keyframes[2]).To(Equal(w.Keyframes[0]))
	})
})

var _ = Describe("Compose", func() {
	It("orders layers outline, liquid, wave, particles", func() {
		geo := scene.PlanGeometry(900, units.Liter)
		particles := []scene.Particle{{CX: 10, CY: 150, Radius: 2}, {CX: 20, CY: 160, Radius: 3}}
		d := scene.Compose(geo, scene.GenerateWave(geo), particles)

		var kinds []scene.LayerKind
		for _, l := range d.Layers() {
			kinds = append(kinds, l.Kind)
		}
		Expect(kinds).To(Equal([]scene.LayerKind{
			scene.LayerOutline, scene.LayerLiquid, scene.LayerWave, scene.LayerParticle, scene.LayerParticle,
		}))
	})

	It("skips the wave layer when there is none", func() {
		geo := scene.PlanGeometry(30, units.Microliter)
		d := scene.Compose(geo, nil, nil)
		Expect(d.Layers()).To(HaveLen(2))
		Expect(d.OutlinePath()).To(Equal("M0,0 L0,400 L50,400 L50,0"))
	})

	It("does not share the caller's particle slice", func() {
		particles := []scene.Particle{{CX: 10}}
		d := scene.Compose(scene.Geometry{}, nil, particles)
		particles[0].CX = 99
		Expect(d.Particles[0].CX).To(Equal(10))
	})
})
