package calc

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/san-kum/molcalc/internal/mass"
	"github.com/san-kum/molcalc/internal/scene"
	"github.com/san-kum/molcalc/internal/units"
)

type Input struct {
	Concentration     float64             `yaml:"concentration"`
	ConcentrationUnit units.Concentration `yaml:"concentration_unit"`
	MolarMass         float64             `yaml:"molar_mass"`
	Volume            float64             `yaml:"volume"`
	VolumeUnit        units.Volume        `yaml:"volume_unit"`
}

func (in Input) String() string {
	return fmt.Sprintf("%g %s, %g g/mol, %g %s",
		in.Concentration, in.ConcentrationUnit, in.MolarMass, in.Volume, in.VolumeUnit)
}

// Validate applies the constraints the input form is expected to enforce.
func Validate(in Input) error {
	switch {
	case !(in.Concentration >= 0) || math.IsInf(in.Concentration, 0):
		return fmt.Errorf("%w: concentration must be >= 0, got %v", ErrInvalidInput, in.Concentration)
	case !(in.MolarMass > 0) || math.IsInf(in.MolarMass, 0):
		return fmt.Errorf("%w: molar mass must be > 0, got %v", ErrInvalidInput, in.MolarMass)
	case !(in.Volume >= 0) || math.IsInf(in.Volume, 0):
		return fmt.Errorf("%w: volume must be >= 0, got %v", ErrInvalidInput, in.Volume)
	}
	if _, ok := in.ConcentrationUnit.Factor(); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidInput, in.ConcentrationUnit)
	}
	if _, ok := in.VolumeUnit.Factor(); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidInput, in.VolumeUnit)
	}
	return nil
}

type Result struct {
	ID          uuid.UUID
	Input       Input
	MolPerLiter float64
	Liters      float64
	Moles       float64
	Grams       float64
	Breakdown   mass.Breakdown
	Scene       scene.Description
}

type Evaluator struct {
	logger *zap.Logger
	rng    scene.Rand
}

func New(logger *zap.Logger, rng scene.Rand) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger.Named("calc"), rng: rng}
}

func NewSeeded(logger *zap.Logger, seed int64) *Evaluator {
	return New(logger, rand.New(rand.NewSource(seed)))
}

// Evaluate runs the full pipeline. Unknown units are logged and treated as
// zero so a scene can always be drawn.
func (e *Evaluator) Evaluate(in Input) (*Result, error) {
	if e.rng == nil {
		return nil, ErrNoRandSource
	}

	res := &Result{ID: uuid.New(), Input: in}
	log := e.logger.With(zap.Stringer("cycle", res.ID))

	var err error
	if res.MolPerLiter, err = units.NormalizeConcentration(in.Concentration, in.ConcentrationUnit); err != nil {
		log.Warn("concentration unit degraded to zero", zap.Error(err))
	}
	if res.Liters, err = units.NormalizeVolume(in.Volume, in.VolumeUnit); err != nil {
		log.Warn("volume unit degraded to zero", zap.Error(err))
	}

	res.Moles = mass.RequiredMoles(res.MolPerLiter, res.Liters)
	res.Grams = mass.RequiredGrams(res.MolPerLiter, res.Liters, in.MolarMass)
	res.Breakdown = mass.Decompose(res.Grams)

	geo := scene.PlanGeometry(in.Volume, in.VolumeUnit)
	particles := scene.GenerateParticles(res.Breakdown.Entries, geo, e.rng)
	res.Scene = scene.Compose(geo, scene.GenerateWave(geo), particles)

	log.Debug("evaluated",
		zap.Stringer("input", in),
		zap.Float64("grams", res.Grams),
		zap.String("label", res.Breakdown.Label),
		zap.Int("particles", len(particles)),
		zap.Bool("wave", res.Scene.Wave != nil),
	)
	return res, nil
}

// Sweep returns the required grams at steps evenly spaced volumes between
// from and to, in the input's volume unit.
func Sweep(in Input, from, to float64, steps int) []float64 {
	if steps < 1 {
		return nil
	}
	molPerLiter, _ := units.NormalizeConcentration(in.Concentration, in.ConcentrationUnit)

	out := make([]float64, steps)
	for i := range out {
		v := from
		if steps > 1 {
			v = from + (to-from)*float64(i)/float64(steps-1)
		}
		liters, _ := units.NormalizeVolume(v, in.VolumeUnit)
		out[i] = mass.RequiredGrams(molPerLiter, liters, in.MolarMass)
	}
	return out
}
