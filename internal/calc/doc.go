// Package calc runs one evaluation cycle: normalize units, compute the
// required mass, decompose it, and build the beaker scene.
//
// # Example
//
//	ev := calc.NewSeeded(logger, 42)
//	res, _ := ev.Evaluate(calc.Input{
//		Concentration: 1, ConcentrationUnit: units.Molar,
//		MolarMass: 58.44,
//		Volume: 500, VolumeUnit: units.Milliliter,
//	})
//	res.Breakdown.Label // "29 g 220 mg"
//
// # Thread Safety
//
// An Evaluator owns its random source and is NOT safe for concurrent use.
// Give each session its own Evaluator.
package calc
