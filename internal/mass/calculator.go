package mass

import "math"

// RequiredMoles returns the moles of solute in liters of a molPerLiter solution.
func RequiredMoles(molPerLiter, liters float64) float64 {
	return clean(clean(molPerLiter) * clean(liters))
}

// RequiredGrams returns molPerLiter × liters × molarMass in grams.
// Negative or non-finite inputs count as zero.
func RequiredGrams(molPerLiter, liters, molarMass float64) float64 {
	return clean(RequiredMoles(molPerLiter, liters) * clean(molarMass))
}

func clean(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
