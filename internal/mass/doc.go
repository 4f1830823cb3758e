// Package mass turns a normalized concentration, volume and molar mass into
// the mass of solute to weigh out, and splits that mass into kg/g/mg/µg tiers.
//
// # Rounding
//
// Only the terminal µg tier is rounded. Larger tiers are floored from what
// remains, so the breakdown always reads as a consistent total:
//
//	Decompose(29.22).Label // "29 g 220 mg"
package mass
