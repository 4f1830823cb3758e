// Package units normalizes concentration and volume inputs to base units.
//
// Concentrations are reduced to mol/L and volumes to litres:
//
//   - [Concentration]: M, mM, µM
//   - [Volume]: mL, L, µL
//
// Unknown enum values never produce NaN; the normalizers return zero together
// with an error wrapping [ErrInvalidUnit] so callers can log and keep rendering.
package units
