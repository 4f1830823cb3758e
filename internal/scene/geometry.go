package scene

import (
	"math"

	"github.com/san-kum/molcalc/internal/units"
)

const (
	SceneHeight = 400

	// fill pixels per unit of volume, in whatever unit the volume was entered
	fillDivisor = 3

	defaultWidth = 200
)

type Geometry struct {
	Width        int
	Height       int
	LiquidTop    int
	LiquidHeight int
}

func PlanGeometry(volume float64, unit units.Volume) Geometry {
	h := 0
	if volume > 0 && !math.IsNaN(volume) {
		h = int(math.Min(math.Floor(volume/fillDivisor), SceneHeight))
	}
	return Geometry{
		Width:        BeakerWidth(unit),
		Height:       SceneHeight,
		LiquidTop:    SceneHeight - h,
		LiquidHeight: h,
	}
}

func BeakerWidth(unit units.Volume) int {
	switch unit {
	case units.Milliliter:
		return 150
	case units.Liter:
		return 900
	case units.Microliter:
		return 50
	}
	return defaultWidth
}
