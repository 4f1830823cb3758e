package units

import (
	"math"
	"strconv"
)

type Concentration int

const (
	Molar Concentration = iota
	Millimolar
	Micromolar
)

type Volume int

const (
	Milliliter Volume = iota
	Liter
	Microliter
)

var (
	Concentrations = []Concentration{Molar, Millimolar, Micromolar}
	Volumes        = []Volume{Milliliter, Liter, Microliter}
)

// Factor converts one unit of c to mol/L.
func (c Concentration) Factor() (float64, bool) {
	switch c {
	case Molar:
		return 1, true
	case Millimolar:
		return 1e-3, true
	case Micromolar:
		return 1e-6, true
	}
	return 0, false
}

func (c Concentration) String() string {
	switch c {
	case Molar:
		return "M"
	case Millimolar:
		return "mM"
	case Micromolar:
		return "µM"
	}
	return "Concentration(" + strconv.Itoa(int(c)) + ")"
}

// Factor converts one unit of v to litres.
func (v Volume) Factor() (float64, bool) {
	switch v {
	case Milliliter:
		return 1e-3, true
	case Liter:
		return 1, true
	case Microliter:
		return 1e-6, true
	}
	return 0, false
}

func (v Volume) String() string {
	switch v {
	case Milliliter:
		return "mL"
	case Liter:
		return "L"
	case Microliter:
		return "µL"
	}
	return "Volume(" + strconv.Itoa(int(v)) + ")"
}

// NormalizeConcentration returns value expressed in mol/L.
func NormalizeConcentration(value float64, unit Concentration) (float64, error) {
	f, ok := unit.Factor()
	if !ok {
		return 0, &UnitError{Kind: "concentration", Value: unit.String()}
	}
	return finite(value * f), nil
}

// NormalizeVolume returns value expressed in litres.
func NormalizeVolume(value float64, unit Volume) (float64, error) {
	f, ok := unit.Factor()
	if !ok {
		return 0, &UnitError{Kind: "volume", Value: unit.String()}
	}
	return finite(value * f), nil
}

func ParseConcentration(s string) (Concentration, error) {
	switch s {
	case "M":
		return Molar, nil
	case "mM":
		return Millimolar, nil
	case "uM", "µM", "μM":
		return Micromolar, nil
	}
	return -1, &UnitError{Kind: "concentration", Value: s}
}

func ParseVolume(s string) (Volume, error) {
	switch s {
	case "mL", "ml":
		return Milliliter, nil
	case "L", "l":
		return Liter, nil
	case "uL", "µL", "μL", "ul":
		return Microliter, nil
	}
	return -1, &UnitError{Kind: "volume", Value: s}
}

// Next cycles through the supported units, wrapping at the end.
func (c Concentration) Next() Concentration {
	return Concentrations[(indexOf(int(c), len(Concentrations))+1)%len(Concentrations)]
}

func (v Volume) Next() Volume {
	return Volumes[(indexOf(int(v), len(Volumes))+1)%len(Volumes)]
}

func indexOf(i, n int) int {
	if i < 0 || i >= n {
		return -1
	}
	return i
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (c Concentration) MarshalText() ([]byte, error) {
	if _, ok := c.Factor(); !ok {
		return nil, &UnitError{Kind: "concentration", Value: c.String()}
	}
	return []byte(c.String()), nil
}

func (c *Concentration) UnmarshalText(b []byte) error {
	parsed, err := ParseConcentration(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (v Volume) MarshalText() ([]byte, error) {
	if _, ok := v.Factor(); !ok {
		return nil, &UnitError{Kind: "volume", Value: v.String()}
	}
	return []byte(v.String()), nil
}

func (v *Volume) UnmarshalText(b []byte) error {
	parsed, err := ParseVolume(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
