package config

import (
	"sort"

	"github.com/san-kum/molcalc/internal/calc"
	"github.com/san-kum/molcalc/internal/units"
)

type Preset struct {
	Name        string
	Description string
	Input       calc.Input
}

func stock(mw, conc float64, cu units.Concentration, vol float64, vu units.Volume) calc.Input {
	return calc.Input{Concentration: conc, ConcentrationUnit: cu, MolarMass: mw, Volume: vol, VolumeUnit: vu}
}

var Presets = map[string]*Preset{
	"nacl":    {Name: "nacl", Description: "sodium chloride", Input: stock(58.44, 1, units.Molar, 500, units.Milliliter)},
	"kcl":     {Name: "kcl", Description: "potassium chloride", Input: stock(74.55, 2, units.Molar, 100, units.Milliliter)},
	"glucose": {Name: "glucose", Description: "d-glucose", Input: stock(180.16, 5, units.Millimolar, 1, units.Liter)},
	"sucrose": {Name: "sucrose", Description: "sucrose", Input: stock(342.30, 250, units.Millimolar, 200, units.Milliliter)},
	"tris":    {Name: "tris", Description: "tris base", Input: stock(121.14, 1, units.Molar, 1, units.Liter)},
	"edta":    {Name: "edta", Description: "disodium edta dihydrate", Input: stock(372.24, 500, units.Millimolar, 100, units.Milliliter)},
	"nahco3":  {Name: "nahco3", Description: "sodium bicarbonate", Input: stock(84.01, 25, units.Millimolar, 500, units.Milliliter)},
	"cuso4":   {Name: "cuso4", Description: "copper sulfate pentahydrate", Input: stock(249.69, 100, units.Micromolar, 900, units.Microliter)},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns preset names in alphabetical order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
