package mass

import (
	"math"
	"strconv"
	"strings"
)

type Tier int

const (
	Kilogram Tier = iota
	Gram
	Milligram
	Microgram
)

// Tiers lists every tier, largest first.
var Tiers = []Tier{Kilogram, Gram, Milligram, Microgram}

func (t Tier) Factor() float64 {
	switch t {
	case Kilogram:
		return 1000
	case Gram:
		return 1
	case Milligram:
		return 1e-3
	case Microgram:
		return 1e-6
	}
	return 0
}

func (t Tier) String() string {
	switch t {
	case Kilogram:
		return "kg"
	case Gram:
		return "g"
	case Milligram:
		return "mg"
	case Microgram:
		return "µg"
	}
	return "Tier(" + strconv.Itoa(int(t)) + ")"
}

type Entry struct {
	Tier   Tier
	Amount int64
}

func (e Entry) String() string {
	return strconv.FormatInt(e.Amount, 10) + " " + e.Tier.String()
}

// Breakdown is a mass split into non-zero tiers, largest first.
type Breakdown struct {
	Label   string
	Entries []Entry
}

// Grams reconstructs the total mass from the entries.
func (b Breakdown) Grams() float64 {
	total := 0.0
	for _, e := range b.Entries {
		total += float64(e.Amount) * e.Tier.Factor()
	}
	return total
}

func (b Breakdown) IsZero() bool { return len(b.Entries) == 0 }

const zeroLabel = "0 g"

// Decompose splits grams into kg, g, mg and µg amounts.
func Decompose(grams float64) Breakdown {
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams <= 0 {
		return Breakdown{Label: zeroLabel}
	}

	var amounts [4]int64
	remaining := grams

	if remaining >= Kilogram.Factor() {
		q := math.Floor(remaining / Kilogram.Factor())
		amounts[Kilogram] = saturate(q)
		remaining -= q * Kilogram.Factor()
	}
	if remaining >= Gram.Factor() {
		q := math.Floor(remaining)
		amounts[Gram] = int64(q)
		remaining -= q
	}

	// Sub-gram tiers are derived from one rounded µg count.
	if remaining >= Microgram.Factor() {
		micro := int64(math.RoundToEven(remaining / Microgram.Factor()))
		if micro >= 1_000_000 {
			micro -= 1_000_000
			amounts[Gram]++
			if amounts[Gram] >= 1000 {
				amounts[Gram] -= 1000
				amounts[Kilogram]++
			}
		}
		amounts[Milligram] = (micro / 1000) % 1000
		amounts[Microgram] = micro - amounts[Milligram]*1000
	}

	b := Breakdown{}
	parts := make([]string, 0, len(Tiers))
	for _, t := range Tiers {
		if amounts[t] <= 0 {
			continue
		}
		e := Entry{Tier: t, Amount: amounts[t]}
		b.Entries = append(b.Entries, e)
		parts = append(parts, e.String())
	}

	if len(parts) == 0 {
		b.Label = zeroLabel
		return b
	}
	b.Label = strings.Join(parts, " ")
	return b
}

func saturate(v float64) int64 {
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
