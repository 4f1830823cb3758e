package mass

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		grams   float64
		label   string
		entries []Entry
	}{
		{0, "0 g", nil},
		{1000, "1 kg", []Entry{{Kilogram, 1}}},
		{RequiredGrams(1, 0.5, 58.44), "29 g 220 mg", []Entry{{Gram, 29}, {Milligram, 220}}},
		{1234.5678, "1 kg 234 g 567 mg 800 µg", []Entry{{Kilogram, 1}, {Gram, 234}, {Milligram, 567}, {Microgram, 800}}},
		{0.0005, "500 µg", []Entry{{Microgram, 500}}},
		{0.012, "12 mg", []Entry{{Milligram, 12}}},
		{1.9999999999, "2 g", []Entry{{Gram, 2}}},
		{999.9999999999, "1 kg", []Entry{{Kilogram, 1}}},
		{0.0000004, "0 g", nil},
		{-5, "0 g", nil},
		{math.NaN(), "0 g", nil},
		{math.Inf(1), "0 g", nil},
	}

	for _, tt := range tests {
		got := Decompose(tt.grams)
		if got.Label != tt.label {
			t.Errorf("Decompose(%v).Label = %q, want %q", tt.grams, got.Label, tt.label)
		}
		if diff := cmp.Diff(tt.entries, got.Entries); diff != "" {
			t.Errorf("Decompose(%v) entries mismatch (-want +got):\n%s", tt.grams, diff)
		}
	}
}

func TestDecompose_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		grams := math.Pow(10, rng.Float64()*10-5)
		b := Decompose(grams)
		if d := math.Abs(b.Grams() - grams); d > 1e-6+grams*1e-12 {
			t.Fatalf("Decompose(%v) reconstructs %v (off by %v)", grams, b.Grams(), d)
		}
		for _, e := range b.Entries {
			if e.Amount <= 0 {
				t.Fatalf("Decompose(%v) emitted non-positive entry %v", grams, e)
			}
			if e.Tier != Kilogram && e.Amount >= 1000 {
				t.Fatalf("Decompose(%v) overflowed tier %v", grams, e)
			}
		}
	}
}

func TestDecompose_Idempotent(t *testing.T) {
	a := Decompose(42.4242)
	b := Decompose(42.4242)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Decompose not deterministic:\n%s", diff)
	}
}

func TestTier(t *testing.T) {
	for _, tt := range Tiers {
		if tt.Factor() <= 0 {
			t.Errorf("%s has non-positive factor", tt)
		}
	}
	if Tier(9).Factor() != 0 {
		t.Error("unknown tier should have zero factor")
	}
}
