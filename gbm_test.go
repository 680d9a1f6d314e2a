package paydown

import (
	"math/rand"
	"testing"
	"time"
)

func TestGBMPath_flat(t *testing.T) {
	// Zero volatility and zero drift collapse to a constant path.
	rng := rand.New(rand.NewSource(1))
	prices := GBMPath(rng, 1, 12, 100, 0, 0)

	if len(prices) != 12 {
		t.Fatalf("GBMPath() length = %d, want 12", len(prices))
	}
	for i, p := range prices {
		if p != 100 {
			t.Errorf("price[%d] = %v, want 100", i, p)
		}
	}
}

func TestGBMPath_reproducible(t *testing.T) {
	a := GBMPath(rand.New(rand.NewSource(42)), 10, 120, 100, 0.2, 0.07)
	b := GBMPath(rand.New(rand.NewSource(42)), 10, 120, 100, 0.2, 0.07)
	c := GBMPath(rand.New(rand.NewSource(43)), 10, 120, 100, 0.2, 0.07)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v != %v", i, a[i], b[i])
		}
	}

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced the same path")
	}
}

func TestGBMPath_positive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i, p := range GBMPath(rng, 30, 360, 100, 0.5, 0) {
		if p <= 0 {
			t.Fatalf("price[%d] = %v, want positive", i, p)
		}
	}
}

func TestGBMPath_empty(t *testing.T) {
	if got := GBMPath(rand.New(rand.NewSource(1)), 1, 0, 100, 0.1, 0.1); got != nil {
		t.Errorf("GBMPath() = %v, want nil for zero periods", got)
	}
}

func TestGBMReturns(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	returns, err := GBMReturns(rand.New(rand.NewSource(42)), start, 24, 100, 0.15, 0.07)
	if err != nil {
		t.Fatalf("GBMReturns() unexpected error = %v", err)
	}
	if got := returns.Len(); got != 24 {
		t.Fatalf("GBMReturns() length = %d, want 24", got)
	}
	if on := returns.First(); on != NewDate(2024, time.January, 31) {
		t.Errorf("first period = %v, want 2024-01-31", on)
	}
	if _, r := returns.At(0); r != 0 {
		t.Errorf("first return = %v, want 0 (unused by convention)", r)
	}
}
