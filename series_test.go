package paydown

import (
	"testing"
	"time"
)

func TestSeries_Append(t *testing.T) {
	jan := NewDate(2024, time.January, 31)
	feb := NewDate(2024, time.February, 29)
	mar := NewDate(2024, time.March, 29)

	var s Series
	// Out of order on purpose.
	s.Append(mar, M(3, "USD"))
	s.Append(jan, M(1, "USD"))
	s.Append(feb, M(2, "USD"))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if on, _ := s.At(0); on != jan {
		t.Errorf("At(0) date = %v, want %v", on, jan)
	}
	if on, _ := s.At(2); on != mar {
		t.Errorf("At(2) date = %v, want %v", on, mar)
	}

	// Existing value at that date is overwritten.
	s.Append(feb, M(20, "USD"))
	if s.Len() != 3 {
		t.Fatalf("Len() after overwrite = %d, want 3", s.Len())
	}
	got, ok := s.Get(feb)
	if !ok || !got.Equal(M(20, "USD")) {
		t.Errorf("Get(%v) = %s, want %s", feb, got, M(20, "USD"))
	}

	if _, ok := s.Get(NewDate(2024, time.April, 30)); ok {
		t.Error("Get() found a value at an absent date")
	}
}

func TestReturns_From(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	returns := flatReturns(start, 6, 0.01)

	mid := returns.days[3]
	sub := returns.From(mid)

	if got, want := sub.Len(), 3; got != want {
		t.Fatalf("From() length = %d, want %d", got, want)
	}
	if sub.First() != mid {
		t.Errorf("From() first = %v, want %v", sub.First(), mid)
	}

	// The sub-series is a copy: appending to it must not touch the original.
	sub.Append(NewDate(2025, time.January, 31), 0.5)
	if returns.Len() != 6 {
		t.Errorf("original length = %d after sub-series append, want 6", returns.Len())
	}
}

func TestReturnsFromPrices(t *testing.T) {
	dates := ScheduleDates(NewDate(2024, time.January, 1), 2)
	prices := []float64{100, 110, 99}

	returns, err := ReturnsFromPrices(dates, prices)
	if err != nil {
		t.Fatalf("ReturnsFromPrices() unexpected error = %v", err)
	}

	if _, r := returns.At(0); r != 0 {
		t.Errorf("return[0] = %v, want 0 (unused)", r)
	}
	if _, r := returns.At(1); !almostEqual(r, 0.1) {
		t.Errorf("return[1] = %v, want 0.1", r)
	}
	if _, r := returns.At(2); !almostEqual(r, -0.1) {
		t.Errorf("return[2] = %v, want -0.1", r)
	}
}

func TestReturnsFromPrices_mismatch(t *testing.T) {
	dates := ScheduleDates(NewDate(2024, time.January, 1), 2)
	if _, err := ReturnsFromPrices(dates, []float64{100, 110}); err == nil {
		t.Error("ReturnsFromPrices() expected an error for mismatched lengths")
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
