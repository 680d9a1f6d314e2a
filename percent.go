package paydown

import "fmt"

// Percent is an annual rate expressed as a fraction (0.12 is 12% a year).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Monthly returns the periodic rate of an annual rate compounded monthly.
func (p Percent) Monthly() float64 { return float64(p) / 12 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}
