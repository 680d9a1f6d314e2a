package paydown

import (
	"math"
	"math/rand"
)

// GBMPath generates a synthetic price path of n periods following a
// discretized geometric Brownian motion:
//
//	price[t] = price0 * exp(t*e1 + cumShock[t]*e2)
//
// with e1 = (drift - vol²/2)*dt, e2 = vol*sqrt(dt) and dt = numYears/n.
// Shocks are independent standard normals drawn from rng; passing a seeded
// source makes the path reproducible.
func GBMPath(rng *rand.Rand, numYears float64, n int, price0, vol, drift float64) []float64 {
	if n <= 0 {
		return nil
	}
	dt := numYears / float64(n)
	e1 := (drift - 0.5*vol*vol) * dt
	e2 := vol * math.Sqrt(dt)

	prices := make([]float64, n)
	prices[0] = price0
	var cumShock float64
	for t := 1; t < n; t++ {
		cumShock += rng.NormFloat64()
		prices[t] = price0 * math.Exp(float64(t)*e1+cumShock*e2)
	}
	return prices
}

// GBMReturns synthesizes a monthly return series of n periods starting at
// 'start', backed by a GBM price path.
func GBMReturns(rng *rand.Rand, start Date, n int, price0, vol, drift float64) (Returns, error) {
	prices := GBMPath(rng, float64(n)/12, n, price0, vol, drift)
	return ReturnsFromPrices(ScheduleDates(start, n-1), prices)
}
