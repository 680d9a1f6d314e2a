package paydown

import "fmt"

// Compound produces the compounded account value per period for a stream of
// contributions invested at periodic linear returns. Both series must share
// an index of equal length.
//
// The account starts at 0 on the first period, then
//
//	value[t] = (contribution[t-1] + value[t-1]) * (1 + return[t])
//
// Note the off-by-one: the contribution made going into period t-1 compounds
// with the return realized over period t, so a contribution earns its first
// return one period after it is made. This is the defining relation and is
// preserved as observed; the first return is never read.
func Compound(contributions *Series, returns *Returns) (Series, error) {
	var out Series
	if contributions.Len() != returns.Len() {
		return out, fmt.Errorf("contributions (%d periods) and returns (%d periods) must share the same index", contributions.Len(), returns.Len())
	}
	if returns.Len() == 0 {
		return out, nil
	}

	_, first := contributions.At(0)
	value := M(0, first.Currency())
	out.Append(returns.First(), value)
	for t := 1; t < returns.Len(); t++ {
		_, contribution := contributions.At(t - 1)
		on, r := returns.At(t)
		value = contribution.Add(value).Grow(r)
		out.Append(on, value)
	}
	return out, nil
}
