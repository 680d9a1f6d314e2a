package paydown

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// FetchJSONPrices fetches a JSON document and extracts a price array from it
// with a jsonpath expression, e.g. "$.prices[*].close". It lets any provider
// with a JSON endpoint serve as a price source without a dedicated client.
func FetchJSONPrices(addr, path string) ([]float64, error) {
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q on %q: %w", path, addr, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single
		// answer: promote a single value to a one-element list.
		jlist = []any{jval}
	}

	prices := make([]float64, 0, len(jlist))
	for _, jv := range jlist {
		v, ok := jv.(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing %q: %v is not a number", path, jv)
		}
		prices = append(prices, v)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no prices found at %q in %q", path, addr)
	}
	return prices, nil
}

// FetchJSONReturns fetches monthly prices from a generic JSON endpoint and
// converts them to a monthly return series starting at 'start'.
func FetchJSONReturns(addr, path string, start Date) (Returns, error) {
	prices, err := FetchJSONPrices(addr, path)
	if err != nil {
		return Returns{}, err
	}
	return ReturnsFromPrices(ScheduleDates(start, len(prices)-1), prices)
}
