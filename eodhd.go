package paydown

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
)

const eodhd_api_key = "EODHD_API_KEY"

var eodhdApiFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read the environment variable \""+eodhd_api_key+"\". You can get one at https://eodhd.com/")

// EodhdApiKey returns the API key from the flag or the environment.
func EodhdApiKey() string {
	if *eodhdApiFlag == "" {
		*eodhdApiFlag = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiFlag
}

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a cache that expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// eodhdDaily returns the daily close prices adjusted for splits for a given
// ticker, in chronological order.
func eodhdDaily(apiKey, ticker string, from, to Date) (dates []Date, closes []float64, err error) {
	// https://eodhd.com/api/eod/GSPC.INDX?api_token=...&fmt=json
	// [
	//
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },

	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", ticker, apiKey, from, to)
	type Info struct {
		Date  Date    `json:"date"`
		Close float64 `json:"adjusted_close"`
	}

	// that's the payload
	content := make([]Info, 0)
	if err := jwget(daily(), addr, &content); err != nil {
		return nil, nil, err
	}

	for _, info := range content {
		dates = append(dates, info.Date)
		closes = append(closes, info.Close)
	}
	return dates, closes, nil
}

// resampleMonthEnd keeps the last observation of each month and stamps it on
// the business month end, the shared period index of all schedules.
func resampleMonthEnd(dates []Date, prices []float64) (mdates []Date, mprices []float64) {
	for i, on := range dates {
		stamp := on.BusinessMonthEnd()
		if n := len(mdates); n > 0 && mdates[n-1] == stamp {
			mprices[n-1] = prices[i]
			continue
		}
		mdates = append(mdates, stamp)
		mprices = append(mprices, prices[i])
	}
	return mdates, mprices
}

// FetchMonthlyReturns fetches historical daily prices for a ticker from
// EODHD, resamples them to business month ends and converts them to a
// monthly linear return series.
func FetchMonthlyReturns(apiKey, ticker string, from, to Date) (Returns, error) {
	dates, closes, err := eodhdDaily(apiKey, ticker, from, to)
	if err != nil {
		return Returns{}, fmt.Errorf("eodhd fetch %s: %w", ticker, err)
	}
	if len(dates) == 0 {
		return Returns{}, fmt.Errorf("eodhd returned no prices for %s between %s and %s", ticker, from, to)
	}
	mdates, mprices := resampleMonthEnd(dates, closes)
	return ReturnsFromPrices(mdates, mprices)
}
