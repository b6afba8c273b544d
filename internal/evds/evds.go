// Package evds provides a client for the TCMB EVDS data service, the
// source for the daily USD/TRY exchange rate and the monthly Yİ-ÜFE
// producer-price index used by the tax engine.
package evds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

const (
	// usdSeries is the daily USD buying-rate series.
	usdSeries = "TP.DK.USD.A"
	// ppiSeries is the monthly domestic producer price index (Yİ-ÜFE).
	ppiSeries = "TP.TOPTANFIY.T1"

	defaultBaseURL = "https://evds2.tcmb.gov.tr/service/evds"
)

// Client fetches series data from the EVDS API. The API key is passed
// per call because it lives encrypted in the settings table and may be
// rotated at runtime.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an EVDS client. An empty baseURL selects the
// production endpoint; tests point it at a local server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// FetchUsdRates retrieves daily USD/TRY buying rates for the inclusive
// date range. Dates without an observation (weekends, holidays) are
// omitted from the result, not zero-filled.
func (c *Client) FetchUsdRates(ctx context.Context, apiKey string, start, end time.Time) ([]model.ExchangeRate, error) {
	url := fmt.Sprintf("%s/series=%s&startDate=%s&endDate=%s&type=json",
		c.baseURL, usdSeries, start.Format("02-01-2006"), end.Format("02-01-2006"))

	response, err := c.query(ctx, url, apiKey)
	if err != nil {
		return nil, err
	}

	rates := make([]model.ExchangeRate, 0, len(response.Items))
	for _, item := range response.Items {
		if item.UsdBuying == nil || *item.UsdBuying == "" {
			continue
		}
		rate, err := strconv.ParseFloat(*item.UsdBuying, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed rate %q for %s: %w", *item.UsdBuying, item.Date, err)
		}
		date, err := time.Parse("02-01-2006", item.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed date %q in rate series: %w", item.Date, err)
		}
		rates = append(rates, model.ExchangeRate{Date: date.UTC(), Rate: rate})
	}
	return rates, nil
}

// FetchInflationIndex retrieves monthly Yİ-ÜFE index values for the
// inclusive date range. Monthly observations are dated "YYYY-M".
func (c *Client) FetchInflationIndex(ctx context.Context, apiKey string, start, end time.Time) ([]model.InflationIndex, error) {
	url := fmt.Sprintf("%s/series=%s&startDate=%s&endDate=%s&type=json",
		c.baseURL, ppiSeries, start.Format("02-01-2006"), end.Format("02-01-2006"))

	response, err := c.query(ctx, url, apiKey)
	if err != nil {
		return nil, err
	}

	values := make([]model.InflationIndex, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Ppi == nil || *item.Ppi == "" {
			continue
		}
		value, err := strconv.ParseFloat(*item.Ppi, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed index value %q for %s: %w", *item.Ppi, item.Date, err)
		}

		var year, month int
		if _, err := fmt.Sscanf(item.Date, "%d-%d", &year, &month); err != nil {
			return nil, fmt.Errorf("malformed date %q in index series: %w", item.Date, err)
		}
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("malformed month in index series date %q", item.Date)
		}

		values = append(values, model.InflationIndex{
			Year:  year,
			Month: time.Month(month),
			Value: value,
		})
	}
	return values, nil
}

func (c *Client) query(ctx context.Context, url, apiKey string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, fmt.Errorf("failed to build evds request: %w", err)
	}
	req.Header.Set("key", apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("evds request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return Response{}, fmt.Errorf("evds returned status %d: %s", res.StatusCode, body)
	}

	var response Response
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return Response{}, fmt.Errorf("failed to decode evds response: %w", err)
	}
	return response, nil
}
