// Package marketdata fetches daily price history from AlphaVantage.
// https://www.alphavantage.co/documentation/
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const defaultBaseURL = "https://www.alphavantage.co/query"

// ErrNoData means the provider answered but had no bars inside the
// requested range. Distinct from transport or API failure: callers treat
// transport failure as retryable and ErrNoData as a definitive miss.
var ErrNoData = errors.New("no data in range")

// Client is an HTTP client for the AlphaVantage API. A circuit breaker
// sits in front of the HTTP call so a dead provider fails fast into the
// next resolution tier instead of stalling every asset-class fetch.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a new AlphaVantage client
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom base URL (for testing)
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "alphavantage",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		breaker: breaker,
	}
}

// GetDailySeries fetches daily closes for symbol and filters them to the
// inclusive [start, end] range, oldest first. Returns ErrNoData when the
// provider responds successfully but no bars fall inside the range.
func (c *Client) GetDailySeries(ctx context.Context, symbol string, start, end time.Time) ([]Bar, error) {
	// Ranges reaching back further than the compact window (100 sessions)
	// need the full history.
	outputSize := "compact"
	if time.Since(start).Hours()/24.0 > 100.0 {
		outputSize = "full"
	}

	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", symbol)
	params.Set("outputsize", outputSize)
	params.Set("apikey", c.apiKey)

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var tsResp TimeSeriesDailyResponse
	if err := json.Unmarshal(body, &tsResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if tsResp.ErrorMessage != "" {
		return nil, fmt.Errorf("API error for %s: %s", symbol, tsResp.ErrorMessage)
	}
	if tsResp.Note != "" {
		return nil, fmt.Errorf("API throttled: %s", tsResp.Note)
	}
	if len(tsResp.TimeSeries) == 0 {
		return nil, ErrNoData
	}

	var bars []Bar
	for dateStr, ohlcv := range tsResp.TimeSeries {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		closePrice, err := strconv.ParseFloat(ohlcv.Close, 64)
		if err != nil || closePrice <= 0 {
			continue
		}
		bars = append(bars, Bar{Date: date, Close: closePrice})
	}

	if len(bars) == 0 {
		return nil, ErrNoData
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func (c *Client) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		reqURL := c.baseURL + "?" + params.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}
