package marketdata

import "time"

// TimeSeriesDailyResponse mirrors the AlphaVantage TIME_SERIES_DAILY payload
type TimeSeriesDailyResponse struct {
	MetaData   MetaData              `json:"Meta Data"`
	TimeSeries map[string]DailyOHLCV `json:"Time Series (Daily)"`
	// AlphaVantage signals soft failures (bad symbol, throttling) with 200s
	// carrying one of these fields instead of a series.
	ErrorMessage string `json:"Error Message,omitempty"`
	Note         string `json:"Note,omitempty"`
	Information  string `json:"Information,omitempty"`
}

// MetaData is the header block of a time-series response
type MetaData struct {
	Information string `json:"1. Information"`
	Symbol      string `json:"2. Symbol"`
}

// DailyOHLCV is one day of string-encoded prices as AlphaVantage returns them
type DailyOHLCV struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// Bar is one parsed daily close
type Bar struct {
	Date  time.Time
	Close float64
}
