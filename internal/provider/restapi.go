package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"TickerSentry/internal/model"
)

// RestFetcher implements Fetcher against a self-hosted bars REST API, for
// deployments that cannot reach Yahoo directly.
type RestFetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRestFetcher creates a fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RestFetcher{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RestFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of one bar.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *RestFetcher) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("rest fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("rest fetch: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest decode: %w", err)
	}
	return nil
}

func (f *RestFetcher) FetchBars(ctx context.Context, symbol string, interval model.Interval, limit int) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars?symbol=%s&interval=%s&limit=%d",
		f.baseURL, url.QueryEscape(symbol), interval, limit)

	var raw []restBar
	if err := f.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	bars := make([]model.OHLCV, len(raw))
	for i, rb := range raw {
		bars[i] = model.OHLCV{
			Time:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	return bars, nil
}

func (f *RestFetcher) FetchFundamentals(ctx context.Context, symbol string) (*model.Fundamentals, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fundamentals?symbol=%s", f.baseURL, url.QueryEscape(symbol))

	var raw struct {
		TrailingPE    float64 `json:"trailing_pe"`
		DividendYield float64 `json:"dividend_yield"`
		MarketCap     float64 `json:"market_cap"`
		ProfitMargin  float64 `json:"profit_margin"`
		DebtToEquity  float64 `json:"debt_to_equity"`
	}
	if err := f.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	return &model.Fundamentals{
		TrailingPE:    raw.TrailingPE,
		DividendYield: raw.DividendYield,
		MarketCap:     raw.MarketCap,
		ProfitMargin:  raw.ProfitMargin,
		DebtToEquity:  raw.DebtToEquity,
	}, nil
}
