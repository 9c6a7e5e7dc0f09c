package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"TickerSentry/internal/model"
)

// YahooFetcher implements Fetcher against the Yahoo Finance public API,
// rate-limited and retried with exponential backoff.
type YahooFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewYahooFetcher creates a fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		logger:  log.With().Str("component", "yahoo_fetcher").Logger(),
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// chartRange picks the smallest Yahoo range covering limit bars.
func chartRange(interval model.Interval, limit int) string {
	if interval == model.IntervalWeekly {
		switch {
		case limit <= 26:
			return "6mo"
		case limit <= 52:
			return "1y"
		default:
			return "2y"
		}
	}
	switch {
	case limit <= 30:
		return "1mo"
	case limit <= 90:
		return "3mo"
	case limit <= 180:
		return "6mo"
	case limit <= 365:
		return "1y"
	default:
		return "2y"
	}
}

func (f *YahooFetcher) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("yahoo fetch: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("yahoo read body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
		}
		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("yahoo decode: %w", err))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}

// FetchBars downloads OHLCV bars, skipping null bars (holidays etc.) and
// trimming to the requested count.
func (f *YahooFetcher) FetchBars(ctx context.Context, symbol string, interval model.Interval, limit int) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(symbol), interval, chartRange(interval, limit))

	var chart yahooChart
	if err := f.getJSON(ctx, endpoint, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}
	if len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}
	return bars, nil
}

// yahooQuoteSummary is the response structure from the quoteSummary API.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				TrailingPE    rawValue `json:"trailingPE"`
				DividendYield rawValue `json:"dividendYield"`
				MarketCap     rawValue `json:"marketCap"`
			} `json:"summaryDetail"`
			FinancialData struct {
				ProfitMargins rawValue `json:"profitMargins"`
				DebtToEquity  rawValue `json:"debtToEquity"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type rawValue struct {
	Raw float64 `json:"raw"`
}

// FetchFundamentals pulls the metrics the fundamental evaluator needs.
// Missing metrics stay zero.
func (f *YahooFetcher) FetchFundamentals(ctx context.Context, symbol string) (*model.Fundamentals, error) {
	endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryDetail,financialData",
		url.PathEscape(symbol))

	var summary yahooQuoteSummary
	if err := f.getJSON(ctx, endpoint, &summary); err != nil {
		return nil, err
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%s fundamentals: %w", symbol, ErrNoData)
	}

	r := summary.QuoteSummary.Result[0]
	f.logger.Debug().Str("symbol", symbol).Msg("fundamentals fetched")
	return &model.Fundamentals{
		TrailingPE:    r.SummaryDetail.TrailingPE.Raw,
		DividendYield: r.SummaryDetail.DividendYield.Raw,
		MarketCap:     r.SummaryDetail.MarketCap.Raw,
		ProfitMargin:  r.FinancialData.ProfitMargins.Raw,
		DebtToEquity:  r.FinancialData.DebtToEquity.Raw,
	}, nil
}
