package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"TickerSentry/internal/model"
)

// ErrNoData marks a fetch that succeeded at the transport level but
// carried no bars. Tickers failing with it are excluded from the batch.
var ErrNoData = errors.New("provider returned no data")

// Fetcher supplies price history and fundamentals for a symbol.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol string, interval model.Interval, limit int) ([]model.OHLCV, error)
	FetchFundamentals(ctx context.Context, symbol string) (*model.Fundamentals, error)
	Name() string
}

// FetchSeries fetches bars and builds a normalized PriceSeries: bars
// sorted chronologically with duplicate timestamps collapsed. This is the
// single place variable-shape provider output is cleaned up; downstream
// code can rely on the series invariants.
func FetchSeries(ctx context.Context, f Fetcher, symbol string, interval model.Interval, limit int) (*model.PriceSeries, error) {
	bars, err := f.FetchBars(ctx, symbol, interval, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s bars: %w", symbol, interval, err)
	}
	bars = normalizeBars(bars)
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s %s: %w", symbol, interval, ErrNoData)
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Interval:  interval,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// normalizeBars sorts bars chronologically and keeps the last bar for any
// duplicated timestamp.
func normalizeBars(bars []model.OHLCV) []model.OHLCV {
	if len(bars) == 0 {
		return bars
	}
	sorted := make([]model.OHLCV, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	out := sorted[:1]
	for _, b := range sorted[1:] {
		if b.Time.Equal(out[len(out)-1].Time) {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
