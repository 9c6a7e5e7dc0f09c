package provider

import (
	"context"
	"fmt"
	"sync"

	"TickerSentry/internal/model"
)

// CachedFetcher memoizes successful fetches for the lifetime of the
// wrapper. A fresh wrapper is created per analysis run so no data leaks
// across runs; failed fetches are not cached and will be retried.
type CachedFetcher struct {
	inner Fetcher

	mu    sync.Mutex
	bars  map[string][]model.OHLCV
	funds map[string]*model.Fundamentals
}

// NewCachedFetcher wraps a Fetcher with per-run memoization.
func NewCachedFetcher(inner Fetcher) *CachedFetcher {
	return &CachedFetcher{
		inner: inner,
		bars:  make(map[string][]model.OHLCV),
		funds: make(map[string]*model.Fundamentals),
	}
}

func (c *CachedFetcher) Name() string { return c.inner.Name() }

func (c *CachedFetcher) FetchBars(ctx context.Context, symbol string, interval model.Interval, limit int) ([]model.OHLCV, error) {
	key := fmt.Sprintf("%s|%s|%d", symbol, interval, limit)

	c.mu.Lock()
	if bars, ok := c.bars[key]; ok {
		c.mu.Unlock()
		return bars, nil
	}
	c.mu.Unlock()

	bars, err := c.inner.FetchBars(ctx, symbol, interval, limit)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.bars[key] = bars
	c.mu.Unlock()
	return bars, nil
}

func (c *CachedFetcher) FetchFundamentals(ctx context.Context, symbol string) (*model.Fundamentals, error) {
	c.mu.Lock()
	if f, ok := c.funds[symbol]; ok {
		c.mu.Unlock()
		return f, nil
	}
	c.mu.Unlock()

	f, err := c.inner.FetchFundamentals(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.funds[symbol] = f
	c.mu.Unlock()
	return f, nil
}
