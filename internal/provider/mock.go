package provider

import (
	"context"
	"time"

	"TickerSentry/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price        float64
	Bars         map[string][]model.OHLCV
	Fundamentals map[string]*model.Fundamentals
	Err          error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, symbol string, _ model.Interval, limit int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars[symbol], nil
	}
	return GenerateBars(m.Price, limit), nil
}

func (m *MockFetcher) FetchFundamentals(_ context.Context, symbol string) (*model.Fundamentals, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Fundamentals == nil {
		return nil, nil
	}
	return m.Fundamentals[symbol], nil
}

// GenerateBars produces a gently trending synthetic series around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
