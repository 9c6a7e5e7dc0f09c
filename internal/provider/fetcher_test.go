package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"TickerSentry/internal/model"
)

func TestFetchSeriesNormalizes(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := []model.OHLCV{
		{Time: base.AddDate(0, 0, 2), Close: 102},
		{Time: base, Close: 100},
		{Time: base.AddDate(0, 0, 1), Close: 101},
		{Time: base.AddDate(0, 0, 1), Close: 999}, // duplicate, last wins
	}
	mock := &MockFetcher{Bars: map[string][]model.OHLCV{"AAA": bars}}

	series, err := FetchSeries(context.Background(), mock, "AAA", model.IntervalDaily, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("bar count = %d, want 3", series.Len())
	}
	for i := 1; i < series.Len(); i++ {
		if !series.Bars[i-1].Time.Before(series.Bars[i].Time) {
			t.Errorf("bars not strictly increasing at index %d", i)
		}
	}
	if series.Bars[1].Close != 999 {
		t.Errorf("duplicate timestamp close = %f, want the later bar (999)", series.Bars[1].Close)
	}
	if series.Symbol != "AAA" || series.Interval != model.IntervalDaily {
		t.Errorf("series identity = %s/%s", series.Symbol, series.Interval)
	}
}

func TestFetchSeriesNoData(t *testing.T) {
	mock := &MockFetcher{Bars: map[string][]model.OHLCV{}}
	_, err := FetchSeries(context.Background(), mock, "EMPTY", model.IntervalDaily, 10)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}
}

func TestFetchSeriesPropagatesErrors(t *testing.T) {
	fetchErr := errors.New("network down")
	mock := &MockFetcher{Err: fetchErr}
	_, err := FetchSeries(context.Background(), mock, "AAA", model.IntervalDaily, 10)
	if !errors.Is(err, fetchErr) {
		t.Errorf("error = %v, want wrapped fetch error", err)
	}
	if errors.Is(err, ErrNoData) {
		t.Error("transport errors must not be reported as ErrNoData")
	}
}
