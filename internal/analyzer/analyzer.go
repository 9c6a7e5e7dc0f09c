package analyzer

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"TickerSentry/internal/model"
	"TickerSentry/internal/provider"
	"TickerSentry/internal/strategy"
)

// Analyzer drives the per-ticker pipeline: fetch series, fetch
// fundamentals, run the scoring engine. Tickers whose series cannot be
// obtained at all are excluded and counted rather than neutral-scored.
type Analyzer struct {
	fetcher provider.Fetcher
	engine  *strategy.Engine
	logger  zerolog.Logger
}

// New creates an Analyzer. Wrap the fetcher in a CachedFetcher when the
// same tickers are analyzed more than once per run.
func New(fetcher provider.Fetcher, engine *strategy.Engine) *Analyzer {
	return &Analyzer{
		fetcher: fetcher,
		engine:  engine,
		logger:  log.With().Str("component", "analyzer").Logger(),
	}
}

// AnalyzeBatch scores a group of tickers sequentially. Results keep the
// input ticker order; ranking is the reporter's concern. A cancelled
// context stops the batch and excludes the remaining tickers.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, tickers []string, interval model.Interval, limit int) model.BatchResult {
	var batch model.BatchResult
	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			batch.Excluded = append(batch.Excluded, model.Exclusion{Ticker: ticker, Reason: err.Error()})
			continue
		}

		series, err := provider.FetchSeries(ctx, a.fetcher, ticker, interval, limit)
		if err != nil {
			if !errors.Is(err, provider.ErrNoData) {
				a.logger.Warn().Err(err).Str("ticker", ticker).Msg("series fetch failed")
			}
			batch.Excluded = append(batch.Excluded, model.Exclusion{Ticker: ticker, Reason: err.Error()})
			continue
		}

		fund, err := a.fetcher.FetchFundamentals(ctx, ticker)
		if err != nil {
			// Fundamentals are optional; the evaluator degrades to neutral.
			a.logger.Debug().Err(err).Str("ticker", ticker).Msg("fundamentals unavailable")
			fund = nil
		}

		result := a.engine.Evaluate(series, fund)
		a.logger.Info().
			Str("ticker", ticker).
			Float64("score", result.Score).
			Str("recommendation", string(result.Recommendation)).
			Msg("ticker scored")
		batch.Results = append(batch.Results, *result)
	}
	return batch
}
