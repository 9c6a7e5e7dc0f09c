package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"TickerSentry/internal/analyzer"
	"TickerSentry/internal/model"
	"TickerSentry/internal/notifier"
	"TickerSentry/internal/provider"
	"TickerSentry/internal/recorder"
	"TickerSentry/internal/strategy"
	"TickerSentry/internal/universe"
)

const runTimeout = 15 * time.Minute

// Scheduler triggers analysis runs on cron schedules and on demand.
type Scheduler struct {
	cron       *cron.Cron
	fetcher    provider.Fetcher
	engine     *strategy.Engine
	universe   *universe.Universe
	notifier   notifier.Notifier
	recorder   recorder.Recorder
	thresholds strategy.Thresholds

	dailyBars  int
	weeklyBars int

	logger  zerolog.Logger
	mu      sync.Mutex // one run at a time
	lastRun time.Time
}

func New(fetcher provider.Fetcher, engine *strategy.Engine, uni *universe.Universe,
	notif notifier.Notifier, rec recorder.Recorder, thresholds strategy.Thresholds,
	dailyBars, weeklyBars int) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		fetcher:    fetcher,
		engine:     engine,
		universe:   uni,
		notifier:   notif,
		recorder:   rec,
		thresholds: thresholds,
		dailyBars:  dailyBars,
		weeklyBars: weeklyBars,
		logger:     log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll installs the daily and weekly cron entries.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.cron.AddFunc(dailyCron, func() {
		s.runAnalysis("DAILY", "DAILY REPORT", model.IntervalDaily, s.dailyBars)
	}); err != nil {
		return fmt.Errorf("register daily schedule %q: %w", dailyCron, err)
	}

	if _, err := s.cron.AddFunc(weeklyCron, func() {
		s.runAnalysis("WEEKLY", "WEEKLY REPORT", model.IntervalWeekly, s.weeklyBars)
	}); err != nil {
		return fmt.Errorf("register weekly schedule %q: %w", weeklyCron, err)
	}

	s.logger.Info().Str("daily", dailyCron).Str("weekly", weeklyCron).Msg("schedules registered")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("scheduler started")
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("scheduler stopped")
}

// RunDailyNow triggers an immediate daily analysis.
func (s *Scheduler) RunDailyNow() {
	s.runAnalysis("MANUAL", "DAILY REPORT", model.IntervalDaily, s.dailyBars)
}

// RunWeeklyNow triggers an immediate weekly analysis.
func (s *Scheduler) RunWeeklyNow() {
	s.runAnalysis("MANUAL", "WEEKLY REPORT", model.IntervalWeekly, s.weeklyBars)
}

func (s *Scheduler) runAnalysis(trigger, title string, interval model.Interval, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	s.logger.Info().Str("trigger", trigger).Str("interval", string(interval)).Msg("analysis run started")

	// Fresh cache per run so the same ticker in both groups is fetched once.
	an := analyzer.New(provider.NewCachedFetcher(s.fetcher), s.engine)

	portfolio := an.AnalyzeBatch(ctx, s.universe.PortfolioSymbols(), interval, limit)
	watchlist := an.AnalyzeBatch(ctx, s.universe.WatchlistSymbols(), interval, limit)

	groups := []notifier.ReportGroup{
		{Name: "💰 PORTFOLIO", Batch: portfolio},
		{Name: "👁 WATCHLIST", Batch: watchlist},
	}
	report := notifier.FormatReport(title, groups, s.universe.Describe, s.thresholds)

	err := s.notifier.Send(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Msg("report delivery failed")
	}

	analyzed := len(portfolio.Results) + len(watchlist.Results)
	excluded := len(portfolio.Excluded) + len(watchlist.Excluded)
	duration := time.Since(start)

	if recErr := s.recorder.RecordRun(&recorder.RunRecord{
		Trigger:    trigger,
		Analyzed:   analyzed,
		Excluded:   excluded,
		DurationMS: duration.Milliseconds(),
		Delivered:  err == nil,
	}); recErr != nil {
		s.logger.Warn().Err(recErr).Msg("record run")
	}
	for _, ex := range append(portfolio.Excluded, watchlist.Excluded...) {
		if recErr := s.recorder.RecordExclusion(&recorder.ExclusionRecord{
			Trigger: trigger,
			Ticker:  ex.Ticker,
			Reason:  ex.Reason,
		}); recErr != nil {
			s.logger.Warn().Err(recErr).Msg("record exclusion")
		}
	}

	s.lastRun = time.Now()
	s.logger.Info().
		Str("trigger", trigger).
		Int("analyzed", analyzed).
		Int("excluded", excluded).
		Dur("duration", duration).
		Msg("analysis run finished")
}

// HandleCommand processes a chat command and returns the reply text.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/daily":
		go s.RunDailyNow()
		return "⏳ Daily analysis started, report will follow."
	case "/weekly":
		go s.RunWeeklyNow()
		return "⏳ Weekly analysis started, report will follow."
	case "/status":
		last := "never"
		if !s.lastRun.IsZero() {
			last = s.lastRun.Format("2006-01-02 15:04:05")
		}
		return fmt.Sprintf("✅ TickerSentry running\nTickers: %d portfolio, %d watchlist\nLast run: %s",
			len(s.universe.PortfolioSymbols()), len(s.universe.WatchlistSymbols()), last)
	case "/help", "/start":
		return "Commands:\n/daily - run daily analysis now\n/weekly - run weekly analysis now\n/status - show bot status"
	default:
		return ""
	}
}
