package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"TickerSentry/internal/model"
	"TickerSentry/internal/provider"
	"TickerSentry/internal/recorder"
	"TickerSentry/internal/strategy"
	"TickerSentry/internal/universe"
)

type captureNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (c *captureNotifier) Name() string { return "capture" }

func (c *captureNotifier) Send(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
	return nil
}

type captureRecorder struct {
	runs       []recorder.RunRecord
	exclusions []recorder.ExclusionRecord
}

func (c *captureRecorder) RecordRun(run *recorder.RunRecord) error {
	c.runs = append(c.runs, *run)
	return nil
}

func (c *captureRecorder) RecordExclusion(evt *recorder.ExclusionRecord) error {
	c.exclusions = append(c.exclusions, *evt)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestScheduler(t *testing.T) (*Scheduler, *captureNotifier, *captureRecorder) {
	t.Helper()

	csvPath := filepath.Join(t.TempDir(), "universe.csv")
	content := "symbol,group,description\nAAA,PORTFOLIO,Alpha\nBBB,WATCHLIST,Beta\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write universe: %v", err)
	}
	uni, err := universe.Load(csvPath)
	if err != nil {
		t.Fatalf("load universe: %v", err)
	}

	engine, err := strategy.NewEngine(strategy.DefaultWeights(), strategy.DefaultThresholds())
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	capture := &captureNotifier{}
	journal := &captureRecorder{}
	s := New(&provider.MockFetcher{Price: 100}, engine, uni, capture, journal,
		strategy.DefaultThresholds(), 120, 104)
	return s, capture, journal
}

func TestRunDailyNow(t *testing.T) {
	s, capture, journal := newTestScheduler(t)

	s.RunDailyNow()

	if len(capture.messages) != 1 {
		t.Fatalf("message count = %d, want 1", len(capture.messages))
	}
	msg := capture.messages[0]
	for _, want := range []string{"DAILY REPORT", "Alpha", "Beta", "LEGEND"} {
		if !strings.Contains(msg, want) {
			t.Errorf("report missing %q", want)
		}
	}

	if len(journal.runs) != 1 {
		t.Fatalf("journal runs = %d, want 1", len(journal.runs))
	}
	run := journal.runs[0]
	if run.Trigger != "MANUAL" || run.Analyzed != 2 || run.Excluded != 0 || !run.Delivered {
		t.Errorf("run record = %+v", run)
	}
}

func TestRunRecordsExclusions(t *testing.T) {
	s, _, journal := newTestScheduler(t)
	s.fetcher = &provider.MockFetcher{Bars: map[string][]model.OHLCV{
		"AAA": provider.GenerateBars(100, 120),
		// BBB intentionally absent
	}}

	s.RunDailyNow()

	if len(journal.runs) != 1 {
		t.Fatalf("journal runs = %d, want 1", len(journal.runs))
	}
	if journal.runs[0].Analyzed != 1 || journal.runs[0].Excluded != 1 {
		t.Errorf("run record = %+v, want analyzed=1 excluded=1", journal.runs[0])
	}
	if len(journal.exclusions) != 1 || journal.exclusions[0].Ticker != "BBB" {
		t.Errorf("exclusions = %+v, want one for BBB", journal.exclusions)
	}
}

func TestRegisterAllRejectsBadCron(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	if err := s.RegisterAll("not a cron expr", "0 0 18 * * 5"); err == nil {
		t.Error("expected error for invalid daily cron")
	}
}

func TestHandleCommand(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	if reply := s.HandleCommand("/help"); !strings.Contains(reply, "/daily") {
		t.Errorf("help reply = %q", reply)
	}
	if reply := s.HandleCommand("/status"); !strings.Contains(reply, "1 portfolio, 1 watchlist") {
		t.Errorf("status reply = %q", reply)
	}
	if reply := s.HandleCommand("something else"); reply != "" {
		t.Errorf("unknown command reply = %q, want empty", reply)
	}
}
