package notifier

import (
	"strings"
	"testing"

	"TickerSentry/internal/model"
	"TickerSentry/internal/strategy"
)

func testGroups() []ReportGroup {
	return []ReportGroup{
		{
			Name: "💰 PORTFOLIO",
			Batch: model.BatchResult{
				Results: []model.ScoredResult{
					{
						Ticker: "AAA", Score: 0.8, Recommendation: model.StrongBuy,
						Indicators: []model.IndicatorResult{
							{Name: strategy.FamilyTrendCloud, Description: "ABOVE CLOUD", Score: 0.9},
						},
					},
					{
						Ticker: "BBB", Score: 0.2, Recommendation: model.StrongSell,
						Indicators: []model.IndicatorResult{
							{Name: strategy.FamilyFundamental, Description: "fundamentals unavailable", Score: 0.5, Degraded: true},
						},
					},
				},
				Excluded: []model.Exclusion{{Ticker: "CCC", Reason: "no data"}},
			},
		},
	}
}

func describeTest(symbol string) string { return symbol + " Corp" }

func TestFormatReportWorstFirst(t *testing.T) {
	out := FormatReport("DAILY REPORT", testGroups(), describeTest, strategy.DefaultThresholds())

	posBBB := strings.Index(out, "*BBB*")
	posAAA := strings.Index(out, "*AAA*")
	if posBBB < 0 || posAAA < 0 {
		t.Fatalf("missing ticker sections:\n%s", out)
	}
	if posBBB > posAAA {
		t.Error("worst scorer must be listed first")
	}
}

func TestFormatReportContent(t *testing.T) {
	out := FormatReport("DAILY REPORT", testGroups(), describeTest, strategy.DefaultThresholds())

	for _, want := range []string{
		"DAILY REPORT",
		"💰 PORTFOLIO",
		"AAA Corp",
		"Score: 0.800 | 🟢🟢 STRONG BUY",
		"Score: 0.200 | 🔴🔴 STRONG SELL",
		"ABOVE CLOUD (90.0%)",
		"fundamentals unavailable (50.0%, degraded)",
		"Excluded (no data): 1 - CCC",
		"Avg score 0.500 | alerts 1/2 | opportunities 1/2",
		"📋 LEGEND:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatReportSkipsEmptyGroups(t *testing.T) {
	groups := append(testGroups(), ReportGroup{Name: "👁 WATCHLIST"})
	out := FormatReport("DAILY REPORT", groups, describeTest, strategy.DefaultThresholds())
	if strings.Contains(out, "WATCHLIST") {
		t.Error("empty group must not render a section")
	}
}

func TestFormatLegendUsesActiveThresholds(t *testing.T) {
	th := strategy.DefaultThresholds()
	th.Warning = 0.48

	out := FormatLegend(th)
	if !strings.Contains(out, "0.48") {
		t.Errorf("legend does not reflect overridden cut-point:\n%s", out)
	}
	if !strings.Contains(out, "score < 0.25") || !strings.Contains(out, "score >= 0.65") {
		t.Errorf("legend boundaries wrong:\n%s", out)
	}
}

func TestRecommendationLabels(t *testing.T) {
	tests := []struct {
		rec  model.Recommendation
		want string
	}{
		{model.StrongSell, "🔴🔴 STRONG SELL"},
		{model.Sell, "🔴 SELL"},
		{model.Warning, "🟡 WATCH CLOSELY"},
		{model.Neutral, "⚪ HOLD"},
		{model.Buy, "🟢 BUY"},
		{model.StrongBuy, "🟢🟢 STRONG BUY"},
	}
	for _, tt := range tests {
		if got := recommendationLabel(tt.rec); got != tt.want {
			t.Errorf("label(%s) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}
