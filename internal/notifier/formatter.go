package notifier

import (
	"fmt"
	"strings"
	"time"

	"TickerSentry/internal/model"
	"TickerSentry/internal/strategy"
)

// ReportGroup pairs a display name with one analyzed ticker group.
type ReportGroup struct {
	Name  string
	Batch model.BatchResult
}

func recommendationLabel(r model.Recommendation) string {
	switch r {
	case model.StrongSell:
		return "🔴🔴 STRONG SELL"
	case model.Sell:
		return "🔴 SELL"
	case model.Warning:
		return "🟡 WATCH CLOSELY"
	case model.Neutral:
		return "⚪ HOLD"
	case model.Buy:
		return "🟢 BUY"
	default:
		return "🟢🟢 STRONG BUY"
	}
}

// FormatReport renders the full report: header, per-group statistics,
// ticker sections ordered worst to best, exclusion counts, and the
// recommendation legend.
func FormatReport(title string, groups []ReportGroup, describe func(string) string, thresholds strategy.Thresholds) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 *TICKERSENTRY - %s* | %s\n", title, time.Now().Format("2006-01-02")))

	for _, g := range groups {
		if len(g.Batch.Results) == 0 && len(g.Batch.Excluded) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s (worst first)\n", g.Name))
		b.WriteString(strings.Repeat("-", 40) + "\n")

		if n := len(g.Batch.Results); n > 0 {
			var sum float64
			alerts, opportunities := 0, 0
			for _, r := range g.Batch.Results {
				sum += r.Score
				if r.Score < 0.4 {
					alerts++
				}
				if r.Score > 0.6 {
					opportunities++
				}
			}
			b.WriteString(fmt.Sprintf("Avg score %.3f | alerts %d/%d | opportunities %d/%d\n",
				sum/float64(n), alerts, n, opportunities, n))
		}

		for _, r := range strategy.Rank(g.Batch.Results) {
			b.WriteString(fmt.Sprintf("\n*%s* - %s\n", r.Ticker, describe(r.Ticker)))
			b.WriteString(fmt.Sprintf("Score: %.3f | %s\n", r.Score, recommendationLabel(r.Recommendation)))
			for _, ind := range r.Indicators {
				if ind.Degraded {
					b.WriteString(fmt.Sprintf("  • %s (%.1f%%, degraded)\n", ind.Description, ind.Score*100))
				} else {
					b.WriteString(fmt.Sprintf("  • %s (%.1f%%)\n", ind.Description, ind.Score*100))
				}
			}
		}

		if len(g.Batch.Excluded) > 0 {
			tickers := make([]string, len(g.Batch.Excluded))
			for i, ex := range g.Batch.Excluded {
				tickers[i] = ex.Ticker
			}
			b.WriteString(fmt.Sprintf("\n⚠️ Excluded (no data): %d - %s\n",
				len(g.Batch.Excluded), strings.Join(tickers, ", ")))
		}
	}

	b.WriteString("\n" + strings.Repeat("=", 40) + "\n")
	b.WriteString(FormatLegend(thresholds))
	return b.String()
}

// FormatLegend renders the recommendation bands for the active thresholds.
func FormatLegend(t strategy.Thresholds) string {
	var b strings.Builder
	b.WriteString("📋 LEGEND:\n")
	b.WriteString(fmt.Sprintf("🔴🔴 STRONG SELL (score < %.2f)\n", t.StrongSell))
	b.WriteString(fmt.Sprintf("🔴 SELL (%.2f-%.2f)\n", t.StrongSell, t.Sell))
	b.WriteString(fmt.Sprintf("🟡 WATCH CLOSELY (%.2f-%.2f)\n", t.Sell, t.Warning))
	b.WriteString(fmt.Sprintf("⚪ HOLD (%.2f-%.2f)\n", t.Warning, t.Neutral))
	b.WriteString(fmt.Sprintf("🟢 BUY (%.2f-%.2f)\n", t.Neutral, t.Buy))
	b.WriteString(fmt.Sprintf("🟢🟢 STRONG BUY (score >= %.2f)\n", t.Buy))
	return b.String()
}
