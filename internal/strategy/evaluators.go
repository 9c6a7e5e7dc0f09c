package strategy

import (
	"fmt"
	"math"

	"TickerSentry/internal/calculator"
	"TickerSentry/internal/model"
)

// Ichimoku-style parameters.
const (
	tenkanPeriod = 9
	kijunPeriod  = 26
	senkouPeriod = 52
	cloudLag     = 26
)

// Moving-average crossover parameters.
const (
	emaShortPeriod = 21
	smaLongPeriod  = 50
)

func degradedResult(name, reason string) model.IndicatorResult {
	return model.IndicatorResult{
		Name:        name,
		Description: reason,
		Score:       NeutralScore,
		Degraded:    true,
		Reason:      reason,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EvaluateTrendCloud compares the latest close to the lagged cloud band.
// The band is evaluated 26 bars back, so the 52-bar span line needs 78
// bars of history; with less the result degrades to neutral.
func EvaluateTrendCloud(series *model.PriceSeries) model.IndicatorResult {
	n := series.Len()
	if n < senkouPeriod+cloudLag {
		return degradedResult(FamilyTrendCloud, fmt.Sprintf("insufficient bars for cloud (%d < %d)", n, senkouPeriod+cloudLag))
	}

	highs := series.Highs()
	lows := series.Lows()
	price := series.LastClose()

	lineAt := func(end, period int) (float64, error) {
		hi, err := calculator.WindowHigh(highs, end, period)
		if err != nil {
			return 0, err
		}
		lo, err := calculator.WindowLow(lows, end, period)
		if err != nil {
			return 0, err
		}
		return (hi + lo) / 2, nil
	}

	tenkan, err := lineAt(n-1, tenkanPeriod)
	if err != nil {
		return degradedResult(FamilyTrendCloud, err.Error())
	}
	kijun, err := lineAt(n-1, kijunPeriod)
	if err != nil {
		return degradedResult(FamilyTrendCloud, err.Error())
	}

	lagEnd := n - 1 - cloudLag
	tenkanLag, err := lineAt(lagEnd, tenkanPeriod)
	if err != nil {
		return degradedResult(FamilyTrendCloud, err.Error())
	}
	kijunLag, err := lineAt(lagEnd, kijunPeriod)
	if err != nil {
		return degradedResult(FamilyTrendCloud, err.Error())
	}
	senkouA := (tenkanLag + kijunLag) / 2
	senkouB, err := lineAt(lagEnd, senkouPeriod)
	if err != nil {
		return degradedResult(FamilyTrendCloud, err.Error())
	}

	cloudTop := math.Max(senkouA, senkouB)
	cloudBottom := math.Min(senkouA, senkouB)

	var desc string
	var score float64
	switch {
	case price > cloudTop && tenkan > kijun:
		desc, score = "ABOVE CLOUD, TENKAN > KIJUN", 0.9
	case price > cloudTop:
		desc, score = "ABOVE CLOUD", 0.7
	case price < cloudBottom && tenkan < kijun:
		desc, score = "BELOW CLOUD, TENKAN < KIJUN", 0.1
	case price < cloudBottom:
		desc, score = "BELOW CLOUD", 0.3
	default:
		desc, score = "INSIDE CLOUD", 0.5
	}
	return model.IndicatorResult{Name: FamilyTrendCloud, Description: desc, Score: score}
}

// EvaluateMovingAverage scores the EMA21/SMA50 relationship. A crossover
// in the last two bars earns the full distance-scaled bonus or penalty;
// plain separation earns half of it.
func EvaluateMovingAverage(series *model.PriceSeries) model.IndicatorResult {
	n := series.Len()
	if n < smaLongPeriod+1 {
		return degradedResult(FamilyMovingAverage, fmt.Sprintf("insufficient bars for MA crossover (%d < %d)", n, smaLongPeriod+1))
	}

	closes := series.Closes()
	emaNow, err := calculator.CalculateEMA(closes, emaShortPeriod)
	if err != nil {
		return degradedResult(FamilyMovingAverage, err.Error())
	}
	smaNow, err := calculator.CalculateSMA(closes, smaLongPeriod)
	if err != nil {
		return degradedResult(FamilyMovingAverage, err.Error())
	}
	emaPrev, err := calculator.CalculateEMA(closes[:n-1], emaShortPeriod)
	if err != nil {
		return degradedResult(FamilyMovingAverage, err.Error())
	}
	smaPrev, err := calculator.CalculateSMA(closes[:n-1], smaLongPeriod)
	if err != nil {
		return degradedResult(FamilyMovingAverage, err.Error())
	}
	if smaNow == 0 {
		return degradedResult(FamilyMovingAverage, "zero long average")
	}

	distance := math.Abs((emaNow - smaNow) / smaNow * 100)
	distScore := math.Min(0.8, distance/20)

	var desc string
	var score float64
	switch {
	case emaNow > smaNow && emaPrev <= smaPrev:
		desc = fmt.Sprintf("BULLISH CROSSOVER (+%.1f%%)", distance)
		score = 0.5 + distScore
	case smaNow > emaNow && smaPrev <= emaPrev:
		desc = fmt.Sprintf("BEARISH CROSSOVER (-%.1f%%)", distance)
		score = 0.5 - distScore
	case emaNow > smaNow:
		desc = fmt.Sprintf("EMA21 > SMA50 (+%.1f%%)", distance)
		score = 0.5 + distScore/2
	default:
		desc = fmt.Sprintf("SMA50 > EMA21 (-%.1f%%)", distance)
		score = 0.5 - distScore/2
	}
	return model.IndicatorResult{Name: FamilyMovingAverage, Description: desc, Score: clamp(score, 0, 1)}
}

// EvaluateMomentum combines RSI(14), MACD(12,26,9) and ADX(14) into one
// score. RSI and ADX fall back to their neutral readings (50 and 25) when
// the series is too short for them; a MACD that cannot be computed simply
// contributes nothing.
func EvaluateMomentum(series *model.PriceSeries) model.IndicatorResult {
	n := series.Len()
	if n < 20 {
		return degradedResult(FamilyMomentum, fmt.Sprintf("insufficient bars for momentum (%d < 20)", n))
	}

	closes := series.Closes()
	rsi, err := calculator.CalculateRSI(closes, 14)
	if err != nil {
		rsi = 50
	}
	adx, err := calculator.CalculateADX(series.Highs(), series.Lows(), closes, 14)
	if err != nil {
		adx = 25
	}

	score := NeutralScore
	switch {
	case rsi >= 40 && rsi <= 60:
		score += 0.1
	case rsi > 60:
		if rsi > 70 {
			score += 0.05 // overbought dampens
		} else {
			score += 0.15
		}
	default:
		if rsi < 30 {
			score -= 0.05 // oversold dampens
		} else {
			score -= 0.15
		}
	}

	if line, signal, err := calculator.CalculateMACD(closes, 12, 26, 9); err == nil {
		if line > signal {
			score += 0.1
		} else {
			score -= 0.1
		}
	}

	if adx > 25 {
		score += 0.05
	}
	if adx > 40 {
		score += 0.05
	}

	score = clamp(score, 0.1, 0.9)

	var desc string
	switch {
	case score > 0.6:
		desc = fmt.Sprintf("BULLISH MOMENTUM (ADX %.0f)", adx)
	case score < 0.4:
		desc = fmt.Sprintf("BEARISH MOMENTUM (ADX %.0f)", adx)
	default:
		desc = fmt.Sprintf("NEUTRAL MOMENTUM (ADX %.0f)", adx)
	}
	return model.IndicatorResult{Name: FamilyMomentum, Description: desc, Score: score}
}

// EvaluateVolume rates the latest volume against its trailing 10-bar mean
// together with the price change over the last two bars.
func EvaluateVolume(series *model.PriceSeries) model.IndicatorResult {
	n := series.Len()
	if n < 10 {
		return degradedResult(FamilyVolume, fmt.Sprintf("insufficient bars for volume (%d < 10)", n))
	}

	vols := series.Volumes()
	closes := series.Closes()

	avg := 0.0
	for _, v := range vols[n-10:] {
		avg += v
	}
	avg /= 10
	if avg == 0 {
		return degradedResult(FamilyVolume, "no volume data")
	}
	if closes[n-2] == 0 {
		return degradedResult(FamilyVolume, "zero reference close")
	}

	ratio := vols[n-1] / avg
	change := (closes[n-1] - closes[n-2]) / closes[n-2] * 100

	var desc string
	var score float64
	switch {
	case ratio > 1.5 && change > 2:
		desc, score = fmt.Sprintf("STRONG VOLUME +%.1f%%", change), 0.8
	case ratio > 1.2 && change > 0:
		desc, score = fmt.Sprintf("GOOD VOLUME +%.1f%%", change), 0.6
	case ratio < 0.8 && change < -2:
		desc, score = fmt.Sprintf("WEAK VOLUME %.1f%%", change), 0.3
	case ratio < 0.6:
		desc, score = "VERY LOW VOLUME", 0.2
	default:
		desc, score = "NORMAL VOLUME", 0.5
	}
	return model.IndicatorResult{Name: FamilyVolume, Description: desc, Score: score}
}

// Standard retracement levels and their roles.
var fibLevels = []struct {
	level float64
	label string
}{
	{0.236, "FIB SUPPORT 23.6%"},
	{0.382, "FIB SUPPORT 38.2%"},
	{0.5, "MID RANGE"},
	{0.618, "FIB RESISTANCE 61.8%"},
	{0.786, "FIB RESISTANCE 78.6%"},
}

// EvaluateRetracement places the current close within the trailing 52-bar
// range and scores proximity to the nearest retracement level: near a
// support is bullish, near a resistance bearish.
func EvaluateRetracement(series *model.PriceSeries) model.IndicatorResult {
	n := series.Len()
	if n < senkouPeriod {
		return degradedResult(FamilyRetracement, fmt.Sprintf("insufficient bars for retracement (%d < %d)", n, senkouPeriod))
	}

	high, err := calculator.HighestHigh(series.Highs(), senkouPeriod)
	if err != nil {
		return degradedResult(FamilyRetracement, err.Error())
	}
	low, err := calculator.LowestLow(series.Lows(), senkouPeriod)
	if err != nil {
		return degradedResult(FamilyRetracement, err.Error())
	}
	if high == low {
		return degradedResult(FamilyRetracement, "degenerate price range")
	}

	pos, err := calculator.RangePosition(series.LastClose(), high, low)
	if err != nil {
		return degradedResult(FamilyRetracement, err.Error())
	}

	closest := fibLevels[0]
	for _, fl := range fibLevels[1:] {
		if math.Abs(fl.level-pos) < math.Abs(closest.level-pos) {
			closest = fl
		}
	}

	score := NeutralScore
	if math.Abs(pos-closest.level) < 0.05 {
		if closest.level >= 0.618 {
			score = 0.3
		} else if closest.level <= 0.382 {
			score = 0.7
		}
	}
	desc := fmt.Sprintf("%s (%.1f%%)", closest.label, pos*100)
	return model.IndicatorResult{Name: FamilyRetracement, Description: desc, Score: score}
}

// EvaluateFundamental rates the ticker's fundamental metrics. A missing
// record degrades to neutral; individual zero-valued metrics are treated
// as unavailable and contribute nothing.
func EvaluateFundamental(fund *model.Fundamentals) model.IndicatorResult {
	if fund == nil {
		return degradedResult(FamilyFundamental, "fundamentals unavailable")
	}

	score := NeutralScore
	if fund.TrailingPE > 10 && fund.TrailingPE < 20 {
		score += 0.1
	} else if fund.TrailingPE > 30 {
		score -= 0.1
	}
	if fund.DividendYield > 0.02 {
		score += 0.1
	}
	if fund.MarketCap > 1e9 {
		score += 0.05
	}
	if fund.ProfitMargin > 0.1 {
		score += 0.1
	}
	score = clamp(score, 0.1, 0.9)

	var desc string
	switch {
	case score > 0.6:
		desc = "SOLID FUNDAMENTALS"
	case score < 0.4:
		desc = "WEAK FUNDAMENTALS"
	default:
		desc = "AVERAGE FUNDAMENTALS"
	}
	return model.IndicatorResult{Name: FamilyFundamental, Description: desc, Score: score}
}
