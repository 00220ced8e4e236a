package engine

import (
	"fmt"
	"sort"
	"time"

	"vitals/internal/store"
)

// SignalTrend is one signal's current value plus its short- and
// medium-horizon movement.
type SignalTrend struct {
	Value   float64 // at the target day, 0 when absent
	Delta3d float64 // value(day) - value(day-3), 0 when either endpoint is absent
	Delta7d float64 // mean of newest 3 rows - mean of oldest 3 rows, 0 below 6 rows
}

// CostPoint is one day of the efficiency-cost series with its band.
type CostPoint struct {
	Day  string
	Cost float64
	Band Status
}

// TrendReport carries per-signal deltas and the recent cost series for
// presentation. It is independent of the verdict and the veto.
type TrendReport struct {
	Day     time.Time
	RHR     SignalTrend
	Battery SignalTrend
	Stress  SignalTrend
	HRV     SignalTrend
	Cost    []CostPoint // up to 3 most recent days, oldest first
}

type seriesPoint struct {
	day   string
	value float64
}

// Trends computes short- and medium-horizon deltas for RHR, body battery,
// stress and HRV over a lookback window ending at day, plus the recent
// efficiency-cost series. lookbackDays defaults to 7.
func (e *Engine) Trends(day time.Time, lookbackDays int) (*TrendReport, error) {
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	from := day.AddDate(0, 0, -(lookbackDays - 1))

	summaries, err := e.source.DailyRange(from, day)
	if err != nil {
		return nil, fmt.Errorf("loading daily range: %w", err)
	}
	rhrs, err := e.source.RestingHRRange(from, day)
	if err != nil {
		return nil, fmt.Errorf("loading resting hr range: %w", err)
	}
	hrvs, err := e.source.HRVRange(from, day)
	if err != nil {
		return nil, fmt.Errorf("loading hrv range: %w", err)
	}

	var battery, stress []seriesPoint
	for _, s := range summaries {
		if s.BodyBatteryCharged != nil {
			battery = append(battery, seriesPoint{s.Day, *s.BodyBatteryCharged})
		}
		if s.StressAvg != nil {
			stress = append(stress, seriesPoint{s.Day, *s.StressAvg})
		}
	}

	report := &TrendReport{
		Day:     day,
		RHR:     signalTrend(mapSeries(rhrs), day),
		Battery: signalTrend(battery, day),
		Stress:  signalTrend(stress, day),
		HRV:     signalTrend(mapSeries(hrvs), day),
		Cost:    costSeries(summaries),
	}
	return report, nil
}

// DailySeries holds raw day-ordered signal values for sparkline rendering.
// Gap days are skipped, so the two series may differ in length.
type DailySeries struct {
	Steps []float64
	RHR   []float64
}

// DailySeries returns the steps and resting HR series over a lookback window
// ending at day. lookbackDays defaults to 14.
func (e *Engine) DailySeries(day time.Time, lookbackDays int) (*DailySeries, error) {
	if lookbackDays <= 0 {
		lookbackDays = 14
	}
	from := day.AddDate(0, 0, -(lookbackDays - 1))

	summaries, err := e.source.DailyRange(from, day)
	if err != nil {
		return nil, fmt.Errorf("loading daily range: %w", err)
	}
	rhrs, err := e.source.RestingHRRange(from, day)
	if err != nil {
		return nil, fmt.Errorf("loading resting hr range: %w", err)
	}

	series := &DailySeries{}
	for _, s := range summaries {
		if s.Steps != nil {
			series.Steps = append(series.Steps, float64(*s.Steps))
		}
	}
	for _, p := range mapSeries(rhrs) {
		series.RHR = append(series.RHR, p.value)
	}
	return series, nil
}

// mapSeries converts a day-keyed map into a day-ordered series.
func mapSeries(values map[string]float64) []seriesPoint {
	days := make([]string, 0, len(values))
	for d := range values {
		days = append(days, d)
	}
	sort.Strings(days)

	series := make([]seriesPoint, len(days))
	for i, d := range days {
		series[i] = seriesPoint{d, values[d]}
	}
	return series
}

// signalTrend derives the current value and both deltas from a day-ordered
// series. Missing endpoints degrade the corresponding delta to zero rather
// than failing.
func signalTrend(series []seriesPoint, day time.Time) SignalTrend {
	byDay := make(map[string]float64, len(series))
	for _, p := range series {
		byDay[p.day] = p.value
	}

	var t SignalTrend
	target, haveTarget := byDay[day.Format("2006-01-02")]
	if haveTarget {
		t.Value = target
	}

	if prior, ok := byDay[day.AddDate(0, 0, -3).Format("2006-01-02")]; ok && haveTarget {
		t.Delta3d = target - prior
	}

	if len(series) >= 6 {
		newest := meanOf(series[len(series)-3:])
		oldest := meanOf(series[:3])
		t.Delta7d = newest - oldest
	}
	return t
}

func meanOf(points []seriesPoint) float64 {
	var sum float64
	for _, p := range points {
		sum += p.value
	}
	return sum / float64(len(points))
}

// costSeries computes the daily efficiency cost for the most recent 3 days
// that have step data, banded for display.
func costSeries(summaries []store.DailySummary) []CostPoint {
	var points []CostPoint
	for i := len(summaries) - 1; i >= 0 && len(points) < 3; i-- {
		cost := physioCost(&summaries[i])
		if cost == 0 {
			continue
		}
		points = append(points, CostPoint{Day: summaries[i].Day, Cost: cost, Band: costBand(cost)})
	}
	// Collected newest-first; present oldest-first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

func costBand(cost float64) Status {
	switch {
	case cost < costBandGreen:
		return StatusGreen
	case cost > costBandRed:
		return StatusRed
	default:
		return StatusYellow
	}
}
