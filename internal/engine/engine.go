// Package engine turns per-day wearable rows into a categorical risk verdict
// and a continuous recovery score. Both outputs are pure functions of the
// metric repository plus a fixed set of baseline constants; nothing here
// writes to storage or caches results between calls.
package engine

import (
	"fmt"
	"time"

	"vitals/internal/store"
)

// MetricSource is the read contract the engine needs from the metric
// repository. Absent rows come back as nil values, never errors; errors are
// reserved for genuine storage failures.
type MetricSource interface {
	DailySummary(day time.Time) (*store.DailySummary, error)
	DailyRange(from, to time.Time) ([]store.DailySummary, error)
	RestingHR(day time.Time) (*float64, error)
	RestingHRAverage(from, to time.Time) (*float64, error)
	RestingHRRange(from, to time.Time) (map[string]float64, error)
	HRV(day time.Time) (*store.HRVRecord, error)
	HRVAverage(from, to time.Time) (*float64, error)
	HRVRange(from, to time.Time) (map[string]float64, error)
	StressAverage(from, to time.Time) (*float64, error)
	WalkingActivities(day time.Time) ([]store.Activity, error)
	Sleep(day time.Time) (*store.SleepRecord, error)
	LatestDays() (*store.LatestDays, error)
}

// Engine evaluates risk verdicts, recovery scores and trends over a
// MetricSource. Safe for concurrent use: it holds no mutable state.
type Engine struct {
	source MetricSource
	base   Baselines
}

// New creates an Engine. The baselines are validated once here; a zero
// standard deviation would poison every downstream z-score, so it is the one
// configuration problem treated as fatal.
func New(source MetricSource, base Baselines) (*Engine, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid baselines: %w", err)
	}
	return &Engine{source: source, base: base}, nil
}

// Baselines returns the reference constants the engine was built with.
func (e *Engine) Baselines() Baselines {
	return e.base
}

// SleepHours returns last night's sleep duration in fractional hours for the
// given day, 0 when absent or unparsable.
func (e *Engine) SleepHours(day time.Time) (float64, error) {
	rec, err := e.source.Sleep(day)
	if err != nil {
		return 0, fmt.Errorf("loading sleep: %w", err)
	}
	return rec.Hours(), nil
}
