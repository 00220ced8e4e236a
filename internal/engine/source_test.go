package engine

import (
	"time"

	"vitals/internal/store"
)

// fakeSource is an in-memory MetricSource keyed by ISO day strings.
type fakeSource struct {
	summaries map[string]*store.DailySummary
	rhr       map[string]float64
	hrv       map[string]*store.HRVRecord
	sleep     map[string]*store.SleepRecord
	walks     map[string][]store.Activity
	latest    store.LatestDays

	// errDaily forces DailySummary to fail for specific days, exercising
	// per-date degradation in the history driver.
	errDaily map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		summaries: make(map[string]*store.DailySummary),
		rhr:       make(map[string]float64),
		hrv:       make(map[string]*store.HRVRecord),
		sleep:     make(map[string]*store.SleepRecord),
		walks:     make(map[string][]store.Activity),
		errDaily:  make(map[string]error),
	}
}

func key(day time.Time) string {
	return day.Format("2006-01-02")
}

func (f *fakeSource) DailySummary(day time.Time) (*store.DailySummary, error) {
	if err := f.errDaily[key(day)]; err != nil {
		return nil, err
	}
	return f.summaries[key(day)], nil
}

func (f *fakeSource) DailyRange(from, to time.Time) ([]store.DailySummary, error) {
	var out []store.DailySummary
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if s := f.summaries[key(d)]; s != nil {
			row := *s
			row.Day = key(d)
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeSource) RestingHR(day time.Time) (*float64, error) {
	if v, ok := f.rhr[key(day)]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *fakeSource) RestingHRAverage(from, to time.Time) (*float64, error) {
	return avgOver(from, to, func(d time.Time) (float64, bool) {
		v, ok := f.rhr[key(d)]
		return v, ok
	})
}

func (f *fakeSource) RestingHRRange(from, to time.Time) (map[string]float64, error) {
	return rangeOver(from, to, func(d time.Time) (float64, bool) {
		v, ok := f.rhr[key(d)]
		return v, ok
	})
}

func (f *fakeSource) HRV(day time.Time) (*store.HRVRecord, error) {
	return f.hrv[key(day)], nil
}

func (f *fakeSource) HRVAverage(from, to time.Time) (*float64, error) {
	return avgOver(from, to, f.hrvOn)
}

func (f *fakeSource) HRVRange(from, to time.Time) (map[string]float64, error) {
	return rangeOver(from, to, f.hrvOn)
}

func (f *fakeSource) hrvOn(d time.Time) (float64, bool) {
	if rec := f.hrv[key(d)]; rec != nil && rec.LastNightAvg != nil {
		return *rec.LastNightAvg, true
	}
	return 0, false
}

func (f *fakeSource) StressAverage(from, to time.Time) (*float64, error) {
	return avgOver(from, to, func(d time.Time) (float64, bool) {
		if s := f.summaries[key(d)]; s != nil && s.StressAvg != nil {
			return *s.StressAvg, true
		}
		return 0, false
	})
}

func (f *fakeSource) WalkingActivities(day time.Time) ([]store.Activity, error) {
	return f.walks[key(day)], nil
}

func (f *fakeSource) Sleep(day time.Time) (*store.SleepRecord, error) {
	return f.sleep[key(day)], nil
}

func (f *fakeSource) LatestDays() (*store.LatestDays, error) {
	latest := f.latest
	return &latest, nil
}

func avgOver(from, to time.Time, value func(time.Time) (float64, bool)) (*float64, error) {
	var sum float64
	var count int
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if v, ok := value(d); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := sum / float64(count)
	return &avg, nil
}

func rangeOver(from, to time.Time, value func(time.Time) (float64, bool)) (map[string]float64, error) {
	out := make(map[string]float64)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if v, ok := value(d); ok {
			out[key(d)] = v
		}
	}
	return out, nil
}

// Test fixture helpers.

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }

func newTestEngine(source MetricSource) *Engine {
	e, err := New(source, DefaultBaselines())
	if err != nil {
		panic(err)
	}
	return e
}
