package engine

import (
	"errors"
	"testing"
)

func TestHistoryIteratesEveryDay(t *testing.T) {
	src := newFakeSource()
	src.summaries["2025-06-02"] = cleanSummary() // other days are GRAY
	e := newTestEngine(src)

	points, err := e.History(day("2025-06-01"), day("2025-06-03"))
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("History() returned %d points, want 3", len(points))
	}

	wantStatus := []Status{StatusGray, StatusGreen, StatusGray}
	for i, p := range points {
		if p.Verdict.Status != wantStatus[i] {
			t.Errorf("points[%d].Status = %v, want %v", i, p.Verdict.Status, wantStatus[i])
		}
		if p.Score == nil {
			t.Errorf("points[%d].Score = nil, want a score even on gray days", i)
		}
		if p.Degraded {
			t.Errorf("points[%d] marked degraded without a failure", i)
		}
	}
}

// A storage failure on one date degrades that point to a neutral GREEN
// verdict and marks it, without aborting the rest of the range.
func TestHistoryIsolatesPerDateFailures(t *testing.T) {
	src := newFakeSource()
	src.summaries["2025-06-01"] = cleanSummary()
	src.errDaily["2025-06-02"] = errors.New("malformed row")
	src.summaries["2025-06-03"] = cleanSummary()
	e := newTestEngine(src)

	points, err := e.History(day("2025-06-01"), day("2025-06-03"))
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("History() returned %d points, want 3", len(points))
	}

	bad := points[1]
	if !bad.Degraded {
		t.Error("failed date should be marked degraded")
	}
	if bad.Verdict.Status != StatusGreen {
		t.Errorf("failed date Status = %v, want neutral GREEN fallback", bad.Verdict.Status)
	}

	if points[0].Degraded || points[2].Degraded {
		t.Error("healthy neighbors must not be marked degraded")
	}
}

func TestHistoryRejectsReversedRange(t *testing.T) {
	e := newTestEngine(newFakeSource())

	_, err := e.History(day("2025-06-03"), day("2025-06-01"))
	if !errors.Is(err, ErrBadRange) {
		t.Errorf("History() error = %v, want ErrBadRange", err)
	}
}

func TestFreshness(t *testing.T) {
	now := day("2025-06-10")

	tests := []struct {
		name                string
		summary, hrv, sleep *string
		wantFresh           bool
		wantSleepToday      bool
	}{
		{
			name:    "all current",
			summary: strPtr("2025-06-10"), hrv: strPtr("2025-06-09"), sleep: strPtr("2025-06-10"),
			wantFresh: true, wantSleepToday: true,
		},
		{
			name:    "stale hrv",
			summary: strPtr("2025-06-10"), hrv: strPtr("2025-06-07"), sleep: strPtr("2025-06-10"),
			wantFresh: false, wantSleepToday: true,
		},
		{
			name:    "sleep from yesterday is not enough",
			summary: strPtr("2025-06-10"), hrv: strPtr("2025-06-10"), sleep: strPtr("2025-06-09"),
			wantFresh: false, wantSleepToday: false,
		},
		{
			name:      "empty tables",
			wantFresh: false, wantSleepToday: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.latest.Summary = tt.summary
			src.latest.HRV = tt.hrv
			src.latest.Sleep = tt.sleep
			e := newTestEngine(src)

			got, err := e.Freshness(now)
			if err != nil {
				t.Fatalf("Freshness() error = %v", err)
			}
			if got.Fresh != tt.wantFresh {
				t.Errorf("Fresh = %v, want %v", got.Fresh, tt.wantFresh)
			}
			if got.SleepToday != tt.wantSleepToday {
				t.Errorf("SleepToday = %v, want %v", got.SleepToday, tt.wantSleepToday)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
