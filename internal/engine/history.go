package engine

import (
	"errors"
	"time"
)

// ErrBadRange is returned when a history range ends before it starts.
var ErrBadRange = errors.New("history range ends before it starts")

// HistoryPoint is one day of a multi-day report. Degraded marks days where a
// storage failure was papered over: the verdict fell back to neutral GREEN
// or the score is missing. Charts should render such days, but honestly.
type HistoryPoint struct {
	Day      time.Time
	Verdict  *Verdict
	Score    *RecoveryScore
	Degraded bool
}

// History evaluates the verdict and recovery score for every day in
// start..end inclusive. Failures are isolated per day so one corrupt date
// cannot abort a multi-week report: the day degrades to a neutral GREEN
// verdict and a nil score instead.
func (e *Engine) History(start, end time.Time) ([]HistoryPoint, error) {
	if end.Before(start) {
		return nil, ErrBadRange
	}

	var points []HistoryPoint
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		p := HistoryPoint{Day: d}

		verdict, err := e.Evaluate(d)
		if err != nil {
			verdict = &Verdict{Day: d, Status: StatusGreen, TargetSteps: targetStepsGreen}
			p.Degraded = true
		}
		p.Verdict = verdict

		score, err := e.Score(d, verdict.Status)
		if err != nil {
			p.Degraded = true
		} else {
			p.Score = score
		}

		points = append(points, p)
	}
	return points, nil
}
