package engine

import (
	"fmt"
	"math"
	"time"
)

// RHRSubScore is the resting-heart-rate component of the recovery score.
type RHRSubScore struct {
	Avg7d  float64 // bpm, trailing 7-day mean
	ZScore float64 // vs golden-era mean/SD
	Score  float64 // 0-100
}

// HRVSubScore is the heart-rate-variability component.
type HRVSubScore struct {
	LastNight float64 // ms
	Avg7d     float64 // ms
	Ratio     float64 // last night / 7-day
	Score     float64 // 0-100
}

// StressSubScore is the stress component.
type StressSubScore struct {
	Raw      float64 // device score, 7-day mean
	Adjusted float64 // after the fixed correction factor
	Score    float64 // 0-100
}

// RecoveryScore is the continuous 0-100 recovery index for one day, plus the
// per-signal breakdown. VetoMessage is non-empty when the verdict overrode
// or capped the composite.
type RecoveryScore struct {
	Day         time.Time
	Score       float64
	VetoMessage string
	RHR         RHRSubScore
	HRV         HRVSubScore
	Stress      StressSubScore
}

// Vetoed reports whether the verdict overrode or capped the composite.
func (r *RecoveryScore) Vetoed() bool {
	return r.VetoMessage != ""
}

// Score computes the recovery index over the trailing 7-day window ending at
// day. The verdict status is a caller-supplied input, not recomputed here:
// callers wanting the veto must evaluate first and pass the status through.
// Missing signals fall back to baseline constants, so a numeric result is
// always produced.
func (e *Engine) Score(day time.Time, status Status) (*RecoveryScore, error) {
	from := day.AddDate(0, 0, -scoreWindowDays)

	// RHR: trailing mean, baseline when the window is empty.
	rhrAvg, err := e.source.RestingHRAverage(from, day)
	if err != nil {
		return nil, fmt.Errorf("averaging resting hr: %w", err)
	}
	rhr := e.base.RHRMean
	if rhrAvg != nil {
		rhr = *rhrAvg
	}

	// HRV: last night vs the 7-day trend. Prefer the device's own weekly
	// average, compute one otherwise, fall back to the golden-era constant.
	hrvRec, err := e.source.HRV(day)
	if err != nil {
		return nil, fmt.Errorf("loading hrv: %w", err)
	}
	hrv7d := e.base.HRVFallback
	if hrvRec != nil && hrvRec.WeeklyAvg != nil && *hrvRec.WeeklyAvg > 0 {
		hrv7d = *hrvRec.WeeklyAvg
	} else {
		hrvAvg, err := e.source.HRVAverage(from, day)
		if err != nil {
			return nil, fmt.Errorf("averaging hrv: %w", err)
		}
		if hrvAvg != nil {
			hrv7d = *hrvAvg
		}
	}
	// No reading for last night reads as neutral: match the trend.
	lastNight := hrv7d
	if hrvRec != nil && hrvRec.LastNightAvg != nil {
		lastNight = *hrvRec.LastNightAvg
	}

	// Stress: trailing mean, fixed fallback when the window is empty.
	stressAvg, err := e.source.StressAverage(from, day)
	if err != nil {
		return nil, fmt.Errorf("averaging stress: %w", err)
	}
	rawStress := e.base.StressFallback
	if stressAvg != nil {
		rawStress = *stressAvg
	}

	z := (rhr - e.base.RHRMean) / e.base.RHRSD

	ratio := 1.0
	if hrv7d > 0 {
		ratio = lastNight / hrv7d
	}

	adjStress := rawStress * stressCorrection

	result := &RecoveryScore{
		Day: day,
		RHR: RHRSubScore{Avg7d: rhr, ZScore: z, Score: rhrSubScore(z)},
		HRV: HRVSubScore{LastNight: lastNight, Avg7d: hrv7d, Ratio: ratio, Score: hrvSubScore(ratio)},
		Stress: StressSubScore{
			Raw:      rawStress,
			Adjusted: adjStress,
			Score:    stressSubScore(adjStress, e.base.StressMean),
		},
	}

	composite := result.RHR.Score*weightRHR + result.HRV.Score*weightHRV + result.Stress.Score*weightStress
	result.Score = round1(composite)

	// Veto protocol: the categorical verdict can override the continuous
	// score, but never the other way around.
	switch status {
	case StatusRed:
		result.Score = vetoRedScore
		result.VetoMessage = "Score vetoed: system crash detected."
	case StatusYellow:
		if result.Score > vetoYellowCap {
			result.Score = vetoYellowCap
			result.VetoMessage = "Score capped at 75 due to caution status."
		}
	}

	return result, nil
}

// rhrSubScore maps an RHR z-score onto 0-100 with a three-segment
// piecewise-linear curve: a narrow healthy band, a soft warning band and a
// hard penalty band. Deliberately not a smooth Gaussian.
func rhrSubScore(z float64) float64 {
	absZ := math.Abs(z)
	switch {
	case absZ <= 0.5:
		return 100
	case absZ <= 1.5:
		return 100 - (absZ-0.5)*30
	default:
		return math.Max(0, 70-(absZ-1.5)*50)
	}
}

// hrvSubScore scores last night's HRV against the 7-day trend. Both
// directions away from the band are penalized: a spike above baseline can
// mean parasympathetic saturation, not better recovery. A deficit is
// penalized twice as steeply as an excess.
func hrvSubScore(ratio float64) float64 {
	switch {
	case ratio >= 0.9 && ratio <= 1.2:
		return 100
	case ratio > 1.2:
		return math.Max(0, 100-(ratio-1.2)*250)
	default:
		return math.Max(0, 100-(0.9-ratio)*500)
	}
}

// stressSubScore penalizes corrected stress linearly above the baseline
// mean.
func stressSubScore(adjusted, mean float64) float64 {
	if adjusted <= mean {
		return 100
	}
	return math.Max(0, 100-(adjusted-mean)*2)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
