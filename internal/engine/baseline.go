package engine

import "errors"

// Baselines are the reference constants every verdict and score is measured
// against. They were derived once, offline, from a known-healthy historical
// window ("golden era") and are immutable at runtime: the engine never
// refits them from data.
type Baselines struct {
	RHRMean        float64 `json:"rhr_mean"`        // bpm
	RHRSD          float64 `json:"rhr_sd"`          // bpm
	StressMean     float64 `json:"stress_mean"`     // device stress units
	CostMean       float64 `json:"cost_mean"`       // active kcal per 1,000 steps
	HRVFallback    float64 `json:"hrv_fallback"`    // ms, used when no 7-day HRV exists
	StressFallback float64 `json:"stress_fallback"` // used when no stress rows exist
}

// DefaultBaselines returns the golden-era constants (Mar-May 2025 reference
// window).
func DefaultBaselines() Baselines {
	return Baselines{
		RHRMean:        50.61,
		RHRSD:          1.78,
		StressMean:     35.77,
		CostMean:       29.0,
		HRVFallback:    51.45,
		StressFallback: 30,
	}
}

// Validate rejects baselines that would break the scorer. Every RHR z-score
// divides by RHRSD, so a non-positive value is corrupt configuration, not a
// data gap.
func (b Baselines) Validate() error {
	if b.RHRSD <= 0 {
		return errors.New("rhr_sd must be positive")
	}
	return nil
}
