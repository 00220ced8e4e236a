package engine

import (
	"fmt"
	"time"
)

// Status is the categorical daily verdict.
type Status string

const (
	StatusGreen  Status = "GREEN"
	StatusYellow Status = "YELLOW"
	StatusRed    Status = "RED"
	StatusGray   Status = "GRAY" // no data for the day
)

// Severity separates hard stop signals from cautions.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityRed
)

// FlagKind identifies which gate fired. Downstream logic matches on the
// kind, never on rendered text.
type FlagKind int

const (
	FlagHighRHR FlagKind = iota
	FlagMetabolicFreeze
	FlagPoorRecharge
	FlagLag2HighLoad
	FlagLag2Risk
	FlagLag2HRSpike
	FlagHighCost
	FlagInefficientMovement
)

// Flag is one fired gate: a kind, its severity, the numeric value that
// tripped it, and the day the underlying reading belongs to (two days prior
// for the lag-2 flags, the prior day for movement efficiency).
type Flag struct {
	Kind     FlagKind
	Severity Severity
	Value    float64
	Day      time.Time
}

// Message renders the flag for humans. Only the presentation layer should
// care about this string.
func (f Flag) Message() string {
	switch f.Kind {
	case FlagHighRHR:
		return fmt.Sprintf("High RHR (+%.1f)", f.Value)
	case FlagMetabolicFreeze:
		return fmt.Sprintf("Metabolic Freeze Detected (RHR %.0f)", f.Value)
	case FlagPoorRecharge:
		return fmt.Sprintf("Poor Recharge (Max %.0f%%)", f.Value)
	case FlagLag2HighLoad:
		return fmt.Sprintf("Lag 2 Impact (High Load on %s)", f.Day.Format("2006-01-02"))
	case FlagLag2Risk:
		return fmt.Sprintf("Lag 2 Risk Score %.2f", f.Value)
	case FlagLag2HRSpike:
		return fmt.Sprintf("Lag 2 HR Spike (%s)", f.Day.Format("2006-01-02"))
	case FlagHighCost:
		return fmt.Sprintf("High Physiological Cost (%d)", int(f.Value))
	case FlagInefficientMovement:
		return "Inefficient Movement (Shuffle)"
	}
	return fmt.Sprintf("Unknown Flag (%d)", f.Kind)
}
