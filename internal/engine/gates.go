package engine

import (
	"fmt"
	"strings"
	"time"

	"vitals/internal/store"
)

// ConsultedMetrics are the raw readings the verdict was based on, surfaced
// for display alongside the flags.
type ConsultedMetrics struct {
	RestingHR   *float64
	BodyBattery *float64
	PhysioCost  float64 // 0 when not computable
}

// Verdict is the categorical daily risk assessment.
type Verdict struct {
	Day         time.Time
	Status      Status
	Flags       []Flag // in gate order
	TargetSteps int    // recommended step ceiling
	Metrics     ConsultedMetrics
}

// RedFlags returns the flags with red severity, in gate order.
func (v *Verdict) RedFlags() []Flag {
	return v.bySeverity(SeverityRed)
}

// Warnings returns the flags with warning severity, in gate order.
func (v *Verdict) Warnings() []Flag {
	return v.bySeverity(SeverityWarning)
}

func (v *Verdict) bySeverity(sev Severity) []Flag {
	var out []Flag
	for _, f := range v.Flags {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Reason renders the verdict justification for humans.
func (v *Verdict) Reason() string {
	switch v.Status {
	case StatusGray:
		return "No Data"
	case StatusRed:
		return "STOP. " + joinMessages(v.RedFlags())
	case StatusYellow:
		return "CAUTION. " + joinMessages(v.Warnings())
	}
	return "Go for it. Maintain pacing."
}

func joinMessages(flags []Flag) string {
	msgs := make([]string, len(flags))
	for i, f := range flags {
		msgs[i] = f.Message()
	}
	return strings.Join(msgs, ", ")
}

// gateInput is everything a gate may consult: the target day's summary, its
// T-2 neighbor and the prior day's walking activities. Missing neighbors are
// nil; gates skip rather than fail.
type gateInput struct {
	day        time.Time
	today      *store.DailySummary
	t2         *store.DailySummary
	priorWalks []store.Activity
	base       Baselines
}

// gate is one entry in the rule cascade.
type gate struct {
	name string
	run  func(in gateInput) []Flag
}

// riskGates is the ordered rule cascade. Every gate runs on every evaluation
// so the verdict reports all concurrent contributors; adding a gate is a new
// table entry, not a new code path.
var riskGates = []gate{
	{"autonomic-engine", gateAutonomicEngine},
	{"battery", gateBattery},
	{"lag-2", gateLag2},
	{"physio-cost", gatePhysioCost},
	{"movement-efficiency", gateMovementEfficiency},
}

// Evaluate runs the rule cascade for one day and composes the verdict.
// A day with no summary row yields GRAY with a zero step ceiling; partial
// neighbor data degrades to fewer flags, never to an error.
func (e *Engine) Evaluate(day time.Time) (*Verdict, error) {
	today, err := e.source.DailySummary(day)
	if err != nil {
		return nil, fmt.Errorf("loading daily summary: %w", err)
	}
	if today == nil {
		return &Verdict{Day: day, Status: StatusGray, TargetSteps: 0}, nil
	}

	t2, err := e.source.DailySummary(day.AddDate(0, 0, -2))
	if err != nil {
		return nil, fmt.Errorf("loading lag-2 summary: %w", err)
	}

	// The activity database is a separate file and is allowed to be missing
	// or mid-import; that only costs us the movement-efficiency gate.
	priorWalks, err := e.source.WalkingActivities(day.AddDate(0, 0, -1))
	if err != nil {
		priorWalks = nil
	}

	in := gateInput{day: day, today: today, t2: t2, priorWalks: priorWalks, base: e.base}

	var flags []Flag
	for _, g := range riskGates {
		flags = append(flags, g.run(in)...)
	}

	v := &Verdict{
		Day:   day,
		Flags: flags,
		Metrics: ConsultedMetrics{
			RestingHR:   today.RestingHR,
			BodyBattery: today.BodyBatteryCharged,
			PhysioCost:  physioCost(today),
		},
	}

	switch {
	case len(v.RedFlags()) > 0:
		v.Status = StatusRed
		v.TargetSteps = targetStepsRed
	case len(v.Warnings()) > 0:
		v.Status = StatusYellow
		v.TargetSteps = targetStepsYellow
	default:
		v.Status = StatusGreen
		v.TargetSteps = targetStepsGreen
	}
	return v, nil
}

// gateAutonomicEngine flags RHR outside the healthy band around the baseline
// mean. High means sympathetic stress; unusually low means metabolic freeze.
// The two branches are mutually exclusive.
func gateAutonomicEngine(in gateInput) []Flag {
	rhr := in.today.RestingHR
	if rhr == nil || *rhr == 0 {
		return nil
	}
	switch {
	case *rhr > in.base.RHRMean+rhrHighDelta:
		return []Flag{{Kind: FlagHighRHR, Severity: SeverityRed, Value: *rhr - in.base.RHRMean, Day: in.day}}
	case *rhr < in.base.RHRMean-rhrFreezeDelta:
		return []Flag{{Kind: FlagMetabolicFreeze, Severity: SeverityRed, Value: *rhr, Day: in.day}}
	}
	return nil
}

// gateBattery flags an overnight recharge below the floor.
func gateBattery(in gateInput) []Flag {
	bb := in.today.BodyBatteryCharged
	if bb == nil || *bb == 0 {
		return nil
	}
	if *bb < batteryFloor {
		return []Flag{{Kind: FlagPoorRecharge, Severity: SeverityRed, Value: *bb, Day: in.day}}
	}
	return nil
}

// gateLag2 inspects the record exactly two days prior. Step load past the
// cap is flagged outright; otherwise a composite of step and stress load is
// checked. A T-2 max-HR spike is an independent signal. No T-2 row means no
// flags.
func gateLag2(in gateInput) []Flag {
	if in.t2 == nil {
		return nil
	}
	t2Day := in.day.AddDate(0, 0, -2)

	var flags []Flag
	if in.t2.Steps != nil && *in.t2.Steps > lagStepCap {
		flags = append(flags, Flag{Kind: FlagLag2HighLoad, Severity: SeverityWarning, Value: float64(*in.t2.Steps), Day: t2Day})
	} else {
		var risk float64
		if in.t2.Steps != nil {
			risk += float64(*in.t2.Steps) / lagStepBaseline
		}
		if in.t2.StressAvg != nil {
			risk += *in.t2.StressAvg / lagStressBaseline
		}
		if risk > lagRiskThreshold {
			flags = append(flags, Flag{Kind: FlagLag2Risk, Severity: SeverityWarning, Value: risk, Day: t2Day})
		}
	}

	if in.t2.MaxHR != nil && *in.t2.MaxHR > lagMaxHRCap {
		flags = append(flags, Flag{Kind: FlagLag2HRSpike, Severity: SeverityWarning, Value: float64(*in.t2.MaxHR), Day: t2Day})
	}
	return flags
}

// gatePhysioCost flags a day whose movement cost ran more than 20% above the
// baseline. Cost is only defined when steps were actually taken.
func gatePhysioCost(in gateInput) []Flag {
	cost := physioCost(in.today)
	if cost == 0 {
		return nil
	}
	if cost > in.base.CostMean*costWarnFactor {
		return []Flag{{Kind: FlagHighCost, Severity: SeverityWarning, Value: cost, Day: in.day}}
	}
	return nil
}

// gateMovementEfficiency scans the prior day's walks for a shuffling
// cadence. The first match is enough.
func gateMovementEfficiency(in gateInput) []Flag {
	for _, a := range in.priorWalks {
		if a.AvgCadence != nil && *a.AvgCadence > 0 && *a.AvgCadence < shuffleCadence {
			return []Flag{{Kind: FlagInefficientMovement, Severity: SeverityWarning, Value: *a.AvgCadence, Day: in.day.AddDate(0, 0, -1)}}
		}
	}
	return nil
}

// physioCost computes active calories per 1,000 steps, the movement
// efficiency proxy. Returns 0 when steps or calories are missing.
func physioCost(d *store.DailySummary) float64 {
	if d == nil || d.Steps == nil || *d.Steps <= 0 || d.ActiveCalories == nil {
		return 0
	}
	return *d.ActiveCalories / float64(*d.Steps) * 1000
}
