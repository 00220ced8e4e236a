package engine

// Gate thresholds. All empirically fixed constants from the golden-era
// sensitivity analysis, not learned from data.
const (
	// Gate 1: autonomic engine (RHR relative to baseline mean).
	rhrHighDelta   = 3.0 // bpm above mean -> sympathetic stress
	rhrFreezeDelta = 2.5 // bpm below mean -> metabolic freeze

	// Gate 2: overnight body battery recharge floor (percent).
	batteryFloor = 50.0

	// Gate 3: lag-2 predictor. Exertion is assumed to surface as fatigue
	// 48 hours later.
	lagStepCap        = 5000   // steps two days prior
	lagStepBaseline   = 4000.0 // composite risk divisor
	lagStressBaseline = 35.0   // composite risk divisor
	lagRiskThreshold  = 1.5
	lagMaxHRCap       = 110 // bpm two days prior

	// Gate 4: physiological cost (active kcal per 1,000 steps).
	costWarnFactor = 1.2 // of baseline cost

	// Gate 5: walking cadence below this suggests a shuffle, not a stride.
	shuffleCadence = 95.0 // steps/min
)

// Recommended step ceilings per verdict.
const (
	targetStepsRed    = 1500
	targetStepsYellow = 3000
	targetStepsGreen  = 4500
)

// Recovery scorer weights and veto values.
const (
	weightRHR    = 0.4
	weightHRV    = 0.4
	weightStress = 0.2

	stressCorrection = 1.15 // fixed age/device correction on raw stress

	vetoRedScore  = 40.0
	vetoYellowCap = 75.0

	scoreWindowDays = 7
)

// Trend aggregator bands for the daily efficiency-cost series.
const (
	costBandGreen = 30.0 // below: green
	costBandRed   = 50.0 // above: red
)
