package sortbench

import (
	"fmt"
	"time"
)

// BailReason identifies which trigger abandoned an (algorithm, scenario)
// pair.
type BailReason string

const (
	BailNone           BailReason = "NONE"            // keep testing
	BailTimeCap        BailReason = "TIME_CAP"        // average exceeded the hard cap
	BailQuadraticTrend BailReason = "QUADRATIC_TREND" // time grew much faster than size
)

// BailDecision is the policy's verdict after one trial, with a
// human-readable explanation for the progress log.
type BailDecision struct {
	Abandon bool
	Reason  BailReason
	Detail  string
}

// TrialPoint is the most recent trial of a pair, kept for trend comparison.
type TrialPoint struct {
	Size int
	Time time.Duration
}

// BailOutPolicy decides, after every measurement, whether to abandon
// further, larger-size testing of an (algorithm, scenario) pair.
//
// Two independent triggers, either sufficient:
//
//   - Hard time cap: the average trial time exceeded MaxExecutionTime.
//     Prevents the whole suite from being dominated by pathologically slow
//     combinations.
//   - Quadratic trend: between two consecutive trials, time grew by a much
//     larger factor than size did. An algorithm scaling super-linearly is
//     not worth testing at larger sizes.
//
// The cap is checked first and short-circuits. The trend check needs a
// previous trial and an average above MinTimeForDetection, the noise floor
// below which timing jitter makes the ratio unreliable.
//
// All three knobs are policy choices, not derived values. Historical
// configurations of QuadraticThreshold ranged from 4 to 500 with very
// different sensitivity, so the value is configuration, never a constant in
// the decision logic.
type BailOutPolicy struct {
	MaxExecutionTime    time.Duration
	MinTimeForDetection time.Duration
	QuadraticThreshold  float64
}

// DefaultBailOutPolicy returns the standard thresholds: a 75ms cap, a 10ms
// detection floor, and the sensitive trend threshold of 4.
func DefaultBailOutPolicy() BailOutPolicy {
	return BailOutPolicy{
		MaxExecutionTime:    75 * time.Millisecond,
		MinTimeForDetection: 10 * time.Millisecond,
		QuadraticThreshold:  4.0,
	}
}

// ShouldAbandon applies the policy to the trial just measured.
// prev is the pair's immediately preceding (smaller-size) trial, nil when
// this is the pair's first.
func (p BailOutPolicy) ShouldAbandon(prev *TrialPoint, size int, avg time.Duration) BailDecision {
	if avg > p.MaxExecutionTime {
		return BailDecision{
			Abandon: true,
			Reason:  BailTimeCap,
			Detail: fmt.Sprintf("average %v exceeds cap %v at size %d",
				avg, p.MaxExecutionTime, size),
		}
	}

	if prev == nil || avg <= p.MinTimeForDetection {
		return BailDecision{Reason: BailNone}
	}
	if prev.Size <= 0 || prev.Time <= 0 {
		return BailDecision{Reason: BailNone}
	}

	sizeRatio := float64(size) / float64(prev.Size)
	timeRatio := float64(avg) / float64(prev.Time)

	// Both must have grown for the ratio to mean anything.
	if sizeRatio <= 1 || timeRatio <= 1 {
		return BailDecision{Reason: BailNone}
	}

	degradation := timeRatio / sizeRatio
	if degradation >= p.QuadraticThreshold {
		return BailDecision{
			Abandon: true,
			Reason:  BailQuadraticTrend,
			Detail: fmt.Sprintf(
				"degradation %.2f reached threshold %.2f (size %d->%d grew %.2fx, time %v->%v grew %.2fx)",
				degradation, p.QuadraticThreshold,
				prev.Size, size, sizeRatio,
				prev.Time, avg, timeRatio),
		}
	}

	return BailDecision{Reason: BailNone}
}
