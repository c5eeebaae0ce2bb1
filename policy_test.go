package sortbench

import (
	"testing"
	"time"
)

// TestShouldAbandon_HardCap verifies the cap triggers regardless of history.
func TestShouldAbandon_HardCap(t *testing.T) {
	p := DefaultBailOutPolicy()

	d := p.ShouldAbandon(nil, 100, p.MaxExecutionTime+time.Millisecond)
	if !d.Abandon || d.Reason != BailTimeCap {
		t.Fatalf("expected time-cap abandonment, got %+v", d)
	}

	// Same verdict with history present: the cap short-circuits.
	prev := &TrialPoint{Size: 50, Time: time.Millisecond}
	d = p.ShouldAbandon(prev, 100, p.MaxExecutionTime+time.Millisecond)
	if !d.Abandon || d.Reason != BailTimeCap {
		t.Fatalf("expected time-cap abandonment with history, got %+v", d)
	}
}

// TestShouldAbandon_QuadraticTrend reproduces the canonical trend case:
// size doubled, time grew by 2*threshold times, current time above the
// noise floor.
func TestShouldAbandon_QuadraticTrend(t *testing.T) {
	p := DefaultBailOutPolicy()
	p.MaxExecutionTime = time.Hour // keep the cap out of the way

	prev := &TrialPoint{Size: 100, Time: 10 * time.Millisecond}
	current := time.Duration(float64(prev.Time) * p.QuadraticThreshold * 2)

	d := p.ShouldAbandon(prev, 200, current)
	if !d.Abandon || d.Reason != BailQuadraticTrend {
		t.Fatalf("expected quadratic-trend abandonment, got %+v", d)
	}
	t.Logf("detail: %s", d.Detail)
}

// TestShouldAbandon_NoHistory verifies the trend check needs a prior trial.
func TestShouldAbandon_NoHistory(t *testing.T) {
	p := DefaultBailOutPolicy()
	p.MaxExecutionTime = time.Hour

	d := p.ShouldAbandon(nil, 200, 50*time.Millisecond)
	if d.Abandon {
		t.Fatalf("first trial can never trigger the trend check: %+v", d)
	}
}

// TestShouldAbandon_NoiseFloor verifies jittery sub-floor timings are not
// trend-evaluated.
func TestShouldAbandon_NoiseFloor(t *testing.T) {
	p := DefaultBailOutPolicy()
	p.MaxExecutionTime = time.Hour

	// Time grew 100x but is still below the detection floor.
	prev := &TrialPoint{Size: 100, Time: 50 * time.Microsecond}
	d := p.ShouldAbandon(prev, 200, 5*time.Millisecond)
	if d.Abandon {
		t.Fatalf("sub-floor timing must not trigger the trend check: %+v", d)
	}
}

// TestShouldAbandon_RequiresGrowth verifies both ratios must exceed 1.
func TestShouldAbandon_RequiresGrowth(t *testing.T) {
	p := DefaultBailOutPolicy()
	p.MaxExecutionTime = time.Hour

	// Time shrank: healthy, keep going.
	prev := &TrialPoint{Size: 100, Time: 60 * time.Millisecond}
	d := p.ShouldAbandon(prev, 200, 30*time.Millisecond)
	if d.Abandon {
		t.Fatalf("shrinking time must not abandon: %+v", d)
	}
}

// TestShouldAbandon_LinearScalingPasses verifies a well-behaved algorithm
// survives: time growing proportionally to size keeps the degradation
// ratio at 1.
func TestShouldAbandon_LinearScalingPasses(t *testing.T) {
	p := DefaultBailOutPolicy()
	p.MaxExecutionTime = time.Hour

	prev := &TrialPoint{Size: 1_000, Time: 20 * time.Millisecond}
	d := p.ShouldAbandon(prev, 2_000, 40*time.Millisecond)
	if d.Abandon {
		t.Fatalf("linear scaling must not abandon: %+v", d)
	}
	if d.Reason != BailNone {
		t.Errorf("expected BailNone, got %s", d.Reason)
	}
}

// TestShouldAbandon_ThresholdIsTunable verifies the threshold is honored
// as configuration, not a constant.
func TestShouldAbandon_ThresholdIsTunable(t *testing.T) {
	p := DefaultBailOutPolicy()
	p.MaxExecutionTime = time.Hour
	p.QuadraticThreshold = 500 // the insensitive historical setting

	prev := &TrialPoint{Size: 100, Time: 10 * time.Millisecond}
	// Size grew 2x, time 8x: degradation 4. Passes at 500, rejected at 3.9.
	d := p.ShouldAbandon(prev, 200, 80*time.Millisecond)
	if d.Abandon {
		t.Fatalf("threshold 500 should tolerate degradation 4: %+v", d)
	}

	p.QuadraticThreshold = 3.9
	d = p.ShouldAbandon(prev, 200, 80*time.Millisecond)
	if !d.Abandon {
		t.Fatal("threshold 3.9 should reject degradation 4")
	}
}
