package playback

import (
	"testing"
	"time"

	"github.com/mazeview/mazeview/internal/trajectory"
)

func threeStepTrajectory() *trajectory.Trajectory {
	return &trajectory.Trajectory{
		Name:       "run",
		TotalSteps: 3,
		Steps: []trajectory.Step{
			{Action: "E"}, {Action: "N"}, {Action: "STOP"},
		},
	}
}

func TestNavigateToStepBounds(t *testing.T) {
	c := NewController()
	c.SetTrajectory(threeStepTrajectory())

	c.NavigateToStep(2)
	if c.Step() != 2 {
		t.Fatalf("Step = %d, want 2", c.Step())
	}

	// Out-of-range indices are silently ignored.
	c.NavigateToStep(-1)
	c.NavigateToStep(3)
	if c.Step() != 2 {
		t.Errorf("out-of-range navigation moved step to %d", c.Step())
	}

	// Idempotent for the already-current step.
	c.NavigateToStep(2)
	if c.Step() != 2 {
		t.Errorf("re-navigation moved step to %d", c.Step())
	}
}

func TestMarkerStates(t *testing.T) {
	c := NewController()
	c.SetTrajectory(threeStepTrajectory())
	c.NavigateToStep(1)

	states := c.MarkerStates()
	want := []MarkerState{MarkerCompleted, MarkerActive, MarkerPending}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("marker %d = %v, want %v", i, states[i], want[i])
		}
	}
}

func TestProgressAndEdgeControls(t *testing.T) {
	c := NewController()
	c.SetTrajectory(threeStepTrajectory())

	if !c.AtStart() || c.AtEnd() {
		t.Error("step 0: prev disabled, next enabled expected")
	}
	c.NavigateToStep(1)
	if got := c.Progress(); got != 50 {
		t.Errorf("Progress = %v, want 50", got)
	}
	c.NavigateToStep(2)
	if c.AtStart() || !c.AtEnd() {
		t.Error("last step: next disabled expected")
	}
	if got := c.Progress(); got != 100 {
		t.Errorf("Progress = %v, want 100", got)
	}
}

func TestSingleStepTrajectory(t *testing.T) {
	c := NewController()
	c.SetTrajectory(&trajectory.Trajectory{
		TotalSteps: 1,
		Steps:      []trajectory.Step{{Action: "STOP"}},
	})

	if got := c.Progress(); got != 0 {
		t.Errorf("Progress = %v, want 0 for single step", got)
	}
	if pos := trajectory.MarkerPositions(c.StepCount()); len(pos) != 1 || pos[0] != 0 {
		t.Errorf("single marker position = %v, want [0]", pos)
	}
	if !c.AtStart() || !c.AtEnd() {
		t.Error("single step is both start and end")
	}
}

func TestPlaybackAdvancesAndAutoStops(t *testing.T) {
	c := NewController()
	c.SetTrajectory(threeStepTrajectory())

	if !c.Toggle() {
		t.Fatal("Toggle should start playback at step 0")
	}
	gen := c.TickGeneration()

	if !c.Advance(gen) || c.Step() != 1 {
		t.Fatalf("first tick: step = %d, playing = %v", c.Step(), c.Playing())
	}
	if !c.Advance(gen) || c.Step() != 2 {
		t.Fatalf("second tick: step = %d", c.Step())
	}
	// Reaching the final step auto-stops; no wrap back to 0.
	if c.Playing() {
		t.Error("playback should auto-stop at the last step")
	}
	if c.Advance(c.TickGeneration()) {
		t.Error("tick after auto-stop must not advance")
	}
	if c.Step() != 2 {
		t.Errorf("step wrapped to %d", c.Step())
	}
}

func TestToggleAtLastStepDoesNotStart(t *testing.T) {
	c := NewController()
	c.SetTrajectory(threeStepTrajectory())
	c.NavigateToStep(2)

	if c.Toggle() {
		t.Error("playback started at the final step")
	}
	if c.Playing() {
		t.Error("controller reports playing at final step")
	}
}

func TestStaleTickDiscarded(t *testing.T) {
	c := NewController()
	c.SetTrajectory(threeStepTrajectory())

	c.Toggle()
	stale := c.TickGeneration()
	c.Stop()
	c.Toggle()

	if c.Advance(stale) {
		t.Error("tick from a previous playback run advanced the step")
	}
	if c.Step() != 0 {
		t.Errorf("stale tick moved step to %d", c.Step())
	}
}

func TestSwitchingTrajectoryStopsPlayback(t *testing.T) {
	c := NewController()
	c.SetTrajectory(threeStepTrajectory())
	c.Toggle()
	gen := c.TickGeneration()

	c.SetTrajectory(threeStepTrajectory())
	if c.Playing() {
		t.Error("trajectory switch must stop playback")
	}
	if c.Step() != 0 {
		t.Errorf("trajectory switch should reset step, got %d", c.Step())
	}
	if c.Advance(gen) {
		t.Error("tick scheduled before the switch mutated the new trajectory")
	}
}

func TestSetInterval(t *testing.T) {
	c := NewController()
	c.SetInterval(500 * time.Millisecond)
	if c.Interval() != 500*time.Millisecond {
		t.Errorf("Interval = %v", c.Interval())
	}
	c.SetInterval(0)
	if c.Interval() != 500*time.Millisecond {
		t.Error("non-positive interval should be ignored")
	}
}
