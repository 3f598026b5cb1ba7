// Package playback implements the trajectory step state machine.
//
// A Controller owns the current step index, the derived timeline marker
// states, and the playing flag. It is pure state: the TUI layer schedules
// the actual tick (bubbletea tea.Tick) and calls Advance on each tick,
// so a Controller never owns a timer that could outlive its view.
package playback

import (
	"time"

	"github.com/mazeview/mazeview/internal/trajectory"
)

// DefaultInterval is the autoplay period between step advances.
const DefaultInterval = 2 * time.Second

// MarkerState classifies a timeline marker relative to the current step.
type MarkerState int

const (
	MarkerPending MarkerState = iota
	MarkerActive
	MarkerCompleted
)

// Controller drives step navigation and autoplay for one trajectory.
type Controller struct {
	traj     *trajectory.Trajectory
	step     int
	playing  bool
	interval time.Duration

	// generation invalidates ticks scheduled before a stop or a
	// trajectory switch; see TickGeneration.
	generation int
}

// NewController creates a controller with the default autoplay interval
// and no trajectory loaded.
func NewController() *Controller {
	return &Controller{interval: DefaultInterval}
}

// SetInterval overrides the autoplay period. Non-positive values keep the
// current interval.
func (c *Controller) SetInterval(d time.Duration) {
	if d > 0 {
		c.interval = d
	}
}

// Interval returns the autoplay period.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// SetTrajectory initializes the timeline for a trajectory: playback stops,
// counters reset, and the current step jumps to 0. Passing nil clears the
// controller.
func (c *Controller) SetTrajectory(t *trajectory.Trajectory) {
	c.Stop()
	c.traj = t
	c.step = 0
}

// Trajectory returns the active trajectory, or nil.
func (c *Controller) Trajectory() *trajectory.Trajectory {
	return c.traj
}

// StepCount returns the number of steps in the active trajectory.
func (c *Controller) StepCount() int {
	if c.traj == nil {
		return 0
	}
	return c.traj.StepCount()
}

// Step returns the current step index.
func (c *Controller) Step() int {
	return c.step
}

// CurrentStep returns the active step's data. ok is false when no
// trajectory is loaded or the trajectory has no steps.
func (c *Controller) CurrentStep() (trajectory.Step, bool) {
	if c.traj == nil || c.step >= len(c.traj.Steps) {
		return trajectory.Step{}, false
	}
	return c.traj.Steps[c.step], true
}

// NavigateToStep moves to step i. Indices outside [0, StepCount-1] are
// silently ignored; UI controls are expected to clamp already.
func (c *Controller) NavigateToStep(i int) {
	if i < 0 || i >= c.StepCount() {
		return
	}
	c.step = i
}

// MarkerStates returns the state of each timeline marker: completed before
// the current step, active at it, pending after it.
func (c *Controller) MarkerStates() []MarkerState {
	n := c.StepCount()
	states := make([]MarkerState, n)
	for i := range states {
		switch {
		case i < c.step:
			states[i] = MarkerCompleted
		case i == c.step:
			states[i] = MarkerActive
		default:
			states[i] = MarkerPending
		}
	}
	return states
}

// Progress returns the progress bar percentage for the current step.
func (c *Controller) Progress() float64 {
	return trajectory.ProgressPercent(c.step, c.StepCount())
}

// AtStart reports whether the previous control should be disabled.
func (c *Controller) AtStart() bool {
	return c.step == 0
}

// AtEnd reports whether the next control should be disabled.
func (c *Controller) AtEnd() bool {
	return c.StepCount() == 0 || c.step == c.StepCount()-1
}

// Playing reports whether autoplay is active.
func (c *Controller) Playing() bool {
	return c.playing
}

// Toggle flips between playing and paused. Starting playback at the final
// step is a no-op: there is nothing left to advance through. Returns the
// new playing state.
func (c *Controller) Toggle() bool {
	if c.playing {
		c.Stop()
		return false
	}
	if c.AtEnd() {
		return false
	}
	c.playing = true
	c.generation++
	return true
}

// Stop forces the paused state and invalidates any pending tick.
func (c *Controller) Stop() {
	c.playing = false
	c.generation++
}

// TickGeneration identifies the playback run a scheduled tick belongs to.
// A tick carrying a stale generation must be discarded by the caller;
// this is how a tick scheduled before Stop (or before a task/trajectory
// switch) is prevented from mutating replaced state.
func (c *Controller) TickGeneration() int {
	return c.generation
}

// Advance moves one step forward during playback. Reaching the final step
// stops playback rather than wrapping. Ticks from a stale generation and
// ticks while paused are ignored. Returns true if the step changed.
func (c *Controller) Advance(generation int) bool {
	if !c.playing || generation != c.generation {
		return false
	}
	if c.AtEnd() {
		c.Stop()
		return false
	}
	c.step++
	if c.AtEnd() {
		c.Stop()
	}
	return true
}
