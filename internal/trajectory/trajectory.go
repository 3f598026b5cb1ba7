// Package trajectory defines the task/trajectory/step data model.
//
// The task index is a small static manifest; each entry points at a
// second-stage task document fetched lazily on selection. Task documents
// key their trajectories by id, and the selector must list them in
// declaration order, so TrajectorySet decodes the JSON object with a
// token walk instead of a Go map.
package trajectory

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskIndex is the manifest of available tasks.
type TaskIndex struct {
	Version     string           `json:"version"`
	LastUpdated string           `json:"lastUpdated"`
	Tasks       []TaskIndexEntry `json:"tasks"`
}

// TaskIndexEntry is one catalog row in the task index.
type TaskIndexEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DataFile    string `json:"dataFile"`
	Thumbnail   string `json:"thumbnail"`
}

// Entry returns the index entry with the given id.
func (ti *TaskIndex) Entry(id string) (TaskIndexEntry, bool) {
	for _, t := range ti.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return TaskIndexEntry{}, false
}

// TaskData is a second-stage task document.
type TaskData struct {
	TaskName        string        `json:"taskName"`
	TaskDescription string        `json:"taskDescription"`
	Trajectories    TrajectorySet `json:"trajectories"`
}

// Trajectory is one recorded episode for a task.
type Trajectory struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	TotalSteps     int     `json:"totalSteps"`
	Success        bool    `json:"success"`
	ReasoningScore float64 `json:"reasoningScore"`
	CompletionTime float64 `json:"completionTime"`
	Steps          []Step  `json:"steps"`
}

// StepCount returns the number of steps actually present. TotalSteps is
// generator metadata and may disagree with len(Steps); the steps slice is
// authoritative for navigation bounds.
func (t *Trajectory) StepCount() int {
	return len(t.Steps)
}

// Step is one state-action-reasoning unit, addressed by 0-based index.
type Step struct {
	State     StepState `json:"state"`
	Reasoning string    `json:"reasoning"`
	Action    string    `json:"action"`
}

// StepState is the observed environment state at a step.
type StepState struct {
	Image       string `json:"image"`
	Description string `json:"description"`
}

// TrajectorySet holds a task's trajectories keyed by id, preserving the
// declaration order of the source document.
type TrajectorySet struct {
	ids  []string
	byID map[string]*Trajectory
}

// UnmarshalJSON decodes the trajectories object, recording key order.
func (s *TrajectorySet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("trajectories: expected object, got %v", tok)
	}

	s.ids = nil
	s.byID = make(map[string]*Trajectory)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id := keyTok.(string)

		var t Trajectory
		if err := dec.Decode(&t); err != nil {
			return fmt.Errorf("trajectory %q: %w", id, err)
		}
		if _, dup := s.byID[id]; dup {
			return fmt.Errorf("trajectory %q declared twice", id)
		}
		s.ids = append(s.ids, id)
		s.byID[id] = &t
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON re-emits the trajectories in declaration order.
func (s TrajectorySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// IDs returns the trajectory ids in declaration order.
func (s *TrajectorySet) IDs() []string {
	return s.ids
}

// Get returns the trajectory with the given id.
func (s *TrajectorySet) Get(id string) (*Trajectory, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Len returns the number of trajectories.
func (s *TrajectorySet) Len() int {
	return len(s.ids)
}

// First returns the first declared trajectory, which is the default
// selection when a task loads.
func (s *TrajectorySet) First() (string, *Trajectory, bool) {
	if len(s.ids) == 0 {
		return "", nil, false
	}
	id := s.ids[0]
	return id, s.byID[id], true
}

// MarkerPositions returns the timeline marker offsets for n steps as
// percentages across a normalized [0,100] axis: marker i sits at
// i/(n-1)*100. A single-step trajectory places its sole marker at 0.
func MarkerPositions(n int) []float64 {
	if n <= 0 {
		return nil
	}
	pos := make([]float64, n)
	if n == 1 {
		return pos
	}
	for i := range pos {
		pos[i] = float64(i) / float64(n-1) * 100
	}
	return pos
}

// ProgressPercent returns the progress bar width for the current step:
// i/(n-1)*100, guarded for single-step trajectories.
func ProgressPercent(step, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(step) / float64(n-1) * 100
}
